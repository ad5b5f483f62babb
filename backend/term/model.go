package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/repeat"
)

// FrameInterval is how often the model drains the scheduler.
const FrameInterval = time.Second / 60

type frameMsg struct{}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#d0d0d0")).
	Background(lipgloss.Color("#005f87")).
	Padding(0, 1)

// Model is a bubbletea model that scrolls a virtualized layer filling the
// terminal, with a status line at the bottom.
type Model struct {
	manager *repeat.Manager
	view    *repeat.ScrollView
	layer   *repeat.Layer
	sched   *repeat.Scheduler
	keys    KeyMap
	input   *repeat.InputState

	width, height int
}

// NewModel creates a Model. The view's client size follows the terminal
// size minus the status line.
func NewModel(manager *repeat.Manager, view *repeat.ScrollView, layer *repeat.Layer, sched *repeat.Scheduler) Model {
	return Model{
		manager: manager,
		view:    view,
		layer:   layer,
		sched:   sched,
		keys:    DefaultKeyMap(),
		input:   repeat.NewInputState(),
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.SetClientSize(float32(msg.Width), float32(max(0, msg.Height-1)))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if k := m.keys.scrollKey(msg); k != repeat.KeyNone {
			m.input.PressKey(k)
			m.applyInput()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.input.SetMouseWheel(0, 1)
		case tea.MouseButtonWheelDown:
			m.input.SetMouseWheel(0, -1)
		case tea.MouseButtonWheelLeft:
			m.input.SetMouseWheel(1, 0)
		case tea.MouseButtonWheelRight:
			m.input.SetMouseWheel(-1, 0)
		default:
			return m, nil
		}
		m.applyInput()
		return m, nil

	case frameMsg:
		m.sched.Frame()
		return m, frameTick()
	}
	return m, nil
}

func (m Model) applyInput() {
	m.view.HandleInput(m.input)
	m.input.Reset()
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	h := max(0, m.height-1)
	g := NewGrid(m.width, h)
	Paint(g, m.layer, repeat.Rect{W: float32(m.width), H: float32(h)}, m.view.ContentTransform())
	return lipgloss.JoinVertical(lipgloss.Left, g.String(), m.status())
}

func (m Model) status() string {
	off := m.manager.Axis().PrimaryOf(m.view.ScrollOffset())
	current, _ := m.manager.CurrentIndex()
	st := m.manager.Stats()
	line := fmt.Sprintf("%d items  offset %.0f/%.0f  current %d  mounted %d  renders %d  q quit",
		len(m.manager.Dimensions()), off, m.manager.ViewportSize(), current, m.layer.Len(), st.Renders)
	return statusStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(line)
}
