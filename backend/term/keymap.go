package term

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/repeat"
)

// KeyMap defines the model's keybindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first item"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scrollKey maps a key message onto a scroll key.
func (km KeyMap) scrollKey(msg tea.KeyMsg) repeat.Key {
	bindings := []struct {
		b key.Binding
		k repeat.Key
	}{
		{km.Up, repeat.KeyUp},
		{km.Down, repeat.KeyDown},
		{km.Left, repeat.KeyLeft},
		{km.Right, repeat.KeyRight},
		{km.PageUp, repeat.KeyPageUp},
		{km.PageDown, repeat.KeyPageDown},
		{km.Home, repeat.KeyHome},
		{km.End, repeat.KeyEnd},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.k
		}
	}
	return repeat.KeyNone
}
