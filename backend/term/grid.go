// Package term provides a terminal backend for the repeat package: mounted
// items are painted into a cell grid styled with lipgloss, and a bubbletea
// model drives scrolling.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/repeat"
)

type cell struct {
	ch rune
	bg uint32 // packed RGBA, 0 = terminal default
}

// Grid is a fixed-size block of terminal cells. One repeat unit is one cell.
type Grid struct {
	w, h   int
	cells  []cell
	clip   repeat.Rect
	styles map[uint32]lipgloss.Style
}

// NewGrid creates a blank grid.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	g := &Grid{
		w:      width,
		h:      height,
		cells:  make([]cell, width*height),
		styles: make(map[uint32]lipgloss.Style),
	}
	g.Clear()
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (width, height int) { return g.w, g.h }

// Clear blanks every cell and resets the clip to the whole grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{ch: ' '}
	}
	g.clip = repeat.Rect{W: float32(g.w), H: float32(g.h)}
}

// SetClip restricts painting to r.
func (g *Grid) SetClip(r repeat.Rect) { g.clip = r }

// span converts the float range [from, from+length) to whole cells inside
// [lo, hi).
func span(from, length, lo, hi float32) (int, int) {
	a := max(from, lo)
	b := min(from+length, hi)
	if b <= a {
		return 0, 0
	}
	return int(a + 0.5), int(b + 0.5)
}

func (g *Grid) bounds(r repeat.Rect) (x0, y0, x1, y1 int) {
	cx0, cx1 := max(g.clip.X, 0), min(g.clip.X+g.clip.W, float32(g.w))
	cy0, cy1 := max(g.clip.Y, 0), min(g.clip.Y+g.clip.H, float32(g.h))
	x0, x1 = span(r.X, r.W, cx0, cx1)
	y0, y1 = span(r.Y, r.H, cy0, cy1)
	return x0, y0, x1, y1
}

// Fill sets the background of every cell in r.
func (g *Grid) Fill(r repeat.Rect, bg uint32) {
	x0, y0, x1, y1 := g.bounds(r)
	for y := y0; y < y1; y++ {
		row := g.cells[y*g.w:]
		for x := x0; x < x1; x++ {
			row[x] = cell{ch: ' ', bg: bg}
		}
	}
}

// Text writes s starting at (x, y), keeping the existing backgrounds.
// Runes outside the clip are dropped.
func (g *Grid) Text(x, y float32, s string) {
	row := int(y + 0.5)
	if y < g.clip.Y || y >= g.clip.Y+g.clip.H || row < 0 || row >= g.h {
		return
	}
	col := int(x + 0.5)
	for _, r := range s {
		fx := float32(col)
		if col >= 0 && col < g.w && fx >= g.clip.X && fx < g.clip.X+g.clip.W {
			g.cells[row*g.w+col].ch = r
		}
		col++
	}
}

// Cell returns the rune and background at (x, y).
func (g *Grid) Cell(x, y int) (rune, uint32) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, 0
	}
	c := g.cells[y*g.w+x]
	return c.ch, c.bg
}

func (g *Grid) style(bg uint32) lipgloss.Style {
	if s, ok := g.styles[bg]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if bg != 0 {
		r, gr, b, _ := repeat.UnpackRGBA(bg)
		s = s.Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, gr, b))).
			Foreground(lipgloss.Color("#f0f0f0"))
	}
	g.styles[bg] = s
	return s
}

// String renders the grid, one styled run per background change.
func (g *Grid) String() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.w : (y+1)*g.w]
		for x := 0; x < len(row); {
			bg := row[x].bg
			run.Reset()
			for ; x < len(row) && row[x].bg == bg; x++ {
				run.WriteRune(row[x].ch)
			}
			sb.WriteString(g.style(bg).Render(run.String()))
		}
	}
	return sb.String()
}
