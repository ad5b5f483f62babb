package term_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/repeat"
	"github.com/go-theft-auto/repeat/backend/term"
)

func TestGridFillAndText(t *testing.T) {
	g := term.NewGrid(6, 3)
	red := repeat.RGBA(200, 0, 0, 255)

	g.Fill(repeat.Rect{X: 1, Y: 1, W: 3, H: 2}, red)
	g.Text(1, 1, "ab")

	ch, bg := g.Cell(1, 1)
	assert.Equal(t, 'a', ch)
	assert.Equal(t, red, bg)
	ch, bg = g.Cell(4, 1)
	assert.Equal(t, ' ', ch)
	assert.Zero(t, bg)
	_, bg = g.Cell(3, 2)
	assert.Equal(t, red, bg)

	out := g.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "ab")
}

func TestGridClip(t *testing.T) {
	g := term.NewGrid(10, 4)
	blue := repeat.RGBA(0, 0, 200, 255)

	g.SetClip(repeat.Rect{X: 2, Y: 1, W: 4, H: 2})
	g.Fill(repeat.Rect{X: 0, Y: 0, W: 10, H: 4}, blue)
	g.Text(0, 1, "0123456789")

	_, bg := g.Cell(1, 1)
	assert.Zero(t, bg)
	_, bg = g.Cell(2, 1)
	assert.Equal(t, blue, bg)
	_, bg = g.Cell(6, 1)
	assert.Zero(t, bg)

	ch, _ := g.Cell(0, 1)
	assert.Equal(t, ' ', ch)
	ch, _ = g.Cell(3, 1)
	assert.Equal(t, '3', ch)

	_, bg = g.Cell(99, 99)
	assert.Zero(t, bg)
}

func TestPaintLayer(t *testing.T) {
	layer := repeat.NewLayer()
	for i := range 3 {
		layer.Attach(&repeat.Item{
			Index:  i,
			Size:   repeat.Size{Width: 4, Height: 2},
			Offset: repeat.Vec2{X: 0, Y: float32(i * 2)},
			View:   &repeat.Swatch{Color: repeat.PaletteColor(i), Index: i},
		})
	}
	g := term.NewGrid(8, 4)

	painted := term.Paint(g, layer, repeat.Rect{W: 8, H: 4}, repeat.ScrollTick{Top: 1})

	// Item 0 is half scrolled out, item 1 is fully visible, item 2 is cut off.
	assert.Equal(t, 3, painted)
	ch, bg := g.Cell(0, 1)
	assert.Equal(t, '1', ch)
	assert.Equal(t, repeat.PaletteColor(1), bg)
	_, bg = g.Cell(3, 1)
	assert.Zero(t, bg, "one-cell gutter on the trailing edge")
}
