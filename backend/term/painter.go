package term

import (
	"strconv"

	"github.com/go-theft-auto/repeat"
)

// Painter is implemented by views that paint themselves into a Grid.
type Painter interface {
	Paint(g *Grid, r repeat.Rect)
}

// Paint paints every mounted item of layer into g. The viewport occupies
// bounds; items are shifted by the content transform. Views that are neither
// Painters nor swatches are skipped. Paint returns the number of items that
// landed inside bounds.
func Paint(g *Grid, layer *repeat.Layer, bounds repeat.Rect, transform repeat.ScrollTick) int {
	g.SetClip(bounds)
	origin := repeat.Vec2{X: bounds.X, Y: bounds.Y}

	painted := 0
	for _, item := range layer.Items() {
		r := repeat.ItemRect(item, origin, transform)
		if !r.Intersects(bounds) {
			continue
		}
		switch v := item.View.(type) {
		case Painter:
			v.Paint(g, r)
		case *repeat.Swatch:
			paintSwatch(g, v, r)
		default:
			continue
		}
		painted++
	}
	return painted
}

// paintSwatch fills the swatch leaving a one-cell gutter on the trailing
// edges, and labels it with its index.
func paintSwatch(g *Grid, s *repeat.Swatch, r repeat.Rect) {
	fill := r
	if fill.W > 1 {
		fill.W--
	}
	if fill.H > 1 {
		fill.H--
	}
	g.Fill(fill, s.Color)
	g.Text(fill.X, fill.Y, strconv.Itoa(s.Index))
}
