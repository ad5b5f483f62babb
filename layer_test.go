package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/repeat"
)

func swatchItem(index int, x, y float32) *repeat.Item {
	return &repeat.Item{
		Index:  index,
		Size:   repeat.Size{Width: 10, Height: 10},
		Offset: repeat.Vec2{X: x, Y: y},
		View:   &repeat.Swatch{Color: repeat.PaletteColor(index), Index: index},
	}
}

func TestLayerAttachDetach(t *testing.T) {
	l := repeat.NewLayer()
	a, b, c := swatchItem(0, 0, 0), swatchItem(1, 0, 10), swatchItem(2, 0, 20)

	l.Attach(a)
	l.Attach(b)
	l.Attach(a)
	l.Attach(nil)
	l.Attach(c)
	assert.Equal(t, []*repeat.Item{a, b, c}, l.Items())

	l.Detach(b)
	l.Detach(b)
	assert.Equal(t, []*repeat.Item{a, c}, l.Items())
	assert.Equal(t, 2, l.Len())
}

func TestItemRect(t *testing.T) {
	item := swatchItem(0, 5, -20)
	r := repeat.ItemRect(item, repeat.Vec2{X: 100, Y: 100}, repeat.ScrollTick{Top: 10})
	assert.Equal(t, repeat.Rect{X: 105, Y: 70, W: 10, H: 10}, r)
}

func TestLayerDrawSkipsClippedItems(t *testing.T) {
	l := repeat.NewLayer()
	l.Attach(swatchItem(0, 0, 0))
	l.Attach(swatchItem(1, 0, 50))
	l.Attach(swatchItem(2, 0, 200))
	l.Attach(&repeat.Item{Index: 3, Size: repeat.Size{Width: 10, Height: 10}, View: "not drawable"})

	dl := repeat.AcquireDrawList()
	defer repeat.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	drawn := l.Draw(dl, repeat.Vec2{}, repeat.ScrollTick{})
	dl.PopClipRect()

	assert.Equal(t, 2, drawn)
	assert.Len(t, dl.VtxBuffer, 8)

	// Shifting the block brings the third item into view.
	dl.Clear()
	dl.PushClipRect(0, 0, 100, 100)
	drawn = l.Draw(dl, repeat.Vec2{}, repeat.ScrollTick{Top: 150})
	dl.PopClipRect()
	assert.Equal(t, 1, drawn)
}
