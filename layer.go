package repeat

import "slices"

// Layer is the live view tree: the set of item handles currently mounted,
// kept in attach order.
//
// Usage:
//
//	layer := repeat.NewLayer()
//	src, _ := repeat.NewSource(items, layer, sizeOf, newView)
//
//	// In draw loop:
//	layer.Draw(dl, origin, view.ContentTransform())
type Layer struct {
	items []*Item
}

// NewLayer creates an empty Layer.
func NewLayer() *Layer {
	return &Layer{items: make([]*Item, 0, 64)}
}

// Attach implements Container. Attaching a mounted handle again does nothing.
func (l *Layer) Attach(item *Item) {
	if item == nil || slices.Contains(l.items, item) {
		return
	}
	l.items = append(l.items, item)
}

// Detach implements Container.
func (l *Layer) Detach(item *Item) {
	if i := slices.Index(l.items, item); i >= 0 {
		l.items = slices.Delete(l.items, i, i+1)
	}
}

// Items returns the mounted handles in attach order.
// The slice is owned by the Layer and must not be modified.
func (l *Layer) Items() []*Item { return l.items }

// Len returns the number of mounted handles.
func (l *Layer) Len() int { return len(l.items) }

// ItemRect returns where item lands on screen for a block drawn at origin
// and shifted by the content transform.
func ItemRect(item *Item, origin Vec2, transform ScrollTick) Rect {
	return Rect{
		X: origin.X + item.Offset.X - transform.Left,
		Y: origin.Y + item.Offset.Y - transform.Top,
		W: item.Size.Width,
		H: item.Size.Height,
	}
}

// Draw draws every mounted view implementing Drawer. Items entirely outside
// the current clip rectangle are skipped.
func (l *Layer) Draw(dl *DrawList, origin Vec2, transform ScrollTick) int {
	clip := dl.ClipRect()
	bounds := Rect{X: clip[0], Y: clip[1], W: clip[2] - clip[0], H: clip[3] - clip[1]}

	drawn := 0
	for _, item := range l.items {
		d, ok := item.View.(Drawer)
		if !ok {
			continue
		}
		r := ItemRect(item, origin, transform)
		if !r.Intersects(bounds) {
			continue
		}
		d.Draw(dl, r)
		drawn++
	}
	return drawn
}
