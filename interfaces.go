package repeat

// DataSource supplies the ordered collection a Manager virtualizes.
//
// Item handles are opaque to the Manager: it asks for one when an index
// enters the band, attaches it, positions it, and detaches it when the index
// leaves the band. AttachItem must be idempotent per handle.
type DataSource interface {
	// Len returns the current item count.
	Len() int
	// ItemSize returns the raw width/height of the item at index.
	ItemSize(index int) Size
	// Item returns the view handle for the item at index.
	Item(index int) *Item
	// AttachItem makes the handle part of the live view tree.
	AttachItem(item *Item)
	// DetachItem removes the handle from the live view tree.
	DetachItem(item *Item)
}

// Viewport is the scrollable primitive a Manager renders into.
type Viewport interface {
	// Vertical reports whether the viewport scrolls along Y.
	Vertical() bool
	// ScrollOffset returns the current scroll offset (left, top).
	ScrollOffset() Vec2
	// MaxScrollOffset returns the largest reachable scroll offset.
	MaxScrollOffset() Vec2
	// ClientSize returns the visible extent of the viewport.
	ClientSize() Size
	// SetContentSize reports the total size of the virtualized content.
	SetContentSize(size Size)
	// SetScrollHandler installs the function invoked on every scroll tick.
	// A nil handler restores the viewport's default behaviour.
	SetScrollHandler(handler func(ScrollTick))
	// ApplyTransform positions the rendered block for the current tick.
	ApplyTransform(tick ScrollTick)
}

// ScrollTick is one scroll notification. Left and Top are scroll offsets on
// the way in and content transforms on the way out; Zoom and Resized pass
// through unchanged.
type ScrollTick struct {
	Left, Top float32
	Zoom      float32
	Resized   bool
}

// Item is a mounted (or mountable) item view handle.
type Item struct {
	Index     int    // Item index in the data source
	Size      Size   // Raw item size
	Offset    Vec2   // Resolved position relative to the render scroll value
	Transform string // Offset formatted as a translate3d transform
	View      View   // Backend-specific element
}

// View is the rendered element of an item. Backends type-assert the drawing
// interface they understand (Drawer for draw lists, term.Painter for the
// terminal).
type View any

// Drawer is implemented by views that draw into a DrawList.
type Drawer interface {
	Draw(dl *DrawList, r Rect)
}
