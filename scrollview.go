package repeat

// DefaultWheelStep is how far one mouse wheel notch scrolls.
const DefaultWheelStep float32 = 30

// ScrollState tracks the geometry of a ScrollView.
type ScrollState struct {
	ScrollX       float32 // Horizontal scroll position
	ScrollY       float32 // Vertical scroll position
	ClientWidth   float32 // Visible width
	ClientHeight  float32 // Visible height
	ContentWidth  float32 // Reported content width
	ContentHeight float32 // Reported content height
}

// ScrollView is an in-process Viewport. It keeps scroll offsets clamped to
// the reported content size, turns input into scroll ticks and remembers the
// content transform the last tick resolved to.
//
// Usage:
//
//	view := repeat.NewScrollView(repeat.WithClientSize(800, 600))
//	m, _ := repeat.NewManager(source, view)
//	view.OnResize(m.Resize)
//	m.Resize()
//
//	// each frame
//	view.HandleInput(input)
type ScrollView struct {
	state      ScrollState
	horizontal bool
	wheelStep  float32
	zoom       float32

	handler   func(ScrollTick)
	transform ScrollTick
	onResize  []func()
}

// ScrollViewOption configures a ScrollView.
type ScrollViewOption func(*ScrollView)

// ScrollingX makes the view scroll horizontally instead of vertically.
func ScrollingX() ScrollViewOption {
	return func(v *ScrollView) { v.horizontal = true }
}

// WithWheelStep sets how far one mouse wheel notch scrolls.
func WithWheelStep(units float32) ScrollViewOption {
	return func(v *ScrollView) {
		if units > 0 {
			v.wheelStep = units
		}
	}
}

// WithClientSize sets the initial visible size.
func WithClientSize(width, height float32) ScrollViewOption {
	return func(v *ScrollView) {
		v.state.ClientWidth = maxf(0, width)
		v.state.ClientHeight = maxf(0, height)
	}
}

// NewScrollView creates a vertical ScrollView unless ScrollingX is given.
func NewScrollView(opts ...ScrollViewOption) *ScrollView {
	v := &ScrollView{
		wheelStep: DefaultWheelStep,
		zoom:      1,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.transform = ScrollTick{Zoom: v.zoom}
	return v
}

// Vertical implements Viewport.
func (v *ScrollView) Vertical() bool { return !v.horizontal }

// ScrollOffset implements Viewport.
func (v *ScrollView) ScrollOffset() Vec2 {
	return Vec2{X: v.state.ScrollX, Y: v.state.ScrollY}
}

// MaxScrollOffset implements Viewport.
func (v *ScrollView) MaxScrollOffset() Vec2 {
	return Vec2{
		X: maxf(0, v.state.ContentWidth-v.state.ClientWidth),
		Y: maxf(0, v.state.ContentHeight-v.state.ClientHeight),
	}
}

// ClientSize implements Viewport.
func (v *ScrollView) ClientSize() Size {
	return Size{Width: v.state.ClientWidth, Height: v.state.ClientHeight}
}

// ContentSize returns the last reported content size.
func (v *ScrollView) ContentSize() Size {
	return Size{Width: v.state.ContentWidth, Height: v.state.ContentHeight}
}

// State returns a copy of the scroll geometry.
func (v *ScrollView) State() ScrollState { return v.state }

// SetContentSize implements Viewport. Offsets past the new maximum are
// clamped silently; the caller is mid-resize and redraws afterwards.
func (v *ScrollView) SetContentSize(size Size) {
	v.state.ContentWidth = maxf(0, size.Width)
	v.state.ContentHeight = maxf(0, size.Height)
	v.clamp()
}

// SetClientSize changes the visible size and notifies resize listeners.
func (v *ScrollView) SetClientSize(width, height float32) {
	width, height = maxf(0, width), maxf(0, height)
	if width == v.state.ClientWidth && height == v.state.ClientHeight {
		return
	}
	v.state.ClientWidth = width
	v.state.ClientHeight = height
	v.clamp()
	for _, fn := range v.onResize {
		fn()
	}
}

// OnResize registers fn to run after every client size change.
func (v *ScrollView) OnResize(fn func()) {
	v.onResize = append(v.onResize, fn)
}

// SetScrollHandler implements Viewport.
func (v *ScrollView) SetScrollHandler(handler func(ScrollTick)) {
	v.handler = handler
}

// ApplyTransform implements Viewport.
func (v *ScrollView) ApplyTransform(tick ScrollTick) {
	v.transform = tick
}

// ContentTransform returns the offset of the rendered block from the
// viewport origin, as resolved by the last tick.
func (v *ScrollView) ContentTransform() ScrollTick {
	return v.transform
}

// ScrollTo moves to the given offset, clamped to the content, and publishes
// a scroll tick.
func (v *ScrollView) ScrollTo(x, y float32) {
	v.state.ScrollX = x
	v.state.ScrollY = y
	v.clamp()
	v.publish()
}

// ScrollBy moves by the given delta.
func (v *ScrollView) ScrollBy(dx, dy float32) {
	v.ScrollTo(v.state.ScrollX+dx, v.state.ScrollY+dy)
}

// ScrollPrimary moves along the scroll axis only.
func (v *ScrollView) ScrollPrimary(delta float32) {
	if v.horizontal {
		v.ScrollBy(delta, 0)
	} else {
		v.ScrollBy(0, delta)
	}
}

func (v *ScrollView) clamp() {
	limit := v.MaxScrollOffset()
	v.state.ScrollX = clampf(v.state.ScrollX, 0, limit.X)
	v.state.ScrollY = clampf(v.state.ScrollY, 0, limit.Y)
}

func (v *ScrollView) publish() {
	tick := ScrollTick{Left: v.state.ScrollX, Top: v.state.ScrollY, Zoom: v.zoom}
	if v.handler != nil {
		v.handler(tick)
		return
	}
	v.ApplyTransform(tick)
}

// HandleInput applies one frame of input. Returns true if the view scrolled.
//
// Wheel notches scroll by the wheel step (positive wheel values scroll
// back); PageUp/PageDown scroll 80% of the client extent; Home/End jump to
// the ends; arrow keys along the scroll axis scroll one wheel step.
func (v *ScrollView) HandleInput(in *InputState) bool {
	if in == nil {
		return false
	}

	before := v.ScrollOffset()
	delta := float32(0)

	wheel := in.MouseWheelY
	if v.horizontal && in.MouseWheelX != 0 {
		wheel = in.MouseWheelX
	}
	delta -= wheel * v.wheelStep

	page := v.primaryClient() * 0.8 // Page up/down scrolls 80% of viewport
	back, fwd := KeyUp, KeyDown
	if v.horizontal {
		back, fwd = KeyLeft, KeyRight
	}
	if in.KeyPressed(KeyPageDown) {
		delta += page
	}
	if in.KeyPressed(KeyPageUp) {
		delta -= page
	}
	if in.KeyPressed(fwd) {
		delta += v.wheelStep
	}
	if in.KeyPressed(back) {
		delta -= v.wheelStep
	}

	switch {
	case in.KeyPressed(KeyHome):
		v.scrollPrimaryTo(0)
	case in.KeyPressed(KeyEnd):
		v.scrollPrimaryTo(v.primaryMax())
	case delta != 0:
		v.ScrollPrimary(delta)
	default:
		return false
	}
	return v.ScrollOffset() != before
}

func (v *ScrollView) scrollPrimaryTo(pos float32) {
	if v.horizontal {
		v.ScrollTo(pos, v.state.ScrollY)
	} else {
		v.ScrollTo(v.state.ScrollX, pos)
	}
}

func (v *ScrollView) primaryClient() float32 {
	if v.horizontal {
		return v.state.ClientWidth
	}
	return v.state.ClientHeight
}

func (v *ScrollView) primaryMax() float32 {
	limit := v.MaxScrollOffset()
	if v.horizontal {
		return limit.X
	}
	return limit.Y
}

// ScrollbarRects returns the track and thumb of the scrollbar for a view
// drawn at bounds. ok is false when the content fits.
func (v *ScrollView) ScrollbarRects(bounds Rect, style Style) (track, thumb Rect, ok bool) {
	client, content, scroll := v.state.ClientHeight, v.state.ContentHeight, v.state.ScrollY
	if v.horizontal {
		client, content, scroll = v.state.ClientWidth, v.state.ContentWidth, v.state.ScrollX
	}
	if content <= client || content <= 0 {
		return Rect{}, Rect{}, false
	}

	size := style.ScrollbarSize
	length := bounds.H
	if v.horizontal {
		length = bounds.W
	}

	// Calculate scrollbar thumb size and position
	thumbLen := maxf(style.ScrollbarMinGrab, length*client/content)
	maxScroll := content - client
	thumbPos := (scroll / maxScroll) * (length - thumbLen)

	if v.horizontal {
		track = Rect{X: bounds.X, Y: bounds.Y + bounds.H - size, W: bounds.W, H: size}
		thumb = Rect{X: bounds.X + thumbPos, Y: track.Y, W: thumbLen, H: size}
	} else {
		track = Rect{X: bounds.X + bounds.W - size, Y: bounds.Y, W: size, H: bounds.H}
		thumb = Rect{X: track.X, Y: bounds.Y + thumbPos, W: size, H: thumbLen}
	}
	return track, thumb, true
}

// DrawScrollbar draws the scrollbar for a view drawn at bounds.
func (v *ScrollView) DrawScrollbar(dl *DrawList, bounds Rect, style Style) {
	track, thumb, ok := v.ScrollbarRects(bounds, style)
	if !ok {
		return
	}
	dl.AddRect(track.X, track.Y, track.W, track.H, style.ScrollbarBgColor)
	dl.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, style.ScrollbarGrabColor)
}
