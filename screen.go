package repeat

import "fmt"

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Screen draws a Layer through a ScrollView each frame.
type Screen struct {
	renderer Renderer
	layer    *Layer
	view     *ScrollView
	style    Style
	bounds   Rect
	fixed    bool // bounds set by WithBounds
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithStyle sets the screen style.
func WithStyle(style Style) ScreenOption {
	return func(s *Screen) { s.style = style }
}

// WithBounds places the viewport at r instead of filling the client size
// from the origin.
func WithBounds(r Rect) ScreenOption {
	return func(s *Screen) {
		s.bounds = r
		s.fixed = true
	}
}

// NewScreen creates a Screen.
func NewScreen(renderer Renderer, layer *Layer, view *ScrollView, opts ...ScreenOption) *Screen {
	s := &Screen{
		renderer: renderer,
		layer:    layer,
		view:     view,
		style:    DefaultStyle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bounds returns the on-screen rectangle of the viewport.
func (s *Screen) Bounds() Rect {
	if s.fixed {
		return s.bounds
	}
	c := s.view.ClientSize()
	return Rect{W: c.Width, H: c.Height}
}

// Style returns the current style.
func (s *Screen) Style() Style { return s.style }

// SetStyle sets the style.
func (s *Screen) SetStyle(style Style) { s.style = style }

// Resize notifies the renderer of a framebuffer size change.
func (s *Screen) Resize(width, height int) {
	s.renderer.Resize(width, height)
}

// Render draws one frame: background, mounted items clipped to the
// viewport, item borders and the scrollbar.
func (s *Screen) Render() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	b := s.Bounds()
	origin := Vec2{X: b.X, Y: b.Y}
	transform := s.view.ContentTransform()

	dl.AddRect(b.X, b.Y, b.W, b.H, s.style.BackgroundColor)

	dl.PushClipRect(b.X, b.Y, b.X+b.W, b.Y+b.H)
	s.layer.Draw(dl, origin, transform)
	if s.style.ItemBorderColor != 0 {
		for _, item := range s.layer.Items() {
			r := ItemRect(item, origin, transform)
			if r.Intersects(b) {
				dl.AddRectOutline(r.X, r.Y, r.W, r.H, s.style.ItemBorderColor, 1)
			}
		}
	}
	dl.PopClipRect()

	s.view.DrawScrollbar(dl, b, s.style)
	dl.Finalize()

	if err := s.renderer.Render(dl); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}
