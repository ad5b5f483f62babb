package repeat

// Style defines the colors and metrics a Screen draws with.
type Style struct {
	// Viewport background (0 = leave the framebuffer untouched)
	BackgroundColor uint32

	// Outline drawn around each mounted item (0 = none)
	ItemBorderColor uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32
	ScrollbarSize      float32
	ScrollbarMinGrab   float32 // Smallest thumb length
}

// DefaultStyle returns a neutral dark style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor:    RGBA(20, 20, 20, 200),
		ItemBorderColor:    RGBA(80, 80, 80, 255),
		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),
		ScrollbarSize:      12,
		ScrollbarMinGrab:   20,
	}
}

// GTAStyle returns the high-contrast blue style.
func GTAStyle() Style {
	return Style{
		BackgroundColor:    RGBA(0, 0, 0, 220),
		ItemBorderColor:    RGBA(0, 100, 150, 255),
		ScrollbarBgColor:   RGBA(20, 20, 20, 255),
		ScrollbarGrabColor: RGBA(0, 100, 150, 255),
		ScrollbarSize:      14,
		ScrollbarMinGrab:   20,
	}
}
