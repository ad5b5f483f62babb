package repeat

// swatchPalette cycles through muted colors so neighbouring items differ.
var swatchPalette = [...]uint32{
	RGBA(0, 100, 150, 255),
	RGBA(150, 60, 40, 255),
	RGBA(60, 130, 70, 255),
	RGBA(140, 120, 40, 255),
	RGBA(100, 70, 140, 255),
	RGBA(40, 120, 120, 255),
}

// PaletteColor returns the swatch color for index.
func PaletteColor(index int) uint32 {
	if index < 0 {
		index = -index
	}
	return swatchPalette[index%len(swatchPalette)]
}

// Swatch is a solid-color view. It rebinds to the palette color of its new
// index when its handle is reused.
type Swatch struct {
	Color uint32
	Index int
}

// NewSwatch creates the swatch for index.
func NewSwatch(_ Size, index int) View {
	return &Swatch{Color: PaletteColor(index), Index: index}
}

// Bind implements Binder.
func (s *Swatch) Bind(_ Size, index int) {
	s.Color = PaletteColor(index)
	s.Index = index
}

// Draw implements Drawer.
func (s *Swatch) Draw(dl *DrawList, r Rect) {
	const inset = 1
	if r.W <= 2*inset || r.H <= 2*inset {
		dl.AddRect(r.X, r.Y, r.W, r.H, s.Color)
		return
	}
	dl.AddRect(r.X+inset, r.Y+inset, r.W-2*inset, r.H-2*inset, s.Color)
}
