package repeat

import "strconv"

// Axis maps the primary/secondary vocabulary onto device axes.
// The primary axis is the scroll direction; the secondary axis is the one
// items wrap along. An Axis is chosen once from the viewport and never
// changes for the lifetime of a Manager.
type Axis struct {
	vertical bool
}

// NewAxis returns the mapping for a vertically (true) or horizontally
// scrolling viewport.
func NewAxis(vertical bool) Axis {
	return Axis{vertical: vertical}
}

// Vertical reports whether the primary axis is Y.
func (a Axis) Vertical() bool { return a.vertical }

// Primary returns the scroll-axis component of a size.
func (a Axis) Primary(s Size) float32 {
	if a.vertical {
		return s.Height
	}
	return s.Width
}

// Secondary returns the cross-axis component of a size.
func (a Axis) Secondary(s Size) float32 {
	if a.vertical {
		return s.Width
	}
	return s.Height
}

// PrimaryOf returns the scroll-axis component of an offset.
func (a Axis) PrimaryOf(v Vec2) float32 {
	if a.vertical {
		return v.Y
	}
	return v.X
}

// SecondaryOf returns the cross-axis component of an offset.
func (a Axis) SecondaryOf(v Vec2) float32 {
	if a.vertical {
		return v.X
	}
	return v.Y
}

// Point resolves a primary/secondary pair to x/y.
func (a Axis) Point(primary, secondary float32) Vec2 {
	if a.vertical {
		return Vec2{X: secondary, Y: primary}
	}
	return Vec2{X: primary, Y: secondary}
}

// ContentSize resolves a primary/secondary extent to width/height.
func (a Axis) ContentSize(primary, secondary float32) Size {
	p := a.Point(primary, secondary)
	return Size{Width: p.X, Height: p.Y}
}

// TransformString formats an item offset as a translate3d transform in
// device order, e.g. "translate3d(6px,3px,0)" for a vertical axis with
// primary 3 and secondary 6.
func (a Axis) TransformString(primary, secondary float32) string {
	p := a.Point(primary, secondary)
	buf := make([]byte, 0, 32)
	buf = append(buf, "translate3d("...)
	buf = strconv.AppendFloat(buf, float64(p.X), 'f', -1, 32)
	buf = append(buf, "px,"...)
	buf = strconv.AppendFloat(buf, float64(p.Y), 'f', -1, 32)
	buf = append(buf, "px,0)"...)
	return string(buf)
}
