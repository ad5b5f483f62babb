package repeat

// CalculateDimensions packs items into rows along the secondary axis.
//
// Items flow along the secondary axis until the next one would overflow
// secondaryExtent, then a new row starts at the previous row's origin plus
// the largest primary size seen in that row. The first item of a row is
// never rejected, so an extent of 0 (or one narrower than an item) yields
// one item per row.
func CalculateDimensions(sizes []Size, axis Axis, secondaryExtent float32) []Dimension {
	dims := make([]Dimension, len(sizes))

	var (
		secCursor float32 // next free slot across the current row
		rowOrigin float32 // primary offset of the current row
		rowMax    float32 // largest primary size in the current row
		rowItems  int
	)

	for i, s := range sizes {
		primary := axis.Primary(s)
		secondary := axis.Secondary(s)

		if rowItems > 0 && secCursor+secondary > secondaryExtent {
			rowOrigin += rowMax
			secCursor = 0
			rowMax = 0
			rowItems = 0
		}

		dims[i] = Dimension{
			PrimarySize:   primary,
			SecondarySize: secondary,
			PrimaryPos:    rowOrigin,
			SecondaryPos:  secCursor,
		}

		secCursor += secondary
		rowMax = maxf(rowMax, primary)
		rowItems++
	}

	return dims
}

// CalculateDimensions packs the data source's current items against the
// viewport's cross-axis client extent.
func (m *Manager) CalculateDimensions() []Dimension {
	n := m.source.Len()
	sizes := make([]Size, n)
	for i := 0; i < n; i++ {
		sizes[i] = m.source.ItemSize(i)
	}
	return CalculateDimensions(sizes, m.axis, m.secondaryScrollSize())
}

// contentExtent is the primary-axis size of the packed content.
func contentExtent(dims []Dimension) float32 {
	if len(dims) == 0 {
		return 0
	}
	return dims[len(dims)-1].End()
}
