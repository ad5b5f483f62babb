package repeat

// IndexForScrollValue walks from hint toward the item at scrollValue.
//
// The walk is direction-biased: when scrollValue is at or before the hint's
// position it steps back while the previous item still starts after
// scrollValue; otherwise it steps forward while the next item starts before
// scrollValue. During continuous scrolling the hint is the previous result,
// so each call moves only a few positions. Results are clamped to
// [0, len(dims)-1]; an empty slice yields 0.
//
// The forward walk only passes items that start strictly before scrollValue.
// An offset exactly on the next item's position therefore keeps the current
// index, and a Manager held at that offset re-renders on every tick.
func IndexForScrollValue(dims []Dimension, hint int, scrollValue float32) int {
	n := len(dims)
	if n == 0 {
		return 0
	}
	i := hint
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}

	if scrollValue <= dims[i].PrimaryPos {
		for i > 0 && dims[i-1].PrimaryPos > scrollValue {
			i--
		}
		return i
	}
	for i+1 < n && dims[i+1].PrimaryPos < scrollValue {
		i++
	}
	return i
}

// IndexForScrollValue resolves scrollValue against the current dimensions.
func (m *Manager) IndexForScrollValue(hint int, scrollValue float32) int {
	return IndexForScrollValue(m.dimensions, hint, scrollValue)
}

// SetCurrentIndex moves the current index and re-derives the neighbouring
// thresholds that bound the transform-only path.
func (m *Manager) SetCurrentIndex(index int) {
	m.currentIndex = index

	if index > 0 && index-1 < len(m.dimensions) {
		m.hasPrevIndex = true
		m.previousPos = m.dimensions[index-1].PrimaryPos
	} else {
		m.hasPrevIndex = false
		m.previousPos = 0
	}

	if next := index + 1; next >= 0 && next < len(m.dimensions) {
		m.hasNextIndex = true
		m.nextPos = m.dimensions[next].PrimaryPos
	} else {
		m.hasNextIndex = false
		m.nextPos = 0
	}
}

// CurrentIndex returns the current index. ok is false when the index does
// not name an item (empty list).
func (m *Manager) CurrentIndex() (index int, ok bool) {
	return m.currentIndex, m.currentIndex >= 0 && m.currentIndex < len(m.dimensions)
}

// PreviousPos returns the primary position of the item before the current
// one, if any.
func (m *Manager) PreviousPos() (float32, bool) {
	return m.previousPos, m.hasPrevIndex
}

// NextPos returns the primary position of the item after the current one,
// if any.
func (m *Manager) NextPos() (float32, bool) {
	return m.nextPos, m.hasNextIndex
}
