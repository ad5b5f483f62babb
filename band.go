package repeat

// Band is the contiguous range of item indices that should be mounted for
// a given scroll offset: the visible window plus a lookahead margin on both
// ends.
//
// Usage:
//
//	band := NewBand(dims, start, scroll, clientExtent, lookahead)
//	for i := band.Start; i < band.End; i++ {
//	    // mount item i
//	}
type Band struct {
	Start int // First mounted index (inclusive)
	End   int // Last mounted index (exclusive)
}

// NewBand computes the band around start, the index resolved for scroll.
//
// The band opens at the first item of the row that covers the leading edge
// (scroll - lookahead). Rows are identified by a shared primary position, so
// the start is moved back to the row's first item and, while the row itself
// begins after the leading edge, into the previous row. The band closes
// before the first item that starts at or after scroll + extent + lookahead.
func NewBand(dims []Dimension, start int, scroll, extent, lookahead float32) Band {
	n := len(dims)
	if n == 0 {
		return Band{}
	}
	if start < 0 {
		start = 0
	} else if start >= n {
		start = n - 1
	}

	leading := scroll - lookahead
	trailing := scroll + extent + lookahead

	first := start
	for first > 0 {
		prev, cur := dims[first-1].PrimaryPos, dims[first].PrimaryPos
		if prev != cur && cur <= leading {
			break
		}
		first--
	}

	end := start
	for end < n && dims[end].PrimaryPos < trailing {
		end++
	}
	// The resolved item is always part of the band, even when the viewport
	// has no primary extent yet.
	if end <= start {
		end = start + 1
	}

	return Band{Start: first, End: end}
}

// Contains returns true if the item at idx belongs to the band.
func (b Band) Contains(idx int) bool {
	return idx >= b.Start && idx < b.End
}

// Len returns the number of items in the band.
func (b Band) Len() int {
	return b.End - b.Start
}
