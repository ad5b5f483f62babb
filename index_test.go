package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/repeat"
)

func dimsAt(pos ...float32) []repeat.Dimension {
	dims := make([]repeat.Dimension, len(pos))
	for i, p := range pos {
		dims[i] = repeat.Dimension{PrimaryPos: p, PrimarySize: 10}
	}
	return dims
}

func TestIndexForScrollValue(t *testing.T) {
	dims := dimsAt(0, 100, 200, 300, 400, 500)

	tests := []struct {
		name   string
		hint   int
		scroll float32
		want   int
	}{
		{"walks back", 3, 50, 1},
		{"walks forward", 1, 450, 4},
		{"past the end", 0, 1000, 5},
		{"before the start", 2, -100, 0},
		{"exact position stays", 2, 200, 2},
		{"hint out of range", 99, 250, 3},
		{"negative hint", -4, 350, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repeat.IndexForScrollValue(dims, tt.hint, tt.scroll))
		})
	}
}

func TestIndexForScrollValueEmpty(t *testing.T) {
	assert.Equal(t, 0, repeat.IndexForScrollValue(nil, 3, 50))
}

func TestIndexForScrollValueGridRow(t *testing.T) {
	// Three items share the row at 30; scrolling into it lands on the last.
	dims := dimsAt(0, 0, 30, 30, 30, 60)
	assert.Equal(t, 4, repeat.IndexForScrollValue(dims, 0, 40))
	assert.Equal(t, 2, repeat.IndexForScrollValue(dims, 4, 10))
}

// managerWithDims builds a Manager whose dimensions are one item per
// primary position, in a 100-wide vertical viewport.
func managerWithDims(t *testing.T, heights ...float32) (*repeat.Manager, *fakeViewport, *fakeSource) {
	t.Helper()
	sizes := make([]repeat.Size, len(heights))
	for i, h := range heights {
		sizes[i] = repeat.Size{Width: 100, Height: h}
	}
	view := newFakeViewport(true, 100, 10)
	src := newFakeSource(sizes...)
	m, err := repeat.NewManager(src, view)
	require.NoError(t, err)
	m.Resize()
	return m, view, src
}

func TestSetCurrentIndex(t *testing.T) {
	// Primary positions 0, 25, 50
	m, _, _ := managerWithDims(t, 25, 25, 25)

	m.SetCurrentIndex(1)
	prev, hasPrev := m.PreviousPos()
	next, hasNext := m.NextPos()
	assert.True(t, hasPrev)
	assert.Equal(t, float32(0), prev)
	assert.True(t, hasNext)
	assert.Equal(t, float32(50), next)

	idx, ok := m.CurrentIndex()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSetCurrentIndexEnds(t *testing.T) {
	m, _, _ := managerWithDims(t, 25, 25, 25)

	m.SetCurrentIndex(0)
	_, hasPrev := m.PreviousPos()
	next, hasNext := m.NextPos()
	assert.False(t, hasPrev)
	assert.True(t, hasNext)
	assert.Equal(t, float32(25), next)

	m.SetCurrentIndex(2)
	prev, hasPrev := m.PreviousPos()
	_, hasNext = m.NextPos()
	assert.True(t, hasPrev)
	assert.Equal(t, float32(25), prev)
	assert.False(t, hasNext)
}

func TestSetCurrentIndexOutOfRange(t *testing.T) {
	m, _, _ := managerWithDims(t, 25, 25, 25)

	m.SetCurrentIndex(3)
	_, ok := m.CurrentIndex()
	assert.False(t, ok)
	prev, hasPrev := m.PreviousPos()
	_, hasNext := m.NextPos()
	assert.True(t, hasPrev)
	assert.Equal(t, float32(50), prev)
	assert.False(t, hasNext)

	m.SetCurrentIndex(10)
	_, hasPrev = m.PreviousPos()
	assert.False(t, hasPrev)
}

func TestSetCurrentIndexEmpty(t *testing.T) {
	m, _, _ := managerWithDims(t)

	m.SetCurrentIndex(0)
	_, ok := m.CurrentIndex()
	_, hasPrev := m.PreviousPos()
	_, hasNext := m.NextPos()
	assert.False(t, ok)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}
