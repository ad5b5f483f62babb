package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/repeat"
)

func identitySize(s repeat.Size, _ int) repeat.Size { return s }

func newSwatchSource(t *testing.T, n int, opts ...repeat.SourceOption) (*repeat.Source[repeat.Size], *repeat.Layer) {
	t.Helper()
	layer := repeat.NewLayer()
	src, err := repeat.NewSource(column(n, 100, 50), layer, identitySize, repeat.NewSwatch, opts...)
	require.NoError(t, err)
	return src, layer
}

func TestNewSourceValidation(t *testing.T) {
	_, err := repeat.NewSource(column(1, 1, 1), nil, identitySize, repeat.NewSwatch)
	assert.ErrorIs(t, err, repeat.ErrNilContainer)

	_, err = repeat.NewSource(column(1, 1, 1), repeat.NewLayer(), nil, repeat.NewSwatch)
	assert.ErrorIs(t, err, repeat.ErrInvalidOption)

	_, err = repeat.NewSource(column(1, 1, 1), repeat.NewLayer(), identitySize, repeat.NewSwatch, repeat.WithBackupLimit(-1))
	assert.ErrorIs(t, err, repeat.ErrInvalidOption)
}

func TestSourceItem(t *testing.T) {
	src, layer := newSwatchSource(t, 3)

	assert.Equal(t, 3, src.Len())
	assert.Equal(t, repeat.Size{Width: 100, Height: 50}, src.ItemSize(2))

	item := src.Item(2)
	assert.Equal(t, 2, item.Index)
	assert.Equal(t, repeat.Size{Width: 100, Height: 50}, item.Size)
	sw, ok := item.View.(*repeat.Swatch)
	require.True(t, ok)
	assert.Equal(t, repeat.PaletteColor(2), sw.Color)

	src.AttachItem(item)
	assert.Same(t, item, src.Item(2), "a mounted index returns its handle")
	assert.Equal(t, []*repeat.Item{item}, layer.Items())
}

func TestSourceRecyclesDetachedHandles(t *testing.T) {
	src, layer := newSwatchSource(t, 10)

	item := src.Item(0)
	src.AttachItem(item)
	src.DetachItem(item)
	assert.Equal(t, 1, src.BackupLen())
	assert.Zero(t, layer.Len())

	reused := src.Item(7)
	assert.Same(t, item, reused)
	assert.Equal(t, 7, reused.Index)
	assert.Equal(t, repeat.PaletteColor(7), reused.View.(*repeat.Swatch).Color, "view is rebound")
	assert.Equal(t, 7, reused.View.(*repeat.Swatch).Index)
	assert.Zero(t, src.BackupLen())

	created, recycled := src.Created()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, recycled)
}

func TestSourceBackupLimit(t *testing.T) {
	src, _ := newSwatchSource(t, 10, repeat.WithBackupLimit(2))

	for i := range 5 {
		item := src.Item(i)
		src.AttachItem(item)
		src.DetachItem(item)
	}
	// Each detach refills the pool the next Item drained.
	assert.Equal(t, 1, src.BackupLen())

	items := make([]*repeat.Item, 5)
	for i := range items {
		items[i] = src.Item(i)
		src.AttachItem(items[i])
	}
	for _, item := range items {
		src.DetachItem(item)
	}
	assert.Equal(t, 2, src.BackupLen())
}

func TestSourceWithoutRecycling(t *testing.T) {
	src, _ := newSwatchSource(t, 3, repeat.WithBackupLimit(0))

	item := src.Item(0)
	src.AttachItem(item)
	src.DetachItem(item)

	assert.Zero(t, src.BackupLen())
	assert.NotSame(t, item, src.Item(0))
}

type plainView struct{ index int }

func TestSourceTemplateWithoutBinder(t *testing.T) {
	layer := repeat.NewLayer()
	src, err := repeat.NewSource([]int{10, 20, 30}, layer,
		func(v int, _ int) repeat.Size { return repeat.Size{Width: float32(v), Height: 1} },
		func(_ int, i int) repeat.View { return &plainView{index: i} })
	require.NoError(t, err)

	item := src.Item(0)
	src.AttachItem(item)
	src.DetachItem(item)

	reused := src.Item(2)
	assert.Same(t, item, reused)
	assert.Equal(t, &plainView{index: 2}, reused.View, "non-binders get a fresh view")
	assert.Equal(t, float32(30), reused.Size.Width)
	assert.Equal(t, 30, src.At(2))
}

func TestSourceSetItemsResizesManager(t *testing.T) {
	src, layer := newSwatchSource(t, 10)
	view := repeat.NewScrollView(repeat.WithClientSize(100, 100))
	m, err := repeat.NewManager(src, view)
	require.NoError(t, err)
	src.OnChange(m.Resize)
	m.Resize()
	require.Equal(t, 4, layer.Len())

	src.SetItems(column(1, 100, 50))

	assert.Equal(t, float32(50), m.ViewportSize())
	assert.Equal(t, []int{0}, m.RenderedIndices())
	assert.Equal(t, 1, layer.Len())

	src.SetItems(nil)
	assert.Zero(t, layer.Len())
}

func TestSourceWithManagerScrolling(t *testing.T) {
	src, layer := newSwatchSource(t, 1000)
	view := repeat.NewScrollView(repeat.WithClientSize(100, 100))
	m, err := repeat.NewManager(src, view)
	require.NoError(t, err)
	m.Resize()

	for y := float32(0); y <= 5000; y += 25 {
		view.ScrollTo(0, y)
	}

	assert.Equal(t, len(m.RenderedIndices()), layer.Len())
	for _, item := range layer.Items() {
		mounted, ok := m.Rendered(item.Index)
		require.True(t, ok, "layer item %d is not tracked", item.Index)
		assert.Same(t, mounted, item)
		assert.Equal(t, item.Index, item.View.(*repeat.Swatch).Index)
	}
	created, reused := src.Created()
	assert.Less(t, created, 20, "handles are recycled while scrolling")
	assert.Positive(t, reused)
}
