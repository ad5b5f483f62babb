package repeat

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Manager virtualizes a DataSource inside a Viewport.
//
// It owns the packed geometry of every item, the current index with its
// neighbouring thresholds, and the table of mounted item handles. All methods
// must be called from the goroutine that owns the viewport (the UI thread);
// Manager does no locking.
//
// Usage:
//
//	view := repeat.NewScrollView(repeat.WithClientSize(800, 600))
//	m, err := repeat.NewManager(source, view)
//	if err != nil {
//	    return err
//	}
//	defer m.Destroy()
//	m.Resize()
type Manager struct {
	source   DataSource
	viewport Viewport
	axis     Axis
	logger   *slog.Logger

	redrawThreshold float32
	lookahead       float32

	dimensions   []Dimension
	viewportSize float32

	currentIndex int
	hasPrevIndex bool
	previousPos  float32
	hasNextIndex bool
	nextPos      float32

	lastRenderScrollValue float32
	renderedItems         map[int]*Item

	stats     Stats
	destroyed bool
}

// Stats counts the structural work a Manager has done.
type Stats struct {
	Renders  int // Full render passes that reached the band computation
	Mounts   int // Items attached
	Unmounts int // Items detached
}

// NewManager creates a Manager and installs it as the viewport's scroll
// handler. Call Resize once the viewport has a client size.
func NewManager(source DataSource, viewport Viewport, opts ...Option) (*Manager, error) {
	if source == nil {
		return nil, ErrNilDataSource
	}
	if viewport == nil {
		return nil, ErrNilViewport
	}

	cfg := defaultManagerConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("new manager: %w", err)
		}
	}

	m := &Manager{
		source:          source,
		viewport:        viewport,
		axis:            NewAxis(viewport.Vertical()),
		logger:          cfg.logger,
		redrawThreshold: cfg.redrawThreshold,
		lookahead:       cfg.lookahead,
		renderedItems:   make(map[int]*Item),
	}
	viewport.SetScrollHandler(m.RenderScroll)
	return m, nil
}

// Axis returns the orientation mapping chosen at construction.
func (m *Manager) Axis() Axis { return m.axis }

func (m *Manager) scrollValue() float32 {
	return m.axis.PrimaryOf(m.viewport.ScrollOffset())
}

func (m *Manager) scrollMaxValue() float32 {
	return m.axis.PrimaryOf(m.viewport.MaxScrollOffset())
}

func (m *Manager) scrollSize() float32 {
	return m.axis.Primary(m.viewport.ClientSize())
}

func (m *Manager) secondaryScrollSize() float32 {
	return m.axis.Secondary(m.viewport.ClientSize())
}

// Resize recomputes every item's geometry and redraws from scratch.
// Call it when the viewport's client size or the data source changes.
// Resize does nothing once the Manager is destroyed.
func (m *Manager) Resize() {
	if m.destroyed {
		return
	}
	m.dimensions = m.CalculateDimensions()
	m.viewportSize = contentExtent(m.dimensions)
	m.viewport.SetContentSize(m.axis.ContentSize(m.viewportSize, m.secondaryScrollSize()))

	m.logger.Debug("repeat resize",
		"items", len(m.dimensions),
		"viewportSize", m.viewportSize,
		"secondaryExtent", m.secondaryScrollSize())

	m.SetCurrentIndex(0)
	rendered := m.Render(true)

	// Re-anchor the content block on the fresh render. An empty list has no
	// content block, so its primary transform is zero.
	off := m.viewport.ScrollOffset()
	tick := ScrollTick{Left: off.X, Top: off.Y, Zoom: 1, Resized: true}
	anchor := m.lastRenderScrollValue
	if !rendered {
		anchor = m.axis.PrimaryOf(off)
	}
	if m.axis.Vertical() {
		tick.Top -= anchor
	} else {
		tick.Left -= anchor
	}
	m.viewport.ApplyTransform(tick)
}

// RenderScroll is the viewport's scroll hook. The primary component of the
// tick is replaced by the content transform relative to the last full
// render; the rest passes through. Ticks after Destroy are ignored.
func (m *Manager) RenderScroll(tick ScrollTick) {
	if m.destroyed {
		return
	}
	if m.axis.Vertical() {
		tick.Top = m.TransformPosition(tick.Top)
	} else {
		tick.Left = m.TransformPosition(tick.Left)
	}
	m.viewport.ApplyTransform(tick)
}

// TransformPosition decides between the transform-only path and a full
// render for the scroll offset pos, and returns the offset of pos from the
// last full render.
func (m *Manager) TransformPosition(pos float32) float32 {
	if (m.hasNextIndex && pos >= m.nextPos) ||
		(m.hasPrevIndex && pos < m.previousPos) ||
		absf(pos-m.lastRenderScrollValue) > m.redrawThreshold {
		m.Render(false)
	}
	return pos - m.lastRenderScrollValue
}

// Render mounts the band of items around the current scroll offset.
// With redrawAll every mounted item is detached first. Render returns false
// when there is nothing to render (the current index does not name an item),
// in which case everything has been unmounted. A destroyed Manager never
// renders.
func (m *Manager) Render(redrawAll bool) bool {
	if m.destroyed {
		return false
	}
	if _, ok := m.CurrentIndex(); !ok {
		m.removeAll()
		return false
	}
	if redrawAll {
		m.removeAll()
	}

	scrollValue := m.scrollValue()
	start := m.IndexForScrollValue(m.currentIndex, scrollValue)
	band := NewBand(m.dimensions, start, scrollValue, m.scrollSize(), m.lookahead)

	detached := 0
	for _, idx := range m.RenderedIndices() {
		if !band.Contains(idx) {
			m.removeItem(idx)
			detached++
		}
	}
	for i := band.Start; i < band.End; i++ {
		d := m.dimensions[i]
		m.renderItem(i, d.PrimaryPos-scrollValue, d.SecondaryPos)
	}

	m.SetCurrentIndex(start)
	m.lastRenderScrollValue = scrollValue
	m.stats.Renders++

	if verbose() {
		m.logger.Debug("repeat render",
			"scroll", scrollValue,
			"maxScroll", m.scrollMaxValue(),
			"current", start,
			"bandStart", band.Start,
			"bandEnd", band.End,
			"detached", detached,
			"mounted", len(m.renderedItems),
			"redrawAll", redrawAll)
	}
	return true
}

// renderItem mounts the item at index, or repositions it if it is already
// mounted. primary and secondary are relative to the render scroll value.
func (m *Manager) renderItem(index int, primary, secondary float32) {
	item, ok := m.renderedItems[index]
	if !ok {
		item = m.source.Item(index)
		m.source.AttachItem(item)
		m.renderedItems[index] = item
		m.stats.Mounts++
	}
	item.Offset = m.axis.Point(primary, secondary)
	item.Transform = m.axis.TransformString(primary, secondary)
}

// removeItem unmounts the item at index.
func (m *Manager) removeItem(index int) {
	item, ok := m.renderedItems[index]
	if !ok {
		return
	}
	m.source.DetachItem(item)
	delete(m.renderedItems, index)
	m.stats.Unmounts++
}

func (m *Manager) removeAll() {
	for _, idx := range m.RenderedIndices() {
		m.removeItem(idx)
	}
}

// Destroy unmounts every item and releases the viewport's scroll hook.
// Afterwards Resize, RenderScroll and Render do nothing, so listeners that
// still hold the Manager cannot mount items again. Calling Destroy more than
// once is a no-op.
func (m *Manager) Destroy() {
	if m.destroyed {
		return
	}
	m.removeAll()
	m.viewport.SetScrollHandler(nil)
	m.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (m *Manager) Destroyed() bool { return m.destroyed }

// RenderedIndices returns the mounted indices in ascending order.
func (m *Manager) RenderedIndices() []int {
	return slices.Sorted(maps.Keys(m.renderedItems))
}

// Rendered returns the handle mounted at index.
func (m *Manager) Rendered(index int) (*Item, bool) {
	item, ok := m.renderedItems[index]
	return item, ok
}

// Dimensions returns the packed geometry from the last resize.
// The slice is owned by the Manager and must not be modified.
func (m *Manager) Dimensions() []Dimension { return m.dimensions }

// ViewportSize returns the primary-axis content extent reported to the
// viewport.
func (m *Manager) ViewportSize() float32 { return m.viewportSize }

// LastRenderScrollValue returns the scroll offset of the last full render.
func (m *Manager) LastRenderScrollValue() float32 { return m.lastRenderScrollValue }

// Stats returns render counters.
func (m *Manager) Stats() Stats { return m.stats }
