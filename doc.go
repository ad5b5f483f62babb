/*
Package repeat virtualizes a large ordered collection inside a scrollable
viewport. Only the items near the visible window are mounted; everything
else exists as packed geometry.

# Overview

A Manager sits between a DataSource (item count, sizes, view handles) and a
Viewport (scroll offsets, client size, content transform). On every resize it
packs the items into rows along the secondary axis and reports the content
size. On every scroll tick it decides between two paths:

  - transform only: the mounted block is shifted by the distance scrolled
    since the last full render
  - full render: the band of items around the new offset is recomputed,
    items leaving it are detached, items entering it are attached, and every
    mounted item is repositioned

A full render happens when the offset reaches the next item's position,
drops below the previous item's position, or drifts more than the redraw
threshold (100 units by default) from the last render.

# Quick Start

	layer := repeat.NewLayer()
	src, _ := repeat.NewSource(sizes, layer,
	    func(s repeat.Size, _ int) repeat.Size { return s },
	    repeat.NewSwatch)

	view := repeat.NewScrollView(repeat.WithClientSize(800, 600))
	m, _ := repeat.NewManager(src, view)
	defer m.Destroy()

	sched := repeat.NewScheduler(m, view)
	view.OnResize(sched.PostResize)
	src.OnChange(sched.PostResize)
	m.Resize()

	screen := repeat.NewScreen(renderer, layer, view)

	// Render loop
	for !window.ShouldClose() {
	    view.HandleInput(input)
	    sched.Frame()
	    screen.Render()
	    window.SwapBuffers()
	}

# Orientation

The primary axis is the scroll direction and the secondary axis is the one
items wrap along. A vertical viewport packs items left to right into rows
stacked downwards; ScrollingX packs them top to bottom into columns stacked
rightwards. The orientation is read once, when the Manager is created.

# Threading

Nothing in this package locks. Managers, sources, layers, scroll views and
schedulers belong to the goroutine that drives the UI.

# Keyboard Shortcuts Reference

ScrollView.HandleInput understands:

	Mouse wheel      Scroll 30 units per notch
	Up / Down        Scroll one wheel step (vertical views)
	Left / Right     Scroll one wheel step (horizontal views)
	PageUp/PageDown  Scroll 80% of the visible extent
	Home / End       Jump to the start or end
*/
package repeat
