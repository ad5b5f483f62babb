package repeat_test

import (
	"github.com/go-theft-auto/repeat"
)

// fakeViewport records everything a Manager tells it.
type fakeViewport struct {
	vertical bool
	offset   repeat.Vec2
	client   repeat.Size
	content  repeat.Size
	handler  func(repeat.ScrollTick)
	applied  []repeat.ScrollTick
}

func newFakeViewport(vertical bool, w, h float32) *fakeViewport {
	return &fakeViewport{vertical: vertical, client: repeat.Size{Width: w, Height: h}}
}

func (v *fakeViewport) Vertical() bool            { return v.vertical }
func (v *fakeViewport) ScrollOffset() repeat.Vec2 { return v.offset }
func (v *fakeViewport) ClientSize() repeat.Size   { return v.client }

func (v *fakeViewport) MaxScrollOffset() repeat.Vec2 {
	return repeat.Vec2{
		X: max(0, v.content.Width-v.client.Width),
		Y: max(0, v.content.Height-v.client.Height),
	}
}

func (v *fakeViewport) SetContentSize(size repeat.Size)                  { v.content = size }
func (v *fakeViewport) SetScrollHandler(handler func(repeat.ScrollTick)) { v.handler = handler }
func (v *fakeViewport) ApplyTransform(tick repeat.ScrollTick)            { v.applied = append(v.applied, tick) }

// scroll moves the offset and delivers a tick like a real viewport would.
func (v *fakeViewport) scroll(x, y float32) {
	v.offset = repeat.Vec2{X: x, Y: y}
	tick := repeat.ScrollTick{Left: x, Top: y, Zoom: 1}
	if v.handler != nil {
		v.handler(tick)
		return
	}
	v.ApplyTransform(tick)
}

func (v *fakeViewport) lastApplied() repeat.ScrollTick {
	if len(v.applied) == 0 {
		return repeat.ScrollTick{}
	}
	return v.applied[len(v.applied)-1]
}

// fakeSource hands out a fresh handle per request and counts attach and
// detach calls per handle.
type fakeSource struct {
	sizes    []repeat.Size
	attaches map[*repeat.Item]int
	detaches map[*repeat.Item]int
	live     map[int]*repeat.Item
}

func newFakeSource(sizes ...repeat.Size) *fakeSource {
	return &fakeSource{
		sizes:    sizes,
		attaches: make(map[*repeat.Item]int),
		detaches: make(map[*repeat.Item]int),
		live:     make(map[int]*repeat.Item),
	}
}

func (s *fakeSource) Len() int                       { return len(s.sizes) }
func (s *fakeSource) ItemSize(index int) repeat.Size { return s.sizes[index] }
func (s *fakeSource) Item(index int) *repeat.Item {
	return &repeat.Item{Index: index, Size: s.sizes[index]}
}

func (s *fakeSource) AttachItem(item *repeat.Item) {
	s.attaches[item]++
	s.live[item.Index] = item
}

func (s *fakeSource) DetachItem(item *repeat.Item) {
	s.detaches[item]++
	delete(s.live, item.Index)
}

// column returns n items of the given height, each as wide as width.
func column(n int, width, height float32) []repeat.Size {
	sizes := make([]repeat.Size, n)
	for i := range sizes {
		sizes[i] = repeat.Size{Width: width, Height: height}
	}
	return sizes
}

// mockRenderer counts frames and snapshots the last draw list, which is
// returned to the pool after Render.
type mockRenderer struct {
	renderCalls int
	vertices    int
	indices     int
	commands    int
	resized     [2]int
}

func (m *mockRenderer) Render(dl *repeat.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.indices = len(dl.IdxBuffer)
	m.commands = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) Resize(width, height int) { m.resized = [2]int{width, height} }
