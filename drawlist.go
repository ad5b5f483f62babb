package repeat

import "sync"

// drawListPool reuses DrawList buffers. Screens rebuild their draw list
// every frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 8),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Vertex is one corner of a solid-colour quad.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	Color uint32     // RGBA packed color
}

// DrawCmd is a run of indices drawn under one clip rectangle.
// Indices are relative to VertexOffset.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// maxCmdVertices keeps per-command indices within uint16.
const maxCmdVertices = 0xFFFF

// noClip is the clip rectangle outside any PushClipRect.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList accumulates the quads of one frame.
//
// Commands are opened lazily: a quad joins the open command when it shares
// its clip rectangle and fits in its vertex budget, and starts a new command
// otherwise. Pushing and popping clips without drawing leaves no commands
// behind, and ElemCount is always current.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack [][4]float32
	clip      [4]float32
}

// Clear resets the DrawList for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
}

// PushClipRect clips subsequent quads to (x1, y1)-(x2, y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{x1, y1, x2, y2}
}

// PopClipRect restores the clip rectangle in effect before the last push.
func (dl *DrawList) PopClipRect() {
	if n := len(dl.clipStack); n > 0 {
		dl.clip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
	}
}

// ClipRect returns the current clip rectangle.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.clip
}

// command returns the command the next quad of nverts vertices belongs to.
func (dl *DrawList) command(nverts int) *DrawCmd {
	if n := len(dl.CmdBuffer); n > 0 {
		cmd := &dl.CmdBuffer[n-1]
		if cmd.ClipRect == dl.clip && len(dl.VtxBuffer)-int(cmd.VertexOffset)+nverts <= maxCmdVertices {
			return cmd
		}
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

// AddRect draws a filled rectangle. Fully transparent colours draw nothing.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	cmd := dl.command(4)
	base := uint16(len(dl.VtxBuffer) - int(cmd.VertexOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	cmd.ElemCount += 6
}

// AddRectOutline draws the four edges of a rectangle inward from its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	inner := h - 2*thickness
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	if inner > 0 {
		dl.AddRect(x, y+thickness, thickness, inner, color)
		dl.AddRect(x+w-thickness, y+thickness, thickness, inner, color)
	}
}

// Finalize ends the frame. Clips left pushed are discarded so that a
// reused list starts unclipped; the commands themselves need no fixup.
func (dl *DrawList) Finalize() {
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
}
