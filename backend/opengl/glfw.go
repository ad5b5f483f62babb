package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/repeat"
)

// GLFWInputAdapter adapts GLFW input to repeat.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *repeat.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  repeat.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update returns the input collected since the last EndFrame.
// Call this after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *repeat.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// EndFrame clears per-frame input. Call it once the frame has consumed the
// input, before the next glfw.PollEvents.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *repeat.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == repeat.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Held keys keep scrolling.
		a.input.PressKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	// Several wheel events can arrive between frames.
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps GLFW keys to scroll keys.
func glfwKeyToKey(key glfw.Key) repeat.Key {
	switch key {
	case glfw.KeyLeft:
		return repeat.KeyLeft
	case glfw.KeyRight:
		return repeat.KeyRight
	case glfw.KeyUp:
		return repeat.KeyUp
	case glfw.KeyDown:
		return repeat.KeyDown
	case glfw.KeyPageUp:
		return repeat.KeyPageUp
	case glfw.KeyPageDown:
		return repeat.KeyPageDown
	case glfw.KeyHome:
		return repeat.KeyHome
	case glfw.KeyEnd:
		return repeat.KeyEnd
	default:
		return repeat.KeyNone
	}
}
