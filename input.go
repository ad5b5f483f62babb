package repeat

// Key represents a keyboard key that scrolls a ScrollView.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCount
)

// InputState holds scroll-relevant input for the current frame.
// This is typically populated by a backend from GLFW or a terminal.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// PressKey records a press-and-release within one frame. Terminal backends
// only see key presses, never releases.
func (s *InputState) PressKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyPressed[key] = true
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyNone:
		return "--"
	}
	return "?"
}
