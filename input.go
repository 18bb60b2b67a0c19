package shade

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Time is the host's monotonic clock in seconds, sampled once per frame
	// so every timing decision within the frame sees the same instant.
	Time float64

	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Text input (Unicode characters typed this frame)
	InputChars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
}

// SetTime sets the frame-stable clock reading.
func (s *InputState) SetTime(t float64) {
	s.Time = t
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
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
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(y float32) {
	s.MouseWheelY = y
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// PointerPos returns the current pointer position.
func (s *InputState) PointerPos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every
// KeyRepeatInterval. Use this for actions that should repeat while a key is
// held, like backspace in a search field.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger when this frame crosses an interval boundary. Approximate
	// (assumes ~60fps for the previous frame) but good enough for UI repeat.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears all typed characters for this frame.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
