package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/shadeui/shade"
)

// GLFWInputAdapter adapts GLFW input to shade.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *shade.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  shade.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, after polling or waiting for events.
func (a *GLFWInputAdapter) Update(deltaTime float32) *shade.InputState {
	a.input.Reset()

	// GLFW's timer is the frame-stable clock the engine's hover and
	// animation timing reads through InputState.Time.
	a.input.SetTime(glfw.GetTime())

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.UpdateKeyRepeat(deltaTime)

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *shade.InputState {
	return a.input
}

// RequestFrame wakes a glfw.WaitEvents loop so an animation frame can run
// without user input. Pair with Context.WantsRedraw.
func RequestFrame() {
	glfw.PostEmptyEvent()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToShade(key)
	if k == shade.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToShade(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToShade maps GLFW keys to shade keys.
func glfwKeyToShade(key glfw.Key) shade.Key {
	switch key {
	case glfw.KeyTab:
		return shade.KeyTab
	case glfw.KeyLeft:
		return shade.KeyLeft
	case glfw.KeyRight:
		return shade.KeyRight
	case glfw.KeyUp:
		return shade.KeyUp
	case glfw.KeyDown:
		return shade.KeyDown
	case glfw.KeyHome:
		return shade.KeyHome
	case glfw.KeyEnd:
		return shade.KeyEnd
	case glfw.KeyBackspace:
		return shade.KeyBackspace
	case glfw.KeySpace:
		return shade.KeySpace
	case glfw.KeyEnter:
		return shade.KeyEnter
	case glfw.KeyEscape:
		return shade.KeyEscape
	default:
		return shade.KeyNone
	}
}

// glfwMouseButtonToShade maps GLFW mouse buttons to shade mouse buttons.
func glfwMouseButtonToShade(button glfw.MouseButton) shade.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return shade.MouseButtonLeft
	case glfw.MouseButtonRight:
		return shade.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return shade.MouseButtonMiddle
	default:
		return -1
	}
}
