//go:build !test
// +build !test

package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type InputHandler struct {
	window     *glfw.Window
	keyPressed map[glfw.Key]bool // single press detection
	width      int
	height     int
}

func NewInputHandler(window *glfw.Window) *InputHandler {
	w, h := window.GetFramebufferSize()
	return &InputHandler{
		window:     window,
		keyPressed: make(map[glfw.Key]bool),
		width:      w,
		height:     h,
	}
}

// SetupCallbacks captures the cursor and routes window events. Cursor motion
// goes straight to the camera, so it is applied during PollEvents, before the
// next frame's Tick.
func (i *InputHandler) SetupCallbacks(camera *Camera) {
	i.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	i.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		camera.OnMouseMove(xpos, ypos)
	})

	// The cursor may have jumped while another window had focus.
	i.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			camera.ResetMouse()
		}
	})

	i.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		i.keyPressed[key] = true
	})

	i.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		i.width, i.height = width, height
	})
}

// Keys polls the arrow keys.
func (i *InputHandler) Keys() Keys {
	return Keys{
		Up:    i.window.GetKey(glfw.KeyUp) == glfw.Press,
		Down:  i.window.GetKey(glfw.KeyDown) == glfw.Press,
		Left:  i.window.GetKey(glfw.KeyLeft) == glfw.Press,
		Right: i.window.GetKey(glfw.KeyRight) == glfw.Press,
	}
}

func (i *InputHandler) WasKeyPressed(key glfw.Key) bool {
	if i.keyPressed[key] {
		i.keyPressed[key] = false
		return true
	}
	return false
}

// FramebufferSize is the latest size reported by the resize callback.
func (i *InputHandler) FramebufferSize() (int, int) {
	return i.width, i.height
}
