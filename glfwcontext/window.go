package glfwcontext

import (
	"fmt"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

// NativeWindow is a GLFW window without a client API, used as the drawable
// of an EGL window surface.
type NativeWindow struct {
	window *glfw.Window
}

// NewNativeWindow creates a visible window with no GL context attached.
func NewNativeWindow(width, height int, title string) (*NativeWindow, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create native window: %w", err)
	}
	w := &NativeWindow{window: win}
	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
	return w, nil
}

// Handle returns the EGLNativeWindowType of the window.
func (w *NativeWindow) Handle() uintptr { return nativeWindow(w.window) }

func (w *NativeWindow) GetFramebufferSize() (int, int) { return w.window.GetFramebufferSize() }

func (w *NativeWindow) ShouldClose() bool { return w.window.ShouldClose() }

func (w *NativeWindow) PollEvents() { glfw.PollEvents() }

// Destroy closes the window. Any EGL surface created on it must be
// destroyed first.
func (w *NativeWindow) Destroy() { w.window.Destroy() }
