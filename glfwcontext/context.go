package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goegl/graphics"
	options "github.com/richinsley/goegl/options"
)

// Context is the GLFW peer of the EGL contexts: GLFW picks GLX, WGL, NSGL
// or EGL itself and we only see the resulting window.
type Context struct {
	window      *glfw.Window
	version     graphics.GLVersion
	stencilSize int
}

var _ graphics.Context = (*Context)(nil)

// New creates a GLFW window with a context of the requested version,
// sharing objects with share when it is non-nil.
func New(options *options.ContextOptions, version graphics.GLVersion, visible bool, share *Context) (*Context, error) {
	var sharewindow *glfw.Window
	if share != nil {
		sharewindow = share.window
	}

	glfw.DefaultWindowHints()
	if version.Profile == graphics.OpenGLES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		if version.Major > 3 || (version.Major == 3 && version.Minor >= 2) {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}
	glfw.WindowHint(glfw.ContextVersionMajor, version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, version.Minor)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.DepthBits, 8)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, "goegl", nil, sharewindow)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window for %s: %w", version, err)
	}

	c := &Context{
		window: win,
		version: graphics.GLVersion{
			Profile: version.Profile,
			Major:   win.GetAttrib(glfw.ContextVersionMajor),
			Minor:   win.GetAttrib(glfw.ContextVersionMinor),
		},
		stencilSize: 8,
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

// glfwKeyCallback closes the window on Escape.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() error {
	c.window.MakeContextCurrent()
	return nil
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() error {
	glfw.DetachCurrentContext()
	return nil
}

// Shutdown destroys the window and its context.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() error {
	c.window.SwapBuffers()
	glfw.PollEvents()
	return nil
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Version reports the version GLFW actually created, which may be newer
// than the one requested.
func (c *Context) Version() graphics.GLVersion { return c.version }

// SampleCount is always 0: no multisample hint is set.
func (c *Context) SampleCount() int { return 0 }

// StencilSize is the requested stencil size; GLFW has no read-back.
func (c *Context) StencilSize() int { return c.stencilSize }

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
