package eglcontext

import (
	"errors"
	"fmt"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/graphics"
)

// NativeWindow is a platform window that EGL can draw into.
type NativeWindow interface {
	// Handle is the EGLNativeWindowType value: an X11 Window, an HWND or
	// a wl_egl_window pointer.
	Handle() uintptr
	GetFramebufferSize() (int, int)
	ShouldClose() bool
	// PollEvents processes pending window system events.
	PollEvents()
}

// Window is a graphics.Context presenting into a native window.
type Window struct {
	display *egl.Display
	ctx     *egl.Context
	surface *egl.Surface
	win     NativeWindow
}

var _ graphics.Context = (*Window)(nil)

// NewWindow creates a window surface for win and a context to draw into it,
// sharing objects with share (may be nil). When the negotiated config
// supports pbuffers the context also gets its own offscreen pbuffer.
func NewWindow(d *egl.Display, share *egl.Context, win NativeWindow) (*Window, error) {
	surface, err := d.CreateWindowSurface(win.Handle())
	if err != nil {
		return nil, fmt.Errorf("failed to create window surface: %w", err)
	}

	var ctx *egl.Context
	if d.SupportsPbuffer() {
		ctx, err = d.CreateContext(share)
	} else {
		ctx, err = d.CreateContextWithSurface(share, nil)
	}
	if err != nil {
		surface.Close()
		return nil, fmt.Errorf("failed to create window context: %w", err)
	}
	return &Window{display: d, ctx: ctx, surface: surface, win: win}, nil
}

// Context returns the underlying EGL context, for sharing.
func (w *Window) Context() *egl.Context { return w.ctx }

// Surface returns the window surface.
func (w *Window) Surface() *egl.Surface { return w.surface }

func (w *Window) MakeCurrent() error {
	return w.ctx.MakeCurrent(w.surface)
}

func (w *Window) DetachCurrent() error {
	return w.ctx.ReleaseCurrent()
}

// Shutdown destroys the window surface, then the context. The native
// window itself belongs to the caller.
func (w *Window) Shutdown() {
	if w.ctx.IsCurrent() {
		if err := w.ctx.ReleaseCurrent(); err != nil {
			egl.Logger().Warn("eglcontext: release current", "err", err)
		}
	}
	if err := errors.Join(w.surface.Close(), w.ctx.Close()); err != nil {
		egl.Logger().Warn("eglcontext: window shutdown", "err", err)
	}
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// EndFrame swaps the window surface and polls window events.
func (w *Window) EndFrame() error {
	b := w.display.Binding()
	if !b.SwapBuffers(w.display.Handle(), w.surface.Handle()) {
		return &egl.DriverError{Call: "eglSwapBuffers", Code: b.GetError()}
	}
	w.win.PollEvents()
	return nil
}

func (w *Window) GetFramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *Window) Version() graphics.GLVersion { return w.ctx.Version() }
func (w *Window) SampleCount() int            { return w.ctx.SampleCount() }
func (w *Window) StencilSize() int            { return w.ctx.StencilSize() }
