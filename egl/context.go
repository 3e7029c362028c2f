package egl

import (
	"errors"
	"fmt"

	"github.com/richinsley/goegl/graphics"
)

// Context is one native rendering context plus its offscreen surface.
//
// GL contexts are thread-affine: callers must lock the OS thread around
// MakeCurrent and serialize all use of a Context.
type Context struct {
	display       *Display
	handle        owned[ContextHandle]
	offscreen     *Surface
	ownsOffscreen bool

	version     graphics.GLVersion
	sampleCount int
	stencilSize int
}

func newContext(d *Display, h ContextHandle, offscreen *Surface, ownsOffscreen bool) *Context {
	return &Context{
		display: d,
		handle: own(h, "eglDestroyContext", func(h ContextHandle) bool {
			return d.egl.DestroyContext(d.handle.get(), h)
		}),
		offscreen:     offscreen,
		ownsOffscreen: ownsOffscreen,
		version:       d.cfg.version,
		sampleCount:   d.cfg.sampleCount,
		stencilSize:   d.cfg.stencilSize,
	}
}

// Handle returns the native context, or zero once closed.
func (c *Context) Handle() ContextHandle { return c.handle.get() }

// Display returns the display the context was created on.
func (c *Context) Display() *Display { return c.display }

// OffscreenSurface returns the surface bound by MakeCurrentOffscreen. It
// may be nil for contexts created by CreateContextWithSurface.
func (c *Context) OffscreenSurface() *Surface { return c.offscreen }

func (c *Context) Version() graphics.GLVersion { return c.version }
func (c *Context) SampleCount() int            { return c.sampleCount }
func (c *Context) StencilSize() int            { return c.stencilSize }

// MakeCurrent binds the context to the calling thread with s as both draw
// and read surface. A nil s binds no surface; a closed s is rejected.
func (c *Context) MakeCurrent(s *Surface) error {
	h := c.handle.get()
	if h == 0 {
		return fmt.Errorf("%w: context is closed", ErrInvalidOperation)
	}
	var sh SurfaceHandle
	if s != nil {
		if s.display != c.display {
			return fmt.Errorf("%w: surface belongs to another display", ErrInvalidArgument)
		}
		if sh = s.Handle(); sh == 0 {
			return fmt.Errorf("%w: surface is closed", ErrInvalidOperation)
		}
	}
	d := c.display
	if !d.egl.MakeCurrent(d.handle.get(), sh, sh, h) {
		return driverError(d.egl, "eglMakeCurrent")
	}
	return nil
}

// MakeCurrentOffscreen binds the context with its offscreen surface.
func (c *Context) MakeCurrentOffscreen() error {
	return c.MakeCurrent(c.offscreen)
}

// ReleaseCurrent unbinds whatever context is current on the calling thread.
func (c *Context) ReleaseCurrent() error {
	d := c.display
	if !d.egl.MakeCurrent(d.handle.get(), 0, 0, 0) {
		return driverError(d.egl, "eglMakeCurrent")
	}
	return nil
}

// IsCurrent reports whether this context is current on the calling thread.
func (c *Context) IsCurrent() bool {
	h := c.handle.get()
	return h != 0 && c.display.egl.GetCurrentContext() == h
}

// Close destroys the owned offscreen surface and then the context. It is
// safe to call more than once.
func (c *Context) Close() error {
	var errs []error
	if c.ownsOffscreen && c.offscreen != nil {
		errs = append(errs, c.offscreen.Close())
	}
	errs = append(errs, c.handle.Release(c.display.egl))
	return errors.Join(errs...)
}
