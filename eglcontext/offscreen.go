package eglcontext

import (
	"errors"
	"fmt"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/graphics"
)

// Offscreen is a graphics.Context rendering into a pbuffer.
type Offscreen struct {
	ctx     *egl.Context
	surface *egl.Surface // pbuffer we created, nil when ctx owns a 1x1 one
	width   int
	height  int
}

var _ graphics.Context = (*Offscreen)(nil)

// NewOffscreen creates a context sharing objects with share (may be nil).
// A size of 1x1 or less uses the context's own pbuffer; larger sizes get a
// dedicated pbuffer of that size.
func NewOffscreen(d *egl.Display, share *egl.Context, width, height int) (*Offscreen, error) {
	if width <= 1 && height <= 1 {
		ctx, err := d.CreateContext(share)
		if err != nil {
			return nil, fmt.Errorf("failed to create offscreen context: %w", err)
		}
		return &Offscreen{ctx: ctx, width: 1, height: 1}, nil
	}

	surf, err := d.CreatePbufferSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create %dx%d pbuffer: %w", width, height, err)
	}
	ctx, err := d.CreateContextWithSurface(share, surf)
	if err != nil {
		surf.Close()
		return nil, fmt.Errorf("failed to create offscreen context: %w", err)
	}
	return &Offscreen{ctx: ctx, surface: surf, width: width, height: height}, nil
}

// Context returns the underlying EGL context, for sharing.
func (o *Offscreen) Context() *egl.Context { return o.ctx }

func (o *Offscreen) drawable() *egl.Surface {
	if o.surface != nil {
		return o.surface
	}
	return o.ctx.OffscreenSurface()
}

func (o *Offscreen) MakeCurrent() error {
	return o.ctx.MakeCurrent(o.drawable())
}

func (o *Offscreen) DetachCurrent() error {
	return o.ctx.ReleaseCurrent()
}

// Shutdown releases the pbuffer and then the context.
func (o *Offscreen) Shutdown() {
	if o.ctx.IsCurrent() {
		if err := o.ctx.ReleaseCurrent(); err != nil {
			egl.Logger().Warn("eglcontext: release current", "err", err)
		}
	}
	err := errors.Join(o.surface.Close(), o.ctx.Close())
	if err != nil {
		egl.Logger().Warn("eglcontext: offscreen shutdown", "err", err)
	}
}

func (o *Offscreen) ShouldClose() bool { return false }

// EndFrame is a no-op: a pbuffer has nothing to present.
func (o *Offscreen) EndFrame() error { return nil }

func (o *Offscreen) GetFramebufferSize() (int, int) { return o.width, o.height }

func (o *Offscreen) Version() graphics.GLVersion { return o.ctx.Version() }
func (o *Offscreen) SampleCount() int            { return o.ctx.SampleCount() }
func (o *Offscreen) StencilSize() int            { return o.ctx.StencilSize() }
