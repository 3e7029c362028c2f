package egl

import "fmt"

// SurfaceKind tells how a Surface was created.
type SurfaceKind int

const (
	SurfacePbuffer SurfaceKind = iota
	SurfaceWindow
	SurfaceClientBuffer
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfacePbuffer:
		return "pbuffer"
	case SurfaceWindow:
		return "window"
	case SurfaceClientBuffer:
		return "client-buffer"
	}
	return fmt.Sprintf("SurfaceKind(%d)", int(k))
}

// Surface is one native drawable scoped to a Display. Drawing into it and
// presenting it are left to the caller.
type Surface struct {
	display *Display
	handle  owned[SurfaceHandle]
	kind    SurfaceKind
}

func newSurface(d *Display, h SurfaceHandle, kind SurfaceKind) (*Surface, error) {
	if h == 0 {
		return nil, fmt.Errorf("%w: surface handle is EGL_NO_SURFACE", ErrInvalidArgument)
	}
	return &Surface{
		display: d,
		handle: own(h, "eglDestroySurface", func(h SurfaceHandle) bool {
			return d.egl.DestroySurface(d.handle.get(), h)
		}),
		kind: kind,
	}, nil
}

// Handle returns the native surface, or zero once closed.
func (s *Surface) Handle() SurfaceHandle { return s.handle.get() }

func (s *Surface) Kind() SurfaceKind { return s.kind }

func (s *Surface) Display() *Display { return s.display }

// Close destroys the native surface. It is safe to call more than once.
func (s *Surface) Close() error {
	if s == nil {
		return nil
	}
	return s.handle.Release(s.display.egl)
}
