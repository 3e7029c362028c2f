// Package egltest provides a scriptable in-memory egl.Binding.
package egltest

import (
	"strings"

	"github.com/richinsley/goegl/egl"
)

var (
	_ egl.Binding          = (*Fake)(nil)
	_ egl.DeviceEnumerator = (*Fake)(nil)
)

// Query is a decoded eglChooseConfig attribute list.
type Query struct {
	SurfaceType    int32
	RenderableType int32
	Red            int32
	Green          int32
	Blue           int32
	Alpha          int32
	Stencil        int32
	Depth          int32
}

// Fake records every native call and answers them from its fields. The zero
// value is a driver with no configs at all.
type Fake struct {
	// Display is returned by GetDisplay and GetPlatformDisplay. Zero
	// simulates a failing call; NewFake sets it to 1.
	Display egl.DisplayHandle
	// PlatformDisplay reports whether eglGetPlatformDisplayEXT exists.
	PlatformDisplay bool
	// PlatformDisplayFunc, when set, overrides Display for platform displays.
	PlatformDisplayFunc func(p egl.Platform, native uintptr) egl.DisplayHandle
	// Devices is returned by QueryDevices. Nil means the extension is absent.
	Devices []uintptr

	InitializeFails bool
	Major, Minor    int32
	Extensions      []string

	// RejectAPI makes eglBindAPI fail for the given APIs.
	RejectAPI map[int32]bool
	// Supports decides whether eglChooseConfig finds a config.
	Supports func(q Query) bool
	// ChooseFails makes eglChooseConfig itself return EGL_FALSE.
	ChooseFails bool
	// GrantedSamples is reported for EGL_SAMPLES.
	GrantedSamples int32
	// GrantedStencil, when non-nil, replaces the requested stencil size in
	// EGL_STENCIL_SIZE read-backs.
	GrantedStencil *int32

	FailCreateContext bool
	FailPbuffer       bool
	FailWindowSurface bool
	FailClientBuffer  bool
	FailMakeCurrent   bool
	FailSwap          bool

	// ErrorCode is what GetError reports after a simulated failure.
	ErrorCode int32

	Calls        []string
	Queries      []Query
	BoundAPIs    []int32
	ContextAttrs [][]int32
	ShareHandles []egl.ContextHandle
	PbufferAttrs [][]int32
	Terminated   int
	Current      egl.ContextHandle
	CurrentDraw  egl.SurfaceHandle

	lastError  int32
	nextHandle uintptr
	configs    map[egl.ConfigHandle]Query
	live       map[uintptr]string
}

// NewFake returns a Fake with a valid default display, EGL 1.5 and the
// platform-display extension, supporting configs accepted by supports.
func NewFake(supports func(q Query) bool) *Fake {
	return &Fake{
		Display:         1,
		PlatformDisplay: true,
		Major:           1,
		Minor:           5,
		Extensions:      []string{"EGL_KHR_surfaceless_context", "EGL_EXT_platform_base"},
		Supports:        supports,
		ErrorCode:       egl.EGL_BAD_ALLOC,
	}
}

// SupportsAll accepts every query.
func SupportsAll(Query) bool { return true }

// Only accepts exactly one renderable type, surface type, stencil and depth.
func Only(renderable, surfaceType, stencil, depth int32) func(Query) bool {
	return func(q Query) bool {
		return q.RenderableType == renderable && q.SurfaceType == surfaceType &&
			q.Stencil == stencil && q.Depth == depth
	}
}

// Live returns the number of contexts and surfaces not yet destroyed.
func (f *Fake) Live() int { return len(f.live) }

// CallCount returns how often the named entry point was called.
func (f *Fake) CallCount(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *Fake) record(name string) { f.Calls = append(f.Calls, name) }

func (f *Fake) fail() { f.lastError = f.ErrorCode }

func (f *Fake) alloc(kind string) uintptr {
	if f.live == nil {
		f.live = make(map[uintptr]string)
	}
	f.nextHandle++
	h := 0x1000 + f.nextHandle
	f.live[h] = kind
	return h
}

func (f *Fake) free(h uintptr, kind string) bool {
	if f.live[h] != kind {
		f.lastError = egl.EGL_BAD_PARAMETER
		return false
	}
	delete(f.live, h)
	return true
}

func (f *Fake) GetDisplay(native uintptr) egl.DisplayHandle {
	f.record("eglGetDisplay")
	if f.Display == 0 {
		f.lastError = egl.EGL_BAD_DISPLAY
	}
	return f.Display
}

func (f *Fake) HasPlatformDisplay() bool { return f.PlatformDisplay }

func (f *Fake) GetPlatformDisplay(p egl.Platform, native uintptr, attribs []int32) egl.DisplayHandle {
	f.record("eglGetPlatformDisplayEXT")
	d := f.Display
	if f.PlatformDisplayFunc != nil {
		d = f.PlatformDisplayFunc(p, native)
	}
	if d == 0 {
		f.lastError = egl.EGL_BAD_PARAMETER
	}
	return d
}

func (f *Fake) QueryDevices() ([]uintptr, bool) {
	f.record("eglQueryDevicesEXT")
	return f.Devices, f.Devices != nil
}

func (f *Fake) Initialize(d egl.DisplayHandle) (int32, int32, bool) {
	f.record("eglInitialize")
	if f.InitializeFails {
		f.lastError = egl.EGL_NOT_INITIALIZED
		return 0, 0, false
	}
	return f.Major, f.Minor, true
}

func (f *Fake) Terminate(d egl.DisplayHandle) bool {
	f.record("eglTerminate")
	f.Terminated++
	return true
}

func (f *Fake) QueryString(d egl.DisplayHandle, name int32) string {
	f.record("eglQueryString")
	if name == egl.EGL_EXTENSIONS {
		return strings.Join(f.Extensions, " ")
	}
	return ""
}

func (f *Fake) BindAPI(api int32) bool {
	f.record("eglBindAPI")
	if f.RejectAPI[api] {
		f.lastError = egl.EGL_BAD_PARAMETER
		return false
	}
	f.BoundAPIs = append(f.BoundAPIs, api)
	return true
}

func decode(attribs []int32) Query {
	var q Query
	for i := 0; i+1 < len(attribs) && attribs[i] != egl.EGL_NONE; i += 2 {
		v := attribs[i+1]
		switch attribs[i] {
		case egl.EGL_SURFACE_TYPE:
			q.SurfaceType = v
		case egl.EGL_RENDERABLE_TYPE:
			q.RenderableType = v
		case egl.EGL_RED_SIZE:
			q.Red = v
		case egl.EGL_GREEN_SIZE:
			q.Green = v
		case egl.EGL_BLUE_SIZE:
			q.Blue = v
		case egl.EGL_ALPHA_SIZE:
			q.Alpha = v
		case egl.EGL_STENCIL_SIZE:
			q.Stencil = v
		case egl.EGL_DEPTH_SIZE:
			q.Depth = v
		}
	}
	return q
}

func (f *Fake) ChooseConfig(d egl.DisplayHandle, attribs []int32) (egl.ConfigHandle, int32, bool) {
	f.record("eglChooseConfig")
	q := decode(attribs)
	f.Queries = append(f.Queries, q)
	if f.ChooseFails {
		f.lastError = egl.EGL_BAD_ATTRIBUTE
		return 0, 0, false
	}
	if f.Supports == nil || !f.Supports(q) {
		return 0, 0, true
	}
	if f.configs == nil {
		f.configs = make(map[egl.ConfigHandle]Query)
	}
	cfg := egl.ConfigHandle(0x100 + len(f.configs) + 1)
	f.configs[cfg] = q
	return cfg, 1, true
}

func (f *Fake) GetConfigAttrib(d egl.DisplayHandle, cfg egl.ConfigHandle, attrib int32) (int32, bool) {
	f.record("eglGetConfigAttrib")
	q, ok := f.configs[cfg]
	if !ok {
		f.lastError = egl.EGL_BAD_CONFIG
		return 0, false
	}
	switch attrib {
	case egl.EGL_SAMPLES:
		return f.GrantedSamples, true
	case egl.EGL_STENCIL_SIZE:
		if f.GrantedStencil != nil {
			return *f.GrantedStencil, true
		}
		return q.Stencil, true
	case egl.EGL_DEPTH_SIZE:
		return q.Depth, true
	case egl.EGL_SURFACE_TYPE:
		return q.SurfaceType, true
	}
	f.lastError = egl.EGL_BAD_ATTRIBUTE
	return 0, false
}

func (f *Fake) CreateContext(d egl.DisplayHandle, cfg egl.ConfigHandle, share egl.ContextHandle, attribs []int32) egl.ContextHandle {
	f.record("eglCreateContext")
	f.ContextAttrs = append(f.ContextAttrs, attribs)
	f.ShareHandles = append(f.ShareHandles, share)
	if f.FailCreateContext {
		f.fail()
		return 0
	}
	return egl.ContextHandle(f.alloc("context"))
}

func (f *Fake) DestroyContext(d egl.DisplayHandle, ctx egl.ContextHandle) bool {
	f.record("eglDestroyContext")
	return f.free(uintptr(ctx), "context")
}

func (f *Fake) MakeCurrent(d egl.DisplayHandle, draw, read egl.SurfaceHandle, ctx egl.ContextHandle) bool {
	f.record("eglMakeCurrent")
	if f.FailMakeCurrent {
		f.fail()
		return false
	}
	f.Current = ctx
	f.CurrentDraw = draw
	return true
}

func (f *Fake) GetCurrentContext() egl.ContextHandle { return f.Current }

func (f *Fake) CreateWindowSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, window uintptr, attribs []int32) egl.SurfaceHandle {
	f.record("eglCreateWindowSurface")
	if f.FailWindowSurface {
		f.lastError = egl.EGL_BAD_NATIVE_WINDOW
		return 0
	}
	return egl.SurfaceHandle(f.alloc("surface"))
}

func (f *Fake) CreatePbufferSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, attribs []int32) egl.SurfaceHandle {
	f.record("eglCreatePbufferSurface")
	f.PbufferAttrs = append(f.PbufferAttrs, attribs)
	if f.FailPbuffer {
		f.fail()
		return 0
	}
	return egl.SurfaceHandle(f.alloc("surface"))
}

func (f *Fake) CreatePbufferFromClientBuffer(d egl.DisplayHandle, bufferType int32, buffer uintptr, cfg egl.ConfigHandle, attribs []int32) egl.SurfaceHandle {
	f.record("eglCreatePbufferFromClientBuffer")
	if f.FailClientBuffer || buffer == 0 {
		f.lastError = egl.EGL_BAD_PARAMETER
		return 0
	}
	return egl.SurfaceHandle(f.alloc("surface"))
}

func (f *Fake) DestroySurface(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	f.record("eglDestroySurface")
	return f.free(uintptr(s), "surface")
}

func (f *Fake) SwapBuffers(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	f.record("eglSwapBuffers")
	if f.FailSwap {
		f.lastError = egl.EGL_BAD_SURFACE
		return false
	}
	return true
}

// GetError returns and clears the last simulated error, like eglGetError.
func (f *Fake) GetError() int32 {
	code := f.lastError
	f.lastError = egl.EGL_SUCCESS
	if code == 0 {
		return egl.EGL_SUCCESS
	}
	return code
}
