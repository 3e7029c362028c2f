package egl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/richinsley/goegl/graphics"
)

// Config selects the native display to open and the GL profiles to try.
type Config struct {
	// Profiles is the ordered candidate list. Empty means
	// graphics.DefaultProfiles.
	Profiles []graphics.GLVersion
	// Platform selects eglGetPlatformDisplayEXT. PlatformDefault uses
	// eglGetDisplay(NativeDisplay), where a zero NativeDisplay is
	// EGL_DEFAULT_DISPLAY.
	Platform        Platform
	NativeDisplay   uintptr
	PlatformAttribs []int32
}

// negotiated is the outcome of the config search. It is never modified
// after negotiate returns.
type negotiated struct {
	config         ConfigHandle
	contextAttribs []int32
	surfaceType    int32
	version        graphics.GLVersion
	sampleCount    int
	stencilSize    int
}

// Display owns one initialized EGL display and the config negotiated on it.
//
// A Display is not safe for concurrent use. Contexts and surfaces created
// from it keep a non-owning reference and must be closed before it.
type Display struct {
	egl      Binding
	handle   owned[DisplayHandle]
	platform Platform

	eglMajor, eglMinor int
	extensions         []string

	cfg *negotiated
}

// Open acquires a native display as described by cfg, initializes it and
// negotiates a config.
func Open(b Binding, cfg Config) (*Display, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil binding", ErrInvalidArgument)
	}
	h, err := getDisplay(b, cfg)
	if err != nil {
		return nil, err
	}
	d, err := FromHandle(b, h, cfg.Profiles)
	if err != nil {
		return nil, err
	}
	d.platform = cfg.Platform
	return d, nil
}

func getDisplay(b Binding, cfg Config) (DisplayHandle, error) {
	var h DisplayHandle
	if cfg.Platform == PlatformDefault {
		h = b.GetDisplay(cfg.NativeDisplay)
	} else {
		if !b.HasPlatformDisplay() {
			return 0, fmt.Errorf("%w: eglGetPlatformDisplayEXT is not supported by libEGL", ErrUnsupportedFeature)
		}
		h = b.GetPlatformDisplay(cfg.Platform, cfg.NativeDisplay, terminated(cfg.PlatformAttribs))
	}
	if h == 0 {
		return 0, driverError(b, "eglGetDisplay")
	}
	return h, nil
}

// FromHandle initializes an existing native display and negotiates a config
// on it. The display is terminated again if negotiation fails.
func FromHandle(b Binding, h DisplayHandle, profiles []graphics.GLVersion) (*Display, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil binding", ErrInvalidArgument)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w: display handle is EGL_NO_DISPLAY", ErrInvalidArgument)
	}
	major, minor, ok := b.Initialize(h)
	if !ok {
		return nil, driverError(b, "eglInitialize")
	}
	d := &Display{
		egl:        b,
		handle:     own(h, "eglTerminate", b.Terminate),
		eglMajor:   int(major),
		eglMinor:   int(minor),
		extensions: strings.Fields(b.QueryString(h, EGL_EXTENSIONS)),
	}
	Logger().Info("egl: display initialized", "version", fmt.Sprintf("%d.%d", major, minor),
		"extensions", len(d.extensions))

	n, err := negotiate(b, h, profiles)
	if err != nil {
		if rerr := d.handle.Release(b); rerr != nil {
			Logger().Warn("egl: terminate after failed negotiation", "err", rerr)
		}
		return nil, err
	}
	d.cfg = n
	return d, nil
}

// negotiate walks the candidate profiles and their fallback attempts and
// returns the first config the driver accepts. eglBindAPI changes process
// state; a successful bind stays in effect for the following candidates.
func negotiate(b Binding, d DisplayHandle, profiles []graphics.GLVersion) (*negotiated, error) {
	log := Logger()
	for req := range Requests(profiles) {
		if !b.BindAPI(req.API) {
			log.Debug("egl: eglBindAPI failed, skipping profile", "version", req.Version, "api", req.API)
			continue
		}
		for a := range req.Attempts() {
			cfg, num, ok := b.ChooseConfig(d, req.ConfigAttributes(a))
			if !ok || num == 0 {
				log.Debug("egl: no config", "version", req.Version, "surfaceType", a.SurfaceType,
					"stencil", a.StencilSize, "depth", a.DepthSize)
				continue
			}
			n := &negotiated{
				config:         cfg,
				contextAttribs: req.ContextAttributes,
				surfaceType:    a.SurfaceType,
				version:        req.Version,
				sampleCount:    configAttrib(b, d, cfg, EGL_SAMPLES, "EGL_SAMPLES"),
				stencilSize:    configAttrib(b, d, cfg, EGL_STENCIL_SIZE, "EGL_STENCIL_SIZE"),
			}
			log.Info("egl: selected config", "version", n.version, "surfaceType", n.surfaceType,
				"stencil", n.stencilSize, "samples", n.sampleCount, "requestedDepth", a.DepthSize)
			return n, nil
		}
	}
	return nil, ErrConfigNotFound
}

func configAttrib(b Binding, d DisplayHandle, cfg ConfigHandle, attrib int32, name string) int {
	v, ok := b.GetConfigAttrib(d, cfg, attrib)
	if !ok {
		Logger().Warn("egl: eglGetConfigAttrib failed", "attrib", name, "err", ErrorString(b.GetError()))
		return 0
	}
	return int(v)
}

func (d *Display) ready() error {
	if d == nil || d.cfg == nil || d.handle.get() == 0 {
		return ErrInvalidOperation
	}
	return nil
}

func (d *Display) checkShare(share *Context) (ContextHandle, error) {
	if share == nil {
		return 0, nil
	}
	if share.display != d {
		return 0, fmt.Errorf("%w: share context belongs to another display", ErrInvalidArgument)
	}
	h := share.Handle()
	if h == 0 {
		return 0, fmt.Errorf("%w: share context is closed", ErrInvalidArgument)
	}
	return h, nil
}

func (d *Display) createNativeContext(share *Context) (ContextHandle, error) {
	shareHandle, err := d.checkShare(share)
	if err != nil {
		return 0, err
	}
	ctx := d.egl.CreateContext(d.handle.get(), d.cfg.config, shareHandle, d.cfg.contextAttribs)
	if ctx == 0 {
		return 0, driverError(d.egl, "eglCreateContext")
	}
	return ctx, nil
}

// CreateContext creates a context that shares objects with share (which may
// be nil) and owns a 1x1 pbuffer as its offscreen surface.
func (d *Display) CreateContext(share *Context) (*Context, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	if !d.SupportsPbuffer() {
		return nil, fmt.Errorf("%w: platform doesn't support pbuffer surfaces", ErrIllegalState)
	}
	ctx, err := d.createNativeContext(share)
	if err != nil {
		return nil, err
	}
	surf, err := d.CreatePbufferSurface(1, 1)
	if err != nil {
		if !d.egl.DestroyContext(d.handle.get(), ctx) {
			Logger().Warn("egl: destroy context after pbuffer failure", "err", ErrorString(d.egl.GetError()))
		}
		return nil, err
	}
	return newContext(d, ctx, surf, true), nil
}

// CreateContextWithSurface creates a context that uses offscreen, owned by
// the caller, as its offscreen surface. The new context is made current
// with no surface bound before it is returned.
func (d *Display) CreateContextWithSurface(share *Context, offscreen *Surface) (*Context, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	if offscreen != nil && offscreen.display != d {
		return nil, fmt.Errorf("%w: offscreen surface belongs to another display", ErrInvalidArgument)
	}
	ctx, err := d.createNativeContext(share)
	if err != nil {
		return nil, err
	}
	c := newContext(d, ctx, offscreen, false)
	if err := c.MakeCurrent(nil); err != nil {
		if cerr := c.Close(); cerr != nil {
			Logger().Warn("egl: destroy context after make-current failure", "err", cerr)
		}
		return nil, err
	}
	return c, nil
}

// CreateWindowSurface wraps a native window (an X11 Window, a
// wl_egl_window pointer, an HWND) into a drawable for the negotiated config.
func (d *Display) CreateWindowSurface(window uintptr) (*Surface, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	if window == 0 {
		return nil, fmt.Errorf("%w: native window is zero", ErrInvalidArgument)
	}
	s := d.egl.CreateWindowSurface(d.handle.get(), d.cfg.config, window, []int32{EGL_NONE})
	if s == 0 {
		return nil, driverError(d.egl, "eglCreateWindowSurface")
	}
	return newSurface(d, s, SurfaceWindow)
}

// CreatePbufferSurface creates an offscreen surface of the given size.
func (d *Display) CreatePbufferSurface(width, height int) (*Surface, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: pbuffer size %dx%d", ErrInvalidArgument, width, height)
	}
	s := d.egl.CreatePbufferSurface(d.handle.get(), d.cfg.config, []int32{
		EGL_WIDTH, int32(width),
		EGL_HEIGHT, int32(height),
		EGL_NONE,
	})
	if s == 0 {
		return nil, driverError(d.egl, "eglCreatePbufferSurface")
	}
	return newSurface(d, s, SurfacePbuffer)
}

// CreatePbufferFromClientBuffer imports an externally owned buffer, such as
// an ANGLE D3D share handle, as a pbuffer surface.
func (d *Display) CreatePbufferFromClientBuffer(bufferType int32, buffer uintptr, attribs []int32) (*Surface, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	s := d.egl.CreatePbufferFromClientBuffer(d.handle.get(), bufferType, buffer, d.cfg.config, terminated(attribs))
	if s == 0 {
		return nil, driverError(d.egl, "eglCreatePbufferFromClientBuffer")
	}
	return newSurface(d, s, SurfaceClientBuffer)
}

// Close terminates the native display. Contexts and surfaces created from
// it must already be closed.
func (d *Display) Close() error {
	if d == nil {
		return nil
	}
	return d.handle.Release(d.egl)
}

// Handle returns the native display, or zero once closed.
func (d *Display) Handle() DisplayHandle { return d.handle.get() }

// Binding returns the native entry points the display was opened with.
func (d *Display) Binding() Binding { return d.egl }

// Platform returns the platform the display was opened on.
func (d *Display) Platform() Platform { return d.platform }

// EGLVersion returns the version reported by eglInitialize.
func (d *Display) EGLVersion() (major, minor int) { return d.eglMajor, d.eglMinor }

// Extensions returns the display's extension names.
func (d *Display) Extensions() []string { return slices.Clone(d.extensions) }

// HasExtension reports whether the display advertises ext.
func (d *Display) HasExtension(ext string) bool { return slices.Contains(d.extensions, ext) }

// Version returns the negotiated GL profile and version.
func (d *Display) Version() graphics.GLVersion { return d.cfg.version }

// SampleCount returns the EGL_SAMPLES value of the negotiated config.
func (d *Display) SampleCount() int { return d.cfg.sampleCount }

// StencilSize returns the EGL_STENCIL_SIZE value of the negotiated config.
func (d *Display) StencilSize() int { return d.cfg.stencilSize }

// SurfaceType returns the EGL_SURFACE_TYPE mask the config was chosen with.
func (d *Display) SurfaceType() int32 { return d.cfg.surfaceType }

// SupportsPbuffer reports whether the negotiated config can back pbuffers.
func (d *Display) SupportsPbuffer() bool { return d.cfg.surfaceType&EGL_PBUFFER_BIT != 0 }

// Config returns the negotiated native config.
func (d *Display) Config() ConfigHandle { return d.cfg.config }

// ContextAttributes returns a copy of the eglCreateContext attribute list.
func (d *Display) ContextAttributes() []int32 { return slices.Clone(d.cfg.contextAttribs) }

// terminated returns attribs with a trailing EGL_NONE. A nil list stays nil.
func terminated(attribs []int32) []int32 {
	if attribs == nil {
		return nil
	}
	if n := len(attribs); n > 0 && n%2 == 1 && attribs[n-1] == EGL_NONE {
		return attribs
	}
	return append(slices.Clip(attribs), EGL_NONE)
}
