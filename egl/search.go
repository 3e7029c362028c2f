package egl

import (
	"iter"

	"github.com/richinsley/goegl/graphics"
)

// Fallback dimensions, highest preference first.
var (
	surfaceTypeOrder = []int32{EGL_PBUFFER_BIT | EGL_WINDOW_BIT, EGL_WINDOW_BIT}
	stencilOrder     = []int32{8, 1, 0}
	depthOrder       = []int32{8, 1, 0}
)

// AttemptsPerRequest is the number of config queries tried for one bound
// API: two surface types, three stencil sizes, three depth sizes.
const AttemptsPerRequest = 2 * 3 * 3

// ConfigRequest is everything derived from one GL profile candidate.
type ConfigRequest struct {
	Version           graphics.GLVersion
	API               int32
	RenderableTypeBit int32
	ContextAttributes []int32
}

// Attempt is one point of the fallback search for a ConfigRequest.
type Attempt struct {
	SurfaceType int32
	StencilSize int32
	DepthSize   int32
}

// NewConfigRequest derives the API, renderable-type bit and context
// attributes for v.
func NewConfigRequest(v graphics.GLVersion) ConfigRequest {
	r := ConfigRequest{
		Version: v,
		API:     EGL_OPENGL_ES_API,
		ContextAttributes: []int32{
			EGL_CONTEXT_MAJOR_VERSION, int32(v.Major),
			EGL_CONTEXT_MINOR_VERSION, int32(v.Minor),
		},
	}
	if v.Profile == graphics.OpenGL {
		r.API = EGL_OPENGL_API
		r.RenderableTypeBit = EGL_OPENGL_BIT
		if v.Major > 3 || (v.Major == 3 && v.Minor >= 2) {
			r.ContextAttributes = append(r.ContextAttributes,
				EGL_CONTEXT_OPENGL_PROFILE_MASK, EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT)
		}
	} else {
		switch v.Major {
		case 1:
			r.RenderableTypeBit = EGL_OPENGL_ES_BIT
		case 2:
			r.RenderableTypeBit = EGL_OPENGL_ES2_BIT
		default:
			r.RenderableTypeBit = EGL_OPENGL_ES3_BIT
		}
	}
	r.ContextAttributes = append(r.ContextAttributes, EGL_NONE)
	return r
}

// Requests yields one ConfigRequest per profile, in order. An empty list
// means graphics.DefaultProfiles.
func Requests(profiles []graphics.GLVersion) iter.Seq[ConfigRequest] {
	if len(profiles) == 0 {
		profiles = graphics.DefaultProfiles()
	}
	return func(yield func(ConfigRequest) bool) {
		for _, p := range profiles {
			if !yield(NewConfigRequest(p)) {
				return
			}
		}
	}
}

// Attempts yields the fallback search order: surface type, then stencil
// size, then depth size, each from most to least capable.
func (r ConfigRequest) Attempts() iter.Seq[Attempt] {
	return func(yield func(Attempt) bool) {
		for _, st := range surfaceTypeOrder {
			for _, stencil := range stencilOrder {
				for _, depth := range depthOrder {
					if !yield(Attempt{SurfaceType: st, StencilSize: stencil, DepthSize: depth}) {
						return
					}
				}
			}
		}
	}
}

// ConfigAttributes is the eglChooseConfig attribute list for a.
func (r ConfigRequest) ConfigAttributes(a Attempt) []int32 {
	return []int32{
		EGL_SURFACE_TYPE, a.SurfaceType,
		EGL_RENDERABLE_TYPE, r.RenderableTypeBit,
		EGL_RED_SIZE, 8,
		EGL_GREEN_SIZE, 8,
		EGL_BLUE_SIZE, 8,
		EGL_ALPHA_SIZE, 8,
		EGL_STENCIL_SIZE, a.StencilSize,
		EGL_DEPTH_SIZE, a.DepthSize,
		EGL_NONE,
	}
}
