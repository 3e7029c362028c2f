package egl_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/graphics"
)

func TestRequestsDefaultOrder(t *testing.T) {
	reqs := slices.Collect(egl.Requests(nil))
	require.Len(t, reqs, 2)

	assert.Equal(t, graphics.GLVersion{Profile: graphics.OpenGLES, Major: 3}, reqs[0].Version)
	assert.Equal(t, int32(egl.EGL_OPENGL_ES3_BIT), reqs[0].RenderableTypeBit)
	assert.Equal(t, graphics.GLVersion{Profile: graphics.OpenGLES, Major: 2}, reqs[1].Version)
	assert.Equal(t, int32(egl.EGL_OPENGL_ES2_BIT), reqs[1].RenderableTypeBit)
	for _, r := range reqs {
		assert.Equal(t, int32(egl.EGL_OPENGL_ES_API), r.API)
	}
}

func TestRequestsKeepCallerOrder(t *testing.T) {
	profiles := []graphics.GLVersion{
		{Profile: graphics.OpenGLES, Major: 1, Minor: 1},
		{Profile: graphics.OpenGLES, Major: 3, Minor: 1},
		{Profile: graphics.OpenGLES, Major: 2},
	}
	var got []graphics.GLVersion
	for r := range egl.Requests(profiles) {
		got = append(got, r.Version)
	}
	assert.Equal(t, profiles, got)
}

func TestConfigRequestDerivation(t *testing.T) {
	tests := []struct {
		v       graphics.GLVersion
		api     int32
		bit     int32
		attribs []int32
	}{
		{
			v:       graphics.GLVersion{Profile: graphics.OpenGLES, Major: 1, Minor: 1},
			api:     egl.EGL_OPENGL_ES_API,
			bit:     egl.EGL_OPENGL_ES_BIT,
			attribs: []int32{egl.EGL_CONTEXT_MAJOR_VERSION, 1, egl.EGL_CONTEXT_MINOR_VERSION, 1, egl.EGL_NONE},
		},
		{
			v:       graphics.GLVersion{Profile: graphics.OpenGLES, Major: 2},
			api:     egl.EGL_OPENGL_ES_API,
			bit:     egl.EGL_OPENGL_ES2_BIT,
			attribs: []int32{egl.EGL_CONTEXT_MAJOR_VERSION, 2, egl.EGL_CONTEXT_MINOR_VERSION, 0, egl.EGL_NONE},
		},
		{
			v:       graphics.GLVersion{Profile: graphics.OpenGLES, Major: 3, Minor: 2},
			api:     egl.EGL_OPENGL_ES_API,
			bit:     egl.EGL_OPENGL_ES3_BIT,
			attribs: []int32{egl.EGL_CONTEXT_MAJOR_VERSION, 3, egl.EGL_CONTEXT_MINOR_VERSION, 2, egl.EGL_NONE},
		},
		{
			v:   graphics.GLVersion{Profile: graphics.OpenGL, Major: 4, Minor: 1},
			api: egl.EGL_OPENGL_API,
			bit: egl.EGL_OPENGL_BIT,
			attribs: []int32{egl.EGL_CONTEXT_MAJOR_VERSION, 4, egl.EGL_CONTEXT_MINOR_VERSION, 1,
				egl.EGL_CONTEXT_OPENGL_PROFILE_MASK, egl.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT, egl.EGL_NONE},
		},
		{
			v:       graphics.GLVersion{Profile: graphics.OpenGL, Major: 2, Minor: 1},
			api:     egl.EGL_OPENGL_API,
			bit:     egl.EGL_OPENGL_BIT,
			attribs: []int32{egl.EGL_CONTEXT_MAJOR_VERSION, 2, egl.EGL_CONTEXT_MINOR_VERSION, 1, egl.EGL_NONE},
		},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			r := egl.NewConfigRequest(tt.v)
			assert.Equal(t, tt.api, r.API)
			assert.Equal(t, tt.bit, r.RenderableTypeBit)
			assert.Equal(t, tt.attribs, r.ContextAttributes)
		})
	}
}

func TestAttemptsOrder(t *testing.T) {
	r := egl.NewConfigRequest(graphics.GLVersion{Profile: graphics.OpenGLES, Major: 3})
	attempts := slices.Collect(r.Attempts())
	require.Len(t, attempts, egl.AttemptsPerRequest)

	both := int32(egl.EGL_PBUFFER_BIT | egl.EGL_WINDOW_BIT)
	assert.Equal(t, egl.Attempt{SurfaceType: both, StencilSize: 8, DepthSize: 8}, attempts[0])
	assert.Equal(t, egl.Attempt{SurfaceType: both, StencilSize: 8, DepthSize: 1}, attempts[1])
	assert.Equal(t, egl.Attempt{SurfaceType: both, StencilSize: 8, DepthSize: 0}, attempts[2])
	assert.Equal(t, egl.Attempt{SurfaceType: both, StencilSize: 1, DepthSize: 8}, attempts[3])
	assert.Equal(t, egl.Attempt{SurfaceType: both, StencilSize: 0, DepthSize: 0}, attempts[8])
	assert.Equal(t, egl.Attempt{SurfaceType: egl.EGL_WINDOW_BIT, StencilSize: 8, DepthSize: 8}, attempts[9])
	assert.Equal(t, egl.Attempt{SurfaceType: egl.EGL_WINDOW_BIT, StencilSize: 0, DepthSize: 0}, attempts[17])

	// The sequence is restartable and yields the same order again.
	assert.Equal(t, attempts, slices.Collect(r.Attempts()))
}

func TestAttemptsStopEarly(t *testing.T) {
	r := egl.NewConfigRequest(graphics.GLVersion{Profile: graphics.OpenGLES, Major: 2})
	n := 0
	for range r.Attempts() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

func TestConfigAttributes(t *testing.T) {
	r := egl.NewConfigRequest(graphics.GLVersion{Profile: graphics.OpenGLES, Major: 2})
	got := r.ConfigAttributes(egl.Attempt{SurfaceType: egl.EGL_WINDOW_BIT, StencilSize: 1, DepthSize: 0})
	assert.Equal(t, []int32{
		egl.EGL_SURFACE_TYPE, egl.EGL_WINDOW_BIT,
		egl.EGL_RENDERABLE_TYPE, egl.EGL_OPENGL_ES2_BIT,
		egl.EGL_RED_SIZE, 8,
		egl.EGL_GREEN_SIZE, 8,
		egl.EGL_BLUE_SIZE, 8,
		egl.EGL_ALPHA_SIZE, 8,
		egl.EGL_STENCIL_SIZE, 1,
		egl.EGL_DEPTH_SIZE, 0,
		egl.EGL_NONE,
	}, got)
}
