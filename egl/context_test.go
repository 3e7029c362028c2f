package egl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/egl/egltest"
)

func TestCreateContextMirrorsDisplay(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	f.GrantedSamples = 4
	d := openDefault(t, f)

	c, err := d.CreateContext(nil)
	require.NoError(t, err)
	assert.Equal(t, d.Version(), c.Version())
	assert.Equal(t, d.SampleCount(), c.SampleCount())
	assert.Equal(t, d.StencilSize(), c.StencilSize())
	assert.Same(t, d, c.Display())

	require.NotNil(t, c.OffscreenSurface())
	assert.Equal(t, egl.SurfacePbuffer, c.OffscreenSurface().Kind())
	require.Len(t, f.PbufferAttrs, 1)
	assert.Equal(t, []int32{egl.EGL_WIDTH, 1, egl.EGL_HEIGHT, 1, egl.EGL_NONE}, f.PbufferAttrs[0])
	assert.Equal(t, d.ContextAttributes(), f.ContextAttrs[0])
	assert.Equal(t, egl.ContextHandle(0), f.ShareHandles[0])

	// Native context first, then its pbuffer.
	iCtx := indexOf(f.Calls, "eglCreateContext")
	iPbuf := indexOf(f.Calls, "eglCreatePbufferSurface")
	assert.Less(t, iCtx, iPbuf)
}

func TestCreateContextShares(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)

	first, err := d.CreateContext(nil)
	require.NoError(t, err)
	second, err := d.CreateContext(first)
	require.NoError(t, err)

	require.Len(t, f.ShareHandles, 2)
	assert.Equal(t, first.Handle(), f.ShareHandles[1])
	assert.NotEqual(t, first.Handle(), second.Handle())
}

func TestCreateContextRejectsForeignOrClosedShare(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	other := openDefault(t, egltest.NewFake(egltest.SupportsAll))

	foreign, err := other.CreateContext(nil)
	require.NoError(t, err)
	_, err = d.CreateContext(foreign)
	assert.ErrorIs(t, err, egl.ErrInvalidArgument)

	closed, err := d.CreateContext(nil)
	require.NoError(t, err)
	require.NoError(t, closed.Close())
	_, err = d.CreateContext(closed)
	assert.ErrorIs(t, err, egl.ErrInvalidArgument)
}

func TestCreateContextWindowOnlyIsIllegalState(t *testing.T) {
	f := egltest.NewFake(egltest.Only(egl.EGL_OPENGL_ES2_BIT, egl.EGL_WINDOW_BIT, 0, 0))
	d := openDefault(t, f)
	before := len(f.Calls)

	_, err := d.CreateContext(nil)
	require.ErrorIs(t, err, egl.ErrIllegalState)
	assert.Len(t, f.Calls, before, "no native call on precondition failure")
	assert.Zero(t, f.CallCount("eglCreateContext"))
}

func TestCreateContextDriverErrors(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)

	f.FailCreateContext = true
	_, err := d.CreateContext(nil)
	var de *egl.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "eglCreateContext", de.Call)
	assert.Equal(t, int32(egl.EGL_BAD_ALLOC), de.Code)
	assert.Zero(t, f.CallCount("eglCreatePbufferSurface"))

	f.FailCreateContext = false
	f.FailPbuffer = true
	_, err = d.CreateContext(nil)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "eglCreatePbufferSurface", de.Call)
	assert.Zero(t, f.Live(), "context is destroyed when its pbuffer cannot be created")
}

func TestCreateContextWithSurface(t *testing.T) {
	f := egltest.NewFake(egltest.Only(egl.EGL_OPENGL_ES2_BIT, egl.EGL_WINDOW_BIT, 0, 0))
	d := openDefault(t, f)

	win, err := d.CreateWindowSurface(0x42)
	require.NoError(t, err)

	c, err := d.CreateContextWithSurface(nil, win)
	require.NoError(t, err)
	assert.Same(t, win, c.OffscreenSurface())
	assert.Equal(t, c.Handle(), f.Current, "new context is current")
	assert.Equal(t, egl.SurfaceHandle(0), f.CurrentDraw, "with no surface bound")
	assert.True(t, c.IsCurrent())
	assert.Zero(t, f.CallCount("eglCreatePbufferSurface"))

	// The surface is borrowed, so closing the context leaves it alive.
	require.NoError(t, c.Close())
	assert.NotZero(t, win.Handle())
	assert.Equal(t, 1, f.Live())
	require.NoError(t, win.Close())
	assert.Zero(t, f.Live())
}

func TestCreateContextWithSurfaceMakeCurrentFailure(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	f.FailMakeCurrent = true

	_, err := d.CreateContextWithSurface(nil, nil)
	var de *egl.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "eglMakeCurrent", de.Call)
	assert.Zero(t, f.Live())
}

func TestCreateContextWithForeignSurface(t *testing.T) {
	d := openDefault(t, egltest.NewFake(egltest.SupportsAll))
	other := openDefault(t, egltest.NewFake(egltest.SupportsAll))
	s, err := other.CreatePbufferSurface(1, 1)
	require.NoError(t, err)

	_, err = d.CreateContextWithSurface(nil, s)
	assert.ErrorIs(t, err, egl.ErrInvalidArgument)
}

func TestContextMakeCurrent(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	c, err := d.CreateContext(nil)
	require.NoError(t, err)

	require.NoError(t, c.MakeCurrentOffscreen())
	assert.Equal(t, c.Handle(), f.Current)
	assert.Equal(t, c.OffscreenSurface().Handle(), f.CurrentDraw)
	assert.True(t, c.IsCurrent())

	require.NoError(t, c.ReleaseCurrent())
	assert.Equal(t, egl.ContextHandle(0), f.Current)
	assert.False(t, c.IsCurrent())

	f.FailMakeCurrent = true
	err = c.MakeCurrent(nil)
	require.ErrorIs(t, err, egl.ErrDriver)
}

func TestContextCloseOrderAndIdempotence(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	c, err := d.CreateContext(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Live())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Zero(t, f.Live())
	assert.Equal(t, 1, f.CallCount("eglDestroySurface"))
	assert.Equal(t, 1, f.CallCount("eglDestroyContext"))
	assert.Less(t, indexOf(f.Calls, "eglDestroySurface"), indexOf(f.Calls, "eglDestroyContext"))

	err = c.MakeCurrent(nil)
	assert.ErrorIs(t, err, egl.ErrInvalidOperation)
	assert.False(t, c.IsCurrent())
}

func indexOf(calls []string, name string) int {
	for i, c := range calls {
		if c == name {
			return i
		}
	}
	return -1
}

func TestMakeCurrentRejectsClosedSurface(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	c, err := d.CreateContext(nil)
	require.NoError(t, err)
	s, err := d.CreatePbufferSurface(16, 16)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = c.MakeCurrent(s)
	assert.ErrorIs(t, err, egl.ErrInvalidOperation)
	assert.Zero(t, f.CallCount("eglMakeCurrent"))
	assert.Equal(t, egl.ContextHandle(0), f.Current)
	require.NoError(t, c.Close())
}

func TestMakeCurrentRejectsForeignSurface(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := openDefault(t, f)
	c, err := d.CreateContext(nil)
	require.NoError(t, err)

	other := openDefault(t, egltest.NewFake(egltest.SupportsAll))
	s, err := other.CreatePbufferSurface(16, 16)
	require.NoError(t, err)

	err = c.MakeCurrent(s)
	assert.ErrorIs(t, err, egl.ErrInvalidArgument)
	assert.Zero(t, f.CallCount("eglMakeCurrent"))

	require.NoError(t, c.MakeCurrentOffscreen())
	assert.Equal(t, c.OffscreenSurface().Handle(), f.CurrentDraw)
	require.NoError(t, errors.Join(s.Close(), c.Close()))
}
