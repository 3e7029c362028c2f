package eglcontext_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/egl/egltest"
	"github.com/richinsley/goegl/eglcontext"
)

type fakeWindow struct {
	handle  uintptr
	w, h    int
	closing bool
	polls   int
}

func (w *fakeWindow) Handle() uintptr                { return w.handle }
func (w *fakeWindow) GetFramebufferSize() (int, int) { return w.w, w.h }
func (w *fakeWindow) ShouldClose() bool              { return w.closing }
func (w *fakeWindow) PollEvents()                    { w.polls++ }

func open(t *testing.T, f *egltest.Fake) *egl.Display {
	t.Helper()
	d, err := egl.Open(f, egl.Config{})
	require.NoError(t, err)
	return d
}

func TestOffscreenDefaultSize(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)

	o, err := eglcontext.NewOffscreen(d, nil, 0, 0)
	require.NoError(t, err)
	w, h := o.GetFramebufferSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, d.Version(), o.Version())
	assert.False(t, o.ShouldClose())
	assert.NoError(t, o.EndFrame())

	require.NoError(t, o.MakeCurrent())
	assert.Equal(t, o.Context().Handle(), f.Current)
	assert.Equal(t, o.Context().OffscreenSurface().Handle(), f.CurrentDraw)

	o.Shutdown()
	assert.Zero(t, f.Live())
	assert.Equal(t, egl.ContextHandle(0), f.Current)
}

func TestOffscreenSized(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)

	o, err := eglcontext.NewOffscreen(d, nil, 1280, 720)
	require.NoError(t, err)
	require.Len(t, f.PbufferAttrs, 1)
	assert.Equal(t, []int32{egl.EGL_WIDTH, 1280, egl.EGL_HEIGHT, 720, egl.EGL_NONE}, f.PbufferAttrs[0])

	require.NoError(t, o.MakeCurrent())
	assert.NotZero(t, f.CurrentDraw)
	assert.Equal(t, o.Context().OffscreenSurface().Handle(), f.CurrentDraw)

	require.NoError(t, o.DetachCurrent())
	o.Shutdown()
	assert.Zero(t, f.Live())
	assert.Equal(t, 1, f.CallCount("eglDestroySurface"))
	assert.Less(t, slices.Index(f.Calls, "eglDestroySurface"), slices.Index(f.Calls, "eglDestroyContext"))
}

func TestOffscreenSharesContext(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)

	first, err := eglcontext.NewOffscreen(d, nil, 1, 1)
	require.NoError(t, err)
	second, err := eglcontext.NewOffscreen(d, first.Context(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Context().Handle(), f.ShareHandles[1])

	second.Shutdown()
	first.Shutdown()
	assert.Zero(t, f.Live())
}

func TestOffscreenWindowOnlyConfig(t *testing.T) {
	f := egltest.NewFake(egltest.Only(egl.EGL_OPENGL_ES2_BIT, egl.EGL_WINDOW_BIT, 0, 0))
	d := open(t, f)

	_, err := eglcontext.NewOffscreen(d, nil, 1, 1)
	assert.ErrorIs(t, err, egl.ErrIllegalState)
}

func TestWindowPresent(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)
	win := &fakeWindow{handle: 0x77, w: 800, h: 600}

	w, err := eglcontext.NewWindow(d, nil, win)
	require.NoError(t, err)
	assert.Equal(t, egl.SurfaceWindow, w.Surface().Kind())
	require.NotNil(t, w.Context().OffscreenSurface(), "pbuffer-capable config gets an offscreen surface")

	require.NoError(t, w.MakeCurrent())
	assert.Equal(t, w.Surface().Handle(), f.CurrentDraw)
	require.NoError(t, w.EndFrame())
	assert.Equal(t, 1, win.polls)
	assert.Equal(t, 1, f.CallCount("eglSwapBuffers"))

	fw, fh := w.GetFramebufferSize()
	assert.Equal(t, 800, fw)
	assert.Equal(t, 600, fh)

	win.closing = true
	assert.True(t, w.ShouldClose())

	w.Shutdown()
	assert.Zero(t, f.Live())
}

func TestWindowOnlyConfigUsesSurfacelessContext(t *testing.T) {
	f := egltest.NewFake(egltest.Only(egl.EGL_OPENGL_ES2_BIT, egl.EGL_WINDOW_BIT, 0, 0))
	d := open(t, f)

	w, err := eglcontext.NewWindow(d, nil, &fakeWindow{handle: 0x77})
	require.NoError(t, err)
	assert.Nil(t, w.Context().OffscreenSurface())
	assert.Zero(t, f.CallCount("eglCreatePbufferSurface"))
	w.Shutdown()
	assert.Zero(t, f.Live())
}

func TestWindowSwapFailure(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)
	win := &fakeWindow{handle: 0x77}
	w, err := eglcontext.NewWindow(d, nil, win)
	require.NoError(t, err)

	f.FailSwap = true
	err = w.EndFrame()
	var de *egl.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "eglSwapBuffers", de.Call)
	assert.Equal(t, int32(egl.EGL_BAD_SURFACE), de.Code)
	assert.Zero(t, win.polls)
}

func TestWindowContextFailureReleasesSurface(t *testing.T) {
	f := egltest.NewFake(egltest.SupportsAll)
	d := open(t, f)
	f.FailCreateContext = true

	_, err := eglcontext.NewWindow(d, nil, &fakeWindow{handle: 0x77})
	require.ErrorIs(t, err, egl.ErrDriver)
	assert.Zero(t, f.Live())
}
