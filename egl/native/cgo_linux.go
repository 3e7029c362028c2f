//go:build linux && cgo

package native

import (
	"unsafe"

	"github.com/richinsley/goegl/egl"
)

/*
#cgo LDFLAGS: -lEGL
#cgo CFLAGS: -DEGL_NO_X11
#include <stdint.h>
#include <EGL/egl.h>
#include <EGL/eglext.h>

// Extension entry points are only reachable through eglGetProcAddress, so
// keep them here and call through small wrappers. Every handle crosses into
// Go as a uintptr_t.
static PFNEGLGETPLATFORMDISPLAYEXTPROC eglGetPlatformDisplayEXT_ptr = NULL;
static PFNEGLQUERYDEVICESEXTPROC eglQueryDevicesEXT_ptr = NULL;

static void load_extensions(void) {
	eglGetPlatformDisplayEXT_ptr = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
	eglQueryDevicesEXT_ptr = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
}

static int has_platform_display(void) { return eglGetPlatformDisplayEXT_ptr != NULL; }
static int has_query_devices(void) { return eglQueryDevicesEXT_ptr != NULL; }

static uintptr_t get_display(uintptr_t native) {
	return (uintptr_t) eglGetDisplay((EGLNativeDisplayType) native);
}

static uintptr_t get_platform_display(EGLenum platform, uintptr_t native, const EGLint *attribs) {
	if (!eglGetPlatformDisplayEXT_ptr) {
		return 0;
	}
	return (uintptr_t) eglGetPlatformDisplayEXT_ptr(platform, (void *) native, attribs);
}

static EGLBoolean query_devices(EGLint max, uintptr_t *devices, EGLint *num) {
	if (!eglQueryDevicesEXT_ptr) {
		return EGL_FALSE;
	}
	return eglQueryDevicesEXT_ptr(max, (EGLDeviceEXT *) devices, num);
}

static EGLBoolean initialize(uintptr_t d, EGLint *major, EGLint *minor) {
	return eglInitialize((EGLDisplay) d, major, minor);
}

static EGLBoolean terminate(uintptr_t d) {
	return eglTerminate((EGLDisplay) d);
}

static const char *query_string(uintptr_t d, EGLint name) {
	return eglQueryString((EGLDisplay) d, name);
}

static EGLBoolean choose_config(uintptr_t d, const EGLint *attribs, uintptr_t *cfg, EGLint *num) {
	EGLConfig c = NULL;
	EGLBoolean ok = eglChooseConfig((EGLDisplay) d, attribs, &c, 1, num);
	*cfg = (uintptr_t) c;
	return ok;
}

static EGLBoolean get_config_attrib(uintptr_t d, uintptr_t cfg, EGLint attrib, EGLint *value) {
	return eglGetConfigAttrib((EGLDisplay) d, (EGLConfig) cfg, attrib, value);
}

static uintptr_t create_context(uintptr_t d, uintptr_t cfg, uintptr_t share, const EGLint *attribs) {
	return (uintptr_t) eglCreateContext((EGLDisplay) d, (EGLConfig) cfg, (EGLContext) share, attribs);
}

static EGLBoolean destroy_context(uintptr_t d, uintptr_t ctx) {
	return eglDestroyContext((EGLDisplay) d, (EGLContext) ctx);
}

static EGLBoolean make_current(uintptr_t d, uintptr_t draw, uintptr_t read, uintptr_t ctx) {
	return eglMakeCurrent((EGLDisplay) d, (EGLSurface) draw, (EGLSurface) read, (EGLContext) ctx);
}

static uintptr_t get_current_context(void) {
	return (uintptr_t) eglGetCurrentContext();
}

static uintptr_t create_window_surface(uintptr_t d, uintptr_t cfg, uintptr_t win, const EGLint *attribs) {
	return (uintptr_t) eglCreateWindowSurface((EGLDisplay) d, (EGLConfig) cfg, (EGLNativeWindowType) win, attribs);
}

static uintptr_t create_pbuffer_surface(uintptr_t d, uintptr_t cfg, const EGLint *attribs) {
	return (uintptr_t) eglCreatePbufferSurface((EGLDisplay) d, (EGLConfig) cfg, attribs);
}

static uintptr_t create_pbuffer_from_client_buffer(uintptr_t d, EGLenum type, uintptr_t buf, uintptr_t cfg, const EGLint *attribs) {
	return (uintptr_t) eglCreatePbufferFromClientBuffer((EGLDisplay) d, type, (EGLClientBuffer) buf, (EGLConfig) cfg, attribs);
}

static EGLBoolean destroy_surface(uintptr_t d, uintptr_t s) {
	return eglDestroySurface((EGLDisplay) d, (EGLSurface) s);
}

static EGLBoolean swap_buffers(uintptr_t d, uintptr_t s) {
	return eglSwapBuffers((EGLDisplay) d, (EGLSurface) s);
}
*/
import "C"

type cgoBinding struct{}

var (
	_ egl.Binding          = cgoBinding{}
	_ egl.DeviceEnumerator = cgoBinding{}
)

func load() (egl.Binding, error) {
	C.load_extensions()
	return cgoBinding{}, nil
}

func attribs(a []int32) *C.EGLint {
	if len(a) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&a[0]))
}

func h(v uintptr) C.uintptr_t { return C.uintptr_t(v) }

func (cgoBinding) GetDisplay(native uintptr) egl.DisplayHandle {
	return egl.DisplayHandle(C.get_display(h(native)))
}

func (cgoBinding) HasPlatformDisplay() bool {
	return C.has_platform_display() != 0
}

func (cgoBinding) GetPlatformDisplay(p egl.Platform, native uintptr, a []int32) egl.DisplayHandle {
	return egl.DisplayHandle(C.get_platform_display(C.EGLenum(p), h(native), attribs(a)))
}

func (cgoBinding) QueryDevices() ([]uintptr, bool) {
	if C.has_query_devices() == 0 {
		return nil, false
	}
	var n C.EGLint
	if C.query_devices(0, nil, &n) != C.EGL_TRUE || n == 0 {
		return nil, false
	}
	devices := make([]C.uintptr_t, n)
	if C.query_devices(n, &devices[0], &n) != C.EGL_TRUE {
		return nil, false
	}
	out := make([]uintptr, 0, n)
	for i := 0; i < int(n); i++ {
		out = append(out, uintptr(devices[i]))
	}
	return out, true
}

func (cgoBinding) Initialize(d egl.DisplayHandle) (int32, int32, bool) {
	var major, minor C.EGLint
	ok := C.initialize(h(uintptr(d)), &major, &minor) == C.EGL_TRUE
	return int32(major), int32(minor), ok
}

func (cgoBinding) Terminate(d egl.DisplayHandle) bool {
	return C.terminate(h(uintptr(d))) == C.EGL_TRUE
}

func (cgoBinding) QueryString(d egl.DisplayHandle, name int32) string {
	s := C.query_string(h(uintptr(d)), C.EGLint(name))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func (cgoBinding) BindAPI(api int32) bool {
	return C.eglBindAPI(C.EGLenum(api)) == C.EGL_TRUE
}

func (cgoBinding) ChooseConfig(d egl.DisplayHandle, a []int32) (egl.ConfigHandle, int32, bool) {
	var cfg C.uintptr_t
	var num C.EGLint
	ok := C.choose_config(h(uintptr(d)), attribs(a), &cfg, &num) == C.EGL_TRUE
	return egl.ConfigHandle(cfg), int32(num), ok
}

func (cgoBinding) GetConfigAttrib(d egl.DisplayHandle, cfg egl.ConfigHandle, attrib int32) (int32, bool) {
	var v C.EGLint
	ok := C.get_config_attrib(h(uintptr(d)), h(uintptr(cfg)), C.EGLint(attrib), &v) == C.EGL_TRUE
	return int32(v), ok
}

func (cgoBinding) CreateContext(d egl.DisplayHandle, cfg egl.ConfigHandle, share egl.ContextHandle, a []int32) egl.ContextHandle {
	return egl.ContextHandle(C.create_context(h(uintptr(d)), h(uintptr(cfg)), h(uintptr(share)), attribs(a)))
}

func (cgoBinding) DestroyContext(d egl.DisplayHandle, ctx egl.ContextHandle) bool {
	return C.destroy_context(h(uintptr(d)), h(uintptr(ctx))) == C.EGL_TRUE
}

func (cgoBinding) MakeCurrent(d egl.DisplayHandle, draw, read egl.SurfaceHandle, ctx egl.ContextHandle) bool {
	return C.make_current(h(uintptr(d)), h(uintptr(draw)), h(uintptr(read)), h(uintptr(ctx))) == C.EGL_TRUE
}

func (cgoBinding) GetCurrentContext() egl.ContextHandle {
	return egl.ContextHandle(C.get_current_context())
}

func (cgoBinding) CreateWindowSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, window uintptr, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(C.create_window_surface(h(uintptr(d)), h(uintptr(cfg)), h(window), attribs(a)))
}

func (cgoBinding) CreatePbufferSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(C.create_pbuffer_surface(h(uintptr(d)), h(uintptr(cfg)), attribs(a)))
}

func (cgoBinding) CreatePbufferFromClientBuffer(d egl.DisplayHandle, bufferType int32, buffer uintptr, cfg egl.ConfigHandle, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(C.create_pbuffer_from_client_buffer(h(uintptr(d)), C.EGLenum(bufferType), h(buffer), h(uintptr(cfg)), attribs(a)))
}

func (cgoBinding) DestroySurface(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	return C.destroy_surface(h(uintptr(d)), h(uintptr(s))) == C.EGL_TRUE
}

func (cgoBinding) SwapBuffers(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	return C.swap_buffers(h(uintptr(d)), h(uintptr(s))) == C.EGL_TRUE
}

func (cgoBinding) GetError() int32 {
	return int32(C.eglGetError())
}
