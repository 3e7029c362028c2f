//go:build darwin || windows || (linux && !cgo)

package native

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/richinsley/goegl/egl"
)

// lib holds the EGL entry points resolved at load time. Extension entry
// points stay nil when eglGetProcAddress cannot find them.
type lib struct {
	eglGetProcAddress                func(name string) uintptr
	eglGetDisplay                    func(native uintptr) uintptr
	eglInitialize                    func(d uintptr, major, minor *int32) uint32
	eglTerminate                     func(d uintptr) uint32
	eglQueryString                   func(d uintptr, name int32) string
	eglBindAPI                       func(api uint32) uint32
	eglChooseConfig                  func(d uintptr, attribs *int32, configs *uintptr, size int32, num *int32) uint32
	eglGetConfigAttrib               func(d, cfg uintptr, attrib int32, value *int32) uint32
	eglCreateContext                 func(d, cfg, share uintptr, attribs *int32) uintptr
	eglDestroyContext                func(d, ctx uintptr) uint32
	eglMakeCurrent                   func(d, draw, read, ctx uintptr) uint32
	eglGetCurrentContext             func() uintptr
	eglCreateWindowSurface           func(d, cfg, win uintptr, attribs *int32) uintptr
	eglCreatePbufferSurface          func(d, cfg uintptr, attribs *int32) uintptr
	eglCreatePbufferFromClientBuffer func(d uintptr, bufferType uint32, buffer, cfg uintptr, attribs *int32) uintptr
	eglDestroySurface                func(d, s uintptr) uint32
	eglSwapBuffers                   func(d, s uintptr) uint32
	eglGetError                      func() int32

	eglGetPlatformDisplayEXT func(platform uint32, native uintptr, attribs *int32) uintptr
	eglQueryDevicesEXT       func(max int32, devices *uintptr, num *int32) uint32
}

var (
	_ egl.Binding          = (*lib)(nil)
	_ egl.DeviceEnumerator = (*lib)(nil)
)

// register resolves every core entry point through lookup and the
// extensions through eglGetProcAddress.
func (l *lib) register(lookup func(name string) (uintptr, error)) error {
	core := []struct {
		fn   any
		name string
	}{
		{&l.eglGetProcAddress, "eglGetProcAddress"},
		{&l.eglGetDisplay, "eglGetDisplay"},
		{&l.eglInitialize, "eglInitialize"},
		{&l.eglTerminate, "eglTerminate"},
		{&l.eglQueryString, "eglQueryString"},
		{&l.eglBindAPI, "eglBindAPI"},
		{&l.eglChooseConfig, "eglChooseConfig"},
		{&l.eglGetConfigAttrib, "eglGetConfigAttrib"},
		{&l.eglCreateContext, "eglCreateContext"},
		{&l.eglDestroyContext, "eglDestroyContext"},
		{&l.eglMakeCurrent, "eglMakeCurrent"},
		{&l.eglGetCurrentContext, "eglGetCurrentContext"},
		{&l.eglCreateWindowSurface, "eglCreateWindowSurface"},
		{&l.eglCreatePbufferSurface, "eglCreatePbufferSurface"},
		{&l.eglCreatePbufferFromClientBuffer, "eglCreatePbufferFromClientBuffer"},
		{&l.eglDestroySurface, "eglDestroySurface"},
		{&l.eglSwapBuffers, "eglSwapBuffers"},
		{&l.eglGetError, "eglGetError"},
	}
	for _, f := range core {
		addr, err := lookup(f.name)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", f.name, err)
		}
		if addr == 0 {
			return fmt.Errorf("resolve %s: symbol not found", f.name)
		}
		purego.RegisterFunc(f.fn, addr)
	}

	if addr := l.eglGetProcAddress("eglGetPlatformDisplayEXT"); addr != 0 {
		purego.RegisterFunc(&l.eglGetPlatformDisplayEXT, addr)
	}
	if addr := l.eglGetProcAddress("eglQueryDevicesEXT"); addr != 0 {
		purego.RegisterFunc(&l.eglQueryDevicesEXT, addr)
	}
	return nil
}

func attribs(a []int32) *int32 {
	if len(a) == 0 {
		return nil
	}
	return unsafe.SliceData(a)
}

func (l *lib) GetDisplay(native uintptr) egl.DisplayHandle {
	return egl.DisplayHandle(l.eglGetDisplay(native))
}

func (l *lib) HasPlatformDisplay() bool {
	return l.eglGetPlatformDisplayEXT != nil
}

func (l *lib) GetPlatformDisplay(p egl.Platform, native uintptr, a []int32) egl.DisplayHandle {
	if l.eglGetPlatformDisplayEXT == nil {
		return 0
	}
	return egl.DisplayHandle(l.eglGetPlatformDisplayEXT(uint32(p), native, attribs(a)))
}

func (l *lib) QueryDevices() ([]uintptr, bool) {
	if l.eglQueryDevicesEXT == nil {
		return nil, false
	}
	var n int32
	if l.eglQueryDevicesEXT(0, nil, &n) == 0 || n == 0 {
		return nil, false
	}
	devices := make([]uintptr, n)
	if l.eglQueryDevicesEXT(n, &devices[0], &n) == 0 {
		return nil, false
	}
	return devices[:n], true
}

func (l *lib) Initialize(d egl.DisplayHandle) (int32, int32, bool) {
	var major, minor int32
	ok := l.eglInitialize(uintptr(d), &major, &minor) != 0
	return major, minor, ok
}

func (l *lib) Terminate(d egl.DisplayHandle) bool {
	return l.eglTerminate(uintptr(d)) != 0
}

func (l *lib) QueryString(d egl.DisplayHandle, name int32) string {
	return l.eglQueryString(uintptr(d), name)
}

func (l *lib) BindAPI(api int32) bool {
	return l.eglBindAPI(uint32(api)) != 0
}

func (l *lib) ChooseConfig(d egl.DisplayHandle, a []int32) (egl.ConfigHandle, int32, bool) {
	var cfg uintptr
	var num int32
	ok := l.eglChooseConfig(uintptr(d), attribs(a), &cfg, 1, &num) != 0
	return egl.ConfigHandle(cfg), num, ok
}

func (l *lib) GetConfigAttrib(d egl.DisplayHandle, cfg egl.ConfigHandle, attrib int32) (int32, bool) {
	var v int32
	ok := l.eglGetConfigAttrib(uintptr(d), uintptr(cfg), attrib, &v) != 0
	return v, ok
}

func (l *lib) CreateContext(d egl.DisplayHandle, cfg egl.ConfigHandle, share egl.ContextHandle, a []int32) egl.ContextHandle {
	return egl.ContextHandle(l.eglCreateContext(uintptr(d), uintptr(cfg), uintptr(share), attribs(a)))
}

func (l *lib) DestroyContext(d egl.DisplayHandle, ctx egl.ContextHandle) bool {
	return l.eglDestroyContext(uintptr(d), uintptr(ctx)) != 0
}

func (l *lib) MakeCurrent(d egl.DisplayHandle, draw, read egl.SurfaceHandle, ctx egl.ContextHandle) bool {
	return l.eglMakeCurrent(uintptr(d), uintptr(draw), uintptr(read), uintptr(ctx)) != 0
}

func (l *lib) GetCurrentContext() egl.ContextHandle {
	return egl.ContextHandle(l.eglGetCurrentContext())
}

func (l *lib) CreateWindowSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, window uintptr, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(l.eglCreateWindowSurface(uintptr(d), uintptr(cfg), window, attribs(a)))
}

func (l *lib) CreatePbufferSurface(d egl.DisplayHandle, cfg egl.ConfigHandle, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(l.eglCreatePbufferSurface(uintptr(d), uintptr(cfg), attribs(a)))
}

func (l *lib) CreatePbufferFromClientBuffer(d egl.DisplayHandle, bufferType int32, buffer uintptr, cfg egl.ConfigHandle, a []int32) egl.SurfaceHandle {
	return egl.SurfaceHandle(l.eglCreatePbufferFromClientBuffer(uintptr(d), uint32(bufferType), buffer, uintptr(cfg), attribs(a)))
}

func (l *lib) DestroySurface(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	return l.eglDestroySurface(uintptr(d), uintptr(s)) != 0
}

func (l *lib) SwapBuffers(d egl.DisplayHandle, s egl.SurfaceHandle) bool {
	return l.eglSwapBuffers(uintptr(d), uintptr(s)) != 0
}

func (l *lib) GetError() int32 {
	return l.eglGetError()
}
