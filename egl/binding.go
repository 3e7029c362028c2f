package egl

// Native handles. A zero value is EGL_NO_DISPLAY, EGL_NO_CONTEXT, etc.
type (
	DisplayHandle uintptr
	ConfigHandle  uintptr
	ContextHandle uintptr
	SurfaceHandle uintptr
)

// Binding is the raw EGL entry-point surface. Implementations are thin: each
// method maps to one native call and reports failure the way EGL does, with
// a zero handle or a false flag. Error details come from GetError.
//
// Attribute lists passed in are EGL_NONE terminated; a nil list means NULL.
type Binding interface {
	GetDisplay(native uintptr) DisplayHandle
	// HasPlatformDisplay reports whether eglGetPlatformDisplayEXT resolved.
	HasPlatformDisplay() bool
	GetPlatformDisplay(platform Platform, native uintptr, attribs []int32) DisplayHandle
	Initialize(d DisplayHandle) (major, minor int32, ok bool)
	Terminate(d DisplayHandle) bool
	QueryString(d DisplayHandle, name int32) string

	BindAPI(api int32) bool
	// ChooseConfig returns at most one config and the number of matches.
	ChooseConfig(d DisplayHandle, attribs []int32) (cfg ConfigHandle, num int32, ok bool)
	GetConfigAttrib(d DisplayHandle, cfg ConfigHandle, attrib int32) (int32, bool)

	CreateContext(d DisplayHandle, cfg ConfigHandle, share ContextHandle, attribs []int32) ContextHandle
	DestroyContext(d DisplayHandle, ctx ContextHandle) bool
	MakeCurrent(d DisplayHandle, draw, read SurfaceHandle, ctx ContextHandle) bool
	GetCurrentContext() ContextHandle

	CreateWindowSurface(d DisplayHandle, cfg ConfigHandle, window uintptr, attribs []int32) SurfaceHandle
	CreatePbufferSurface(d DisplayHandle, cfg ConfigHandle, attribs []int32) SurfaceHandle
	CreatePbufferFromClientBuffer(d DisplayHandle, bufferType int32, buffer uintptr, cfg ConfigHandle, attribs []int32) SurfaceHandle
	DestroySurface(d DisplayHandle, s SurfaceHandle) bool
	SwapBuffers(d DisplayHandle, s SurfaceHandle) bool

	GetError() int32
}

// DeviceEnumerator is implemented by bindings that resolved
// eglQueryDevicesEXT. The returned values are EGLDeviceEXT handles usable
// with PlatformDevice.
type DeviceEnumerator interface {
	QueryDevices() ([]uintptr, bool)
}
