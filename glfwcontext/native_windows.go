package glfwcontext

import (
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goegl/egl"
)

// NativeDisplay returns the default display: ANGLE picks the adapter
// itself on windows.
func NativeDisplay() (egl.Platform, uintptr) {
	return egl.PlatformDefault, 0
}

func nativeWindow(w *glfw.Window) uintptr {
	return uintptr(unsafe.Pointer(w.GetWin32Window()))
}
