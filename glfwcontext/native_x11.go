//go:build linux && !wayland

package glfwcontext

import (
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goegl/egl"
)

// NativeDisplay returns the platform and display connection GLFW opened,
// for egl.Config. GLFW must be initialized.
func NativeDisplay() (egl.Platform, uintptr) {
	return egl.PlatformX11, uintptr(unsafe.Pointer(glfw.GetX11Display()))
}

func nativeWindow(w *glfw.Window) uintptr {
	return uintptr(w.GetX11Window())
}
