//go:build !windows && !(linux && !wayland)

package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goegl/egl"
)

// NativeDisplay returns the default display. EGL window surfaces are not
// supported here, so it is only useful for headless work.
func NativeDisplay() (egl.Platform, uintptr) {
	return egl.PlatformDefault, 0
}

// nativeWindow has no EGLNativeWindowType to offer; CreateWindowSurface
// rejects the zero handle.
func nativeWindow(*glfw.Window) uintptr {
	return 0
}
