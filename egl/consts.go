package egl

import "fmt"

// EGL enumerants used by the negotiator and the native bindings.
const (
	EGL_SUCCESS             = 0x3000
	EGL_NOT_INITIALIZED     = 0x3001
	EGL_BAD_ACCESS          = 0x3002
	EGL_BAD_ALLOC           = 0x3003
	EGL_BAD_ATTRIBUTE       = 0x3004
	EGL_BAD_CONFIG          = 0x3005
	EGL_BAD_CONTEXT         = 0x3006
	EGL_BAD_CURRENT_SURFACE = 0x3007
	EGL_BAD_DISPLAY         = 0x3008
	EGL_BAD_MATCH           = 0x3009
	EGL_BAD_NATIVE_PIXMAP   = 0x300A
	EGL_BAD_NATIVE_WINDOW   = 0x300B
	EGL_BAD_PARAMETER       = 0x300C
	EGL_BAD_SURFACE         = 0x300D
	EGL_CONTEXT_LOST        = 0x300E

	EGL_ALPHA_SIZE      = 0x3021
	EGL_BLUE_SIZE       = 0x3022
	EGL_GREEN_SIZE      = 0x3023
	EGL_RED_SIZE        = 0x3024
	EGL_DEPTH_SIZE      = 0x3025
	EGL_STENCIL_SIZE    = 0x3026
	EGL_SAMPLES         = 0x3031
	EGL_SURFACE_TYPE    = 0x3033
	EGL_NONE            = 0x3038
	EGL_RENDERABLE_TYPE = 0x3040
	EGL_HEIGHT          = 0x3056
	EGL_WIDTH           = 0x3057

	EGL_VENDOR      = 0x3053
	EGL_VERSION     = 0x3054
	EGL_EXTENSIONS  = 0x3055
	EGL_CLIENT_APIS = 0x308D

	EGL_PBUFFER_BIT = 0x0001
	EGL_PIXMAP_BIT  = 0x0002
	EGL_WINDOW_BIT  = 0x0004

	EGL_OPENGL_ES_BIT  = 0x0001
	EGL_OPENVG_BIT     = 0x0002
	EGL_OPENGL_ES2_BIT = 0x0004
	EGL_OPENGL_BIT     = 0x0008
	EGL_OPENGL_ES3_BIT = 0x0040

	EGL_OPENGL_ES_API = 0x30A0
	EGL_OPENGL_API    = 0x30A2

	EGL_CONTEXT_MAJOR_VERSION           = 0x3098
	EGL_CONTEXT_MINOR_VERSION           = 0x30FB
	EGL_CONTEXT_OPENGL_PROFILE_MASK     = 0x30FD
	EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT = 0x0001

	// Client buffer types for CreatePbufferFromClientBuffer.
	EGL_D3D_TEXTURE_2D_SHARE_HANDLE_ANGLE = 0x3200
	EGL_D3D_TEXTURE_ANGLE                 = 0x33A3
	EGL_IOSURFACE_ANGLE                   = 0x3454
	EGL_TEXTURE_FORMAT                    = 0x3080
	EGL_TEXTURE_TARGET                    = 0x3081
	EGL_TEXTURE_RGBA                      = 0x305E
	EGL_TEXTURE_2D                        = 0x305F
)

// Platform selects a native platform for eglGetPlatformDisplayEXT.
type Platform int32

const (
	// PlatformDefault uses eglGetDisplay instead of a platform extension.
	PlatformDefault     Platform = 0
	PlatformDevice      Platform = 0x313F
	PlatformX11         Platform = 0x31D5
	PlatformGBM         Platform = 0x31D7
	PlatformWayland     Platform = 0x31D8
	PlatformSurfaceless Platform = 0x31DD
	PlatformANGLE       Platform = 0x3202
)

func (p Platform) String() string {
	switch p {
	case PlatformDefault:
		return "default"
	case PlatformDevice:
		return "device"
	case PlatformX11:
		return "x11"
	case PlatformGBM:
		return "gbm"
	case PlatformWayland:
		return "wayland"
	case PlatformSurfaceless:
		return "surfaceless"
	case PlatformANGLE:
		return "angle"
	}
	return fmt.Sprintf("platform(0x%x)", int32(p))
}
