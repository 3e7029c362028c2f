package egl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a zero handle where a live one is required.
	ErrInvalidArgument = errors.New("egl: invalid argument")
	// ErrUnsupportedFeature reports a missing driver extension or entry point.
	ErrUnsupportedFeature = errors.New("egl: unsupported feature")
	// ErrDriver matches every *DriverError.
	ErrDriver = errors.New("egl: driver error")
	// ErrConfigNotFound reports that the config search was exhausted.
	ErrConfigNotFound = errors.New("egl: no suitable EGL config was found")
	// ErrIllegalState reports an operation the negotiated config cannot serve.
	ErrIllegalState = errors.New("egl: illegal state")
	// ErrInvalidOperation reports use of a display without a negotiated config.
	ErrInvalidOperation = errors.New("egl: display has no negotiated config")
)

// DriverError is a failed native EGL call together with the eglGetError code
// read right after it.
type DriverError struct {
	Call string
	Code int32
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%x)", e.Call, ErrorString(e.Code), e.Code)
}

func (e *DriverError) Is(target error) bool {
	return target == ErrDriver
}

// driverError builds a DriverError for call from the binding's error state.
func driverError(b Binding, call string) error {
	return &DriverError{Call: call, Code: b.GetError()}
}

var errorNames = map[int32]string{
	EGL_SUCCESS:             "EGL_SUCCESS",
	EGL_NOT_INITIALIZED:     "EGL_NOT_INITIALIZED",
	EGL_BAD_ACCESS:          "EGL_BAD_ACCESS",
	EGL_BAD_ALLOC:           "EGL_BAD_ALLOC",
	EGL_BAD_ATTRIBUTE:       "EGL_BAD_ATTRIBUTE",
	EGL_BAD_CONFIG:          "EGL_BAD_CONFIG",
	EGL_BAD_CONTEXT:         "EGL_BAD_CONTEXT",
	EGL_BAD_CURRENT_SURFACE: "EGL_BAD_CURRENT_SURFACE",
	EGL_BAD_DISPLAY:         "EGL_BAD_DISPLAY",
	EGL_BAD_MATCH:           "EGL_BAD_MATCH",
	EGL_BAD_NATIVE_PIXMAP:   "EGL_BAD_NATIVE_PIXMAP",
	EGL_BAD_NATIVE_WINDOW:   "EGL_BAD_NATIVE_WINDOW",
	EGL_BAD_PARAMETER:       "EGL_BAD_PARAMETER",
	EGL_BAD_SURFACE:         "EGL_BAD_SURFACE",
	EGL_CONTEXT_LOST:        "EGL_CONTEXT_LOST",
}

// ErrorString returns the symbolic name of an eglGetError code.
func ErrorString(code int32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "unknown EGL error"
}
