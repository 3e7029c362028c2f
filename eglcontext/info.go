// Package eglcontext adapts EGL contexts to graphics.Context.
package eglcontext

import "fmt"

// GLInfo holds the driver strings of a current GL context.
type GLInfo struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

func (i GLInfo) String() string {
	return fmt.Sprintf("%s (%s, %s), GLSL %s", i.Version, i.Renderer, i.Vendor, i.GLSL)
}
