//go:build linux && cgo

package eglcontext

import (
	"errors"
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// glInitOnce makes sure gl.Init() is called only once.
var (
	glInitOnce sync.Once
	glInitErr  error
)

// QueryGLInfo reads the driver strings of the context current on the
// calling thread.
func QueryGLInfo() (GLInfo, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return GLInfo{}, fmt.Errorf("failed to initialize OpenGL ES: %w", glInitErr)
	}
	info := GLInfo{
		Version:  glString(gl.VERSION),
		Renderer: glString(gl.RENDERER),
		Vendor:   glString(gl.VENDOR),
		GLSL:     glString(gl.SHADING_LANGUAGE_VERSION),
	}
	if info.Version == "" {
		return GLInfo{}, errors.New("glGetString(GL_VERSION) returned nothing, is a context current?")
	}
	return info, nil
}

func glString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}
