package egl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/goegl/egl"
)

func TestDriverErrorFormat(t *testing.T) {
	err := &egl.DriverError{Call: "eglCreateContext", Code: egl.EGL_BAD_MATCH}
	assert.Equal(t, "eglCreateContext failed: EGL_BAD_MATCH (0x3009)", err.Error())

	wrapped := fmt.Errorf("open display: %w", err)
	assert.True(t, errors.Is(wrapped, egl.ErrDriver))
	assert.False(t, errors.Is(wrapped, egl.ErrConfigNotFound))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "EGL_SUCCESS", egl.ErrorString(egl.EGL_SUCCESS))
	assert.Equal(t, "EGL_CONTEXT_LOST", egl.ErrorString(egl.EGL_CONTEXT_LOST))
	assert.Equal(t, "unknown EGL error", egl.ErrorString(0x1234))
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "x11", egl.PlatformX11.String())
	assert.Equal(t, "default", egl.PlatformDefault.String())
	assert.Equal(t, "platform(0x1)", egl.Platform(1).String())
}
