package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want GLVersion
	}{
		{"es3.0", GLVersion{OpenGLES, 3, 0}},
		{"gles2", GLVersion{OpenGLES, 2, 0}},
		{"OpenGL ES 3.1", GLVersion{OpenGLES, 3, 1}},
		{"gl4.1", GLVersion{OpenGL, 4, 1}},
		{" opengl3.3 ", GLVersion{OpenGL, 3, 3}},
	}
	for _, tt := range tests {
		got, err := ParseGLVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseGLVersionErrors(t *testing.T) {
	for _, in := range []string{"", "vulkan1.3", "es", "es0", "gl3.x", "es3.-1"} {
		_, err := ParseGLVersion(in)
		assert.Error(t, err, in)
	}
}

func TestParseGLVersionsSkipsBlanks(t *testing.T) {
	got, err := ParseGLVersions([]string{"es3.0", " ", "es2.0"})
	require.NoError(t, err)
	assert.Equal(t, DefaultProfiles(), got)

	_, err = ParseGLVersions([]string{"es3.0", "bogus"})
	assert.Error(t, err)
}

func TestGLVersionString(t *testing.T) {
	assert.Equal(t, "OpenGL ES 3.0", GLVersion{OpenGLES, 3, 0}.String())
	assert.Equal(t, "OpenGL 4.6", GLVersion{OpenGL, 4, 6}.String())
	assert.Equal(t, "Profile(7)", Profile(7).String())
}
