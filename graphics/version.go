package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile selects the GL API family.
type Profile int

const (
	OpenGLES Profile = iota
	OpenGL
)

func (p Profile) String() string {
	switch p {
	case OpenGLES:
		return "OpenGL ES"
	case OpenGL:
		return "OpenGL"
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// GLVersion is a requested or granted GL profile and version.
type GLVersion struct {
	Profile Profile
	Major   int
	Minor   int
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%s %d.%d", v.Profile, v.Major, v.Minor)
}

// DefaultProfiles returns the built-in candidate ordering, newest first.
func DefaultProfiles() []GLVersion {
	return []GLVersion{
		{Profile: OpenGLES, Major: 3, Minor: 0},
		{Profile: OpenGLES, Major: 2, Minor: 0},
	}
}

// ParseGLVersion parses strings such as "es3.0", "gles2", "gl4.1",
// "opengl3.3" or "OpenGL ES 3.0". A missing minor version means 0.
func ParseGLVersion(s string) (GLVersion, error) {
	orig := s
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))

	var v GLVersion
	switch {
	case strings.HasPrefix(s, "opengles"):
		v.Profile, s = OpenGLES, s[len("opengles"):]
	case strings.HasPrefix(s, "gles"):
		v.Profile, s = OpenGLES, s[len("gles"):]
	case strings.HasPrefix(s, "es"):
		v.Profile, s = OpenGLES, s[len("es"):]
	case strings.HasPrefix(s, "opengl"):
		v.Profile, s = OpenGL, s[len("opengl"):]
	case strings.HasPrefix(s, "gl"):
		v.Profile, s = OpenGL, s[len("gl"):]
	default:
		return GLVersion{}, fmt.Errorf("unknown GL profile in %q", orig)
	}

	majStr, minStr, hasMinor := strings.Cut(s, ".")
	major, err := strconv.Atoi(majStr)
	if err != nil || major <= 0 {
		return GLVersion{}, fmt.Errorf("invalid GL major version in %q", orig)
	}
	v.Major = major
	if hasMinor {
		minor, err := strconv.Atoi(minStr)
		if err != nil || minor < 0 {
			return GLVersion{}, fmt.Errorf("invalid GL minor version in %q", orig)
		}
		v.Minor = minor
	}
	return v, nil
}

// ParseGLVersions parses a list of profile strings, keeping their order.
func ParseGLVersions(list []string) ([]GLVersion, error) {
	out := make([]GLVersion, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) == "" {
			continue
		}
		v, err := ParseGLVersion(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
