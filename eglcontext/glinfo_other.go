//go:build !linux || !cgo

package eglcontext

import "errors"

// QueryGLInfo is only available on linux cgo builds.
func QueryGLInfo() (GLInfo, error) {
	return GLInfo{}, errors.New("GL string queries need a linux cgo build")
}
