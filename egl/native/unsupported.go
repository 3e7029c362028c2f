//go:build !linux && !darwin && !windows

package native

import (
	"errors"
	"runtime"

	"github.com/richinsley/goegl/egl"
)

func load() (egl.Binding, error) {
	return nil, errors.New("no EGL binding for " + runtime.GOOS)
}
