// Package native binds egl.Binding to the system EGL library: libEGL through
// cgo on linux, through purego on darwin and cgo-less linux builds, and
// ANGLE's libEGL.dll on windows.
package native

import (
	"fmt"
	"sync"

	"github.com/richinsley/goegl/egl"
)

var (
	loadOnce sync.Once
	loaded   egl.Binding
	loadErr  error
)

// Load opens the EGL library and resolves its entry points. The library is
// loaded once per process; later calls return the same binding.
func Load() (egl.Binding, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load()
		if loadErr != nil {
			loadErr = fmt.Errorf("%w: %w", egl.ErrUnsupportedFeature, loadErr)
		}
	})
	return loaded, loadErr
}
