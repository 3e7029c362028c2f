//go:build darwin || (linux && !cgo)

package native

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/richinsley/goegl/egl"
)

// libraryNames lists the EGL libraries tried in order. On macOS this is
// ANGLE's libEGL, which has to be shipped next to the executable or on the
// dyld search path.
func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libEGL.dylib", "@executable_path/libEGL.dylib"}
	}
	return []string{"libEGL.so.1", "libEGL.so"}
}

func load() (egl.Binding, error) {
	var errs []error
	for _, name := range libraryNames() {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l := new(lib)
		if err := l.register(func(sym string) (uintptr, error) {
			return purego.Dlsym(handle, sym)
		}); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return l, nil
	}
	return nil, fmt.Errorf("open EGL library: %w", errors.Join(errs...))
}
