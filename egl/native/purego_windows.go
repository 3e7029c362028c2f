package native

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/richinsley/goegl/egl"
)

// ANGLE ships libEGL.dll next to the executable.
const libraryName = "libEGL.dll"

func load() (egl.Binding, error) {
	handle, err := windows.LoadLibrary(libraryName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", libraryName, err)
	}
	l := new(lib)
	if err := l.register(func(sym string) (uintptr, error) {
		return windows.GetProcAddress(handle, sym)
	}); err != nil {
		windows.FreeLibrary(handle)
		return nil, fmt.Errorf("%s: %w", libraryName, err)
	}
	return l, nil
}
