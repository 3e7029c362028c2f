package egl

// owned is a native handle released exactly once. The zero value holds
// nothing and releasing it is a no-op.
type owned[H ~uintptr] struct {
	h       H
	release func(H) bool
	call    string
}

func own[H ~uintptr](h H, call string, release func(H) bool) owned[H] {
	return owned[H]{h: h, release: release, call: call}
}

func (o *owned[H]) get() H {
	return o.h
}

// Release gives the handle back to the driver. The handle is forgotten
// before the native call, so a failing release is never retried.
func (o *owned[H]) Release(b Binding) error {
	if o.h == 0 {
		return nil
	}
	h := o.h
	o.h = 0
	if !o.release(h) {
		return driverError(b, o.call)
	}
	return nil
}
