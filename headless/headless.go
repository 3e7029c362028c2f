package headless

import (
	"fmt"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/eglcontext"
	"github.com/richinsley/goegl/graphics"
)

// Headless is an offscreen EGL context together with the display it owns.
type Headless struct {
	*eglcontext.Offscreen
	display *egl.Display
}

var _ graphics.Context = (*Headless)(nil)

// OpenDisplay tries the device enumeration method first, falling back to
// the default display.
func OpenDisplay(b egl.Binding, profiles []graphics.GLVersion) (*egl.Display, error) {
	log := egl.Logger()
	if de, ok := b.(egl.DeviceEnumerator); ok && b.HasPlatformDisplay() {
		if devices, ok := de.QueryDevices(); ok && len(devices) > 0 {
			log.Info("headless: found EGL devices", "count", len(devices))
			// In an NVIDIA container the first working device is the GPU.
			for i, dev := range devices {
				d, err := egl.Open(b, egl.Config{
					Profiles:      profiles,
					Platform:      egl.PlatformDevice,
					NativeDisplay: dev,
				})
				if err == nil {
					log.Info("headless: got EGL display from device", "index", i)
					return d, nil
				}
				log.Debug("headless: device display unusable", "index", i, "err", err)
			}
		}
	}

	log.Warn("headless: no usable EGL device, falling back to EGL_DEFAULT_DISPLAY")
	d, err := egl.Open(b, egl.Config{Profiles: profiles})
	if err != nil {
		return nil, fmt.Errorf("failed to get EGL display: %w", err)
	}
	return d, nil
}

// NewHeadless opens a display, creates a width x height offscreen context on
// it and makes that context current on the calling thread.
func NewHeadless(b egl.Binding, width, height int, profiles []graphics.GLVersion) (*Headless, error) {
	d, err := OpenDisplay(b, profiles)
	if err != nil {
		return nil, err
	}
	major, minor := d.EGLVersion()
	egl.Logger().Info("headless: EGL initialized", "version", fmt.Sprintf("%d.%d", major, minor),
		"gl", d.Version().String())

	o, err := eglcontext.NewOffscreen(d, nil, width, height)
	if err != nil {
		d.Close()
		return nil, err
	}
	if err := o.MakeCurrent(); err != nil {
		o.Shutdown()
		d.Close()
		return nil, fmt.Errorf("failed to make EGL context current: %w", err)
	}
	return &Headless{Offscreen: o, display: d}, nil
}

// Display returns the display backing the context.
func (h *Headless) Display() *egl.Display { return h.display }

// Shutdown releases the context and terminates the display.
func (h *Headless) Shutdown() {
	h.Offscreen.Shutdown()
	if err := h.display.Close(); err != nil {
		egl.Logger().Warn("headless: terminate display", "err", err)
	}
}
