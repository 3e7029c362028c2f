// Package egl negotiates an EGL display, config, contexts and surfaces.
//
// A Display is opened once per native display. Opening it searches the
// candidate GL profiles newest first and, for each profile whose API can be
// bound, walks surface type, stencil size and depth size from most to least
// capable until the driver returns a config. That config is frozen and used
// for every context and surface created from the Display.
//
// Native calls go through a Binding; package egl/native provides the real
// one and egl/egltest a scriptable fake.
package egl
