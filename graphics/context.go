package graphics

// Context defines the interface for an OpenGL context. EGL, GLFW and any
// other context-creation mechanism sit behind it as peer implementations.
type Context interface {
	// MakeCurrent binds the context and its drawable to the calling thread.
	MakeCurrent() error
	// DetachCurrent makes no context current on the calling thread.
	DetachCurrent() error
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the drawable, if it has anything to present.
	EndFrame() error
	GetFramebufferSize() (int, int)

	Version() GLVersion
	SampleCount() int
	StencilSize() int
}
