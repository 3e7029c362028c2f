package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/egl/native"
	"github.com/richinsley/goegl/eglcontext"
	"github.com/richinsley/goegl/glfwcontext"
	"github.com/richinsley/goegl/graphics"
	"github.com/richinsley/goegl/headless"
	options "github.com/richinsley/goegl/options"
)

// report prints what was negotiated and what the driver says about itself.
func report(ctx graphics.Context) {
	fmt.Printf("context:  %s\n", ctx.Version())
	fmt.Printf("samples:  %d\n", ctx.SampleCount())
	fmt.Printf("stencil:  %d\n", ctx.StencilSize())
	w, h := ctx.GetFramebufferSize()
	fmt.Printf("surface:  %dx%d\n", w, h)

	info, err := eglcontext.QueryGLInfo()
	if err != nil {
		log.Printf("GL info unavailable: %v", err)
		return
	}
	fmt.Println(info)
}

func reportDisplay(d *egl.Display) {
	major, minor := d.EGLVersion()
	fmt.Printf("EGL:      %d.%d (%s)\n", major, minor, d.Platform())
	fmt.Printf("pbuffer:  %v\n", d.SupportsPbuffer())
}

// present runs frames frames, or until the window closes when frames is 0.
func present(ctx graphics.Context, frames int) {
	for n := 0; frames == 0 || n < frames; n++ {
		if ctx.ShouldClose() {
			return
		}
		if err := ctx.EndFrame(); err != nil {
			log.Fatalf("Failed to present frame %d: %v", n, err)
		}
	}
}

func runHeadless(opts *options.ContextOptions, profiles []graphics.GLVersion) {
	platform, err := options.ParsePlatform(*opts.Platform)
	if err != nil {
		log.Fatalf("%v", err)
	}
	b, err := native.Load()
	if err != nil {
		log.Fatalf("Failed to load EGL: %v", err)
	}

	// Device and default platforms go through the headless fallback chain.
	if platform == egl.PlatformDefault || platform == egl.PlatformDevice {
		h, err := headless.NewHeadless(b, *opts.Width, *opts.Height, profiles)
		if err != nil {
			log.Fatalf("Failed to create headless context: %v", err)
		}
		defer h.Shutdown()
		reportDisplay(h.Display())
		report(h)
		present(h, *opts.Frames)
		return
	}

	d, err := egl.Open(b, egl.Config{Profiles: profiles, Platform: platform})
	if err != nil {
		log.Fatalf("Failed to open %s display: %v", platform, err)
	}
	defer d.Close()
	o, err := eglcontext.NewOffscreen(d, nil, *opts.Width, *opts.Height)
	if err != nil {
		log.Fatalf("Failed to create offscreen context: %v", err)
	}
	defer o.Shutdown()
	if err := o.MakeCurrent(); err != nil {
		log.Fatalf("Failed to make context current: %v", err)
	}
	reportDisplay(d)
	report(o)
	present(o, *opts.Frames)
}

func runWindow(opts *options.ContextOptions, profiles []graphics.GLVersion) {
	b, err := native.Load()
	if err != nil {
		log.Fatalf("Failed to load EGL: %v", err)
	}
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	win, err := glfwcontext.NewNativeWindow(*opts.Width, *opts.Height, "goegl")
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer win.Destroy()

	platform, display := glfwcontext.NativeDisplay()
	d, err := egl.Open(b, egl.Config{Profiles: profiles, Platform: platform, NativeDisplay: display})
	if err != nil {
		log.Fatalf("Failed to open EGL display: %v", err)
	}
	defer d.Close()

	// A 1x1 offscreen context owns the shared GL objects, the way a loader
	// thread would. Window-only configs have no pbuffer to give it.
	var share *egl.Context
	if d.SupportsPbuffer() {
		shared, err := eglcontext.NewOffscreen(d, nil, 1, 1)
		if err != nil {
			log.Fatalf("Failed to create shared context: %v", err)
		}
		defer shared.Shutdown()
		share = shared.Context()
	}

	w, err := eglcontext.NewWindow(d, share, win)
	if err != nil {
		log.Fatalf("Failed to create window context: %v", err)
	}
	defer w.Shutdown()
	if err := w.MakeCurrent(); err != nil {
		log.Fatalf("Failed to make window context current: %v", err)
	}
	reportDisplay(d)
	report(w)
	present(w, *opts.Frames)
}

func runGLFW(opts *options.ContextOptions, profiles []graphics.GLVersion) {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	var (
		ctx *glfwcontext.Context
		err error
	)
	for _, v := range profiles {
		ctx, err = glfwcontext.New(opts, v, true, nil)
		if err == nil {
			break
		}
		log.Printf("GLFW could not create %s: %v", v, err)
	}
	if ctx == nil {
		log.Fatalf("No GL profile could be created with GLFW")
	}
	defer ctx.Shutdown()
	if err := ctx.MakeCurrent(); err != nil {
		log.Fatalf("%v", err)
	}
	report(ctx)
	present(ctx, *opts.Frames)
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.NewContextOptions(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("EGL context negotiation probe")
		flag.PrintDefaults()
		return
	}

	if *opts.ConfigFile != "" {
		c, err := options.LoadFile(*opts.ConfigFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		opts.Merge(flag.CommandLine, c)
	}

	level, err := options.ParseLogLevel(*opts.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	egl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	profiles, err := opts.GLProfiles()
	if err != nil {
		log.Fatalf("Error parsing profiles: %v", err)
	}

	switch *opts.Mode {
	case "headless":
		runHeadless(opts, profiles)
	case "window":
		runWindow(opts, profiles)
	case "glfw":
		runGLFW(opts, profiles)
	default:
		log.Fatalf("Unknown mode %q", *opts.Mode)
	}
}
