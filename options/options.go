package options

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/richinsley/goegl/egl"
	"github.com/richinsley/goegl/graphics"
	"gopkg.in/yaml.v3"
)

type ContextOptions struct {
	Help       *bool
	Mode       *string // headless, window or glfw
	Profiles   *string // comma separated, e.g. "es3.0,es2.0"
	Platform   *string // EGL platform for headless mode
	Width      *int
	Height     *int
	Frames     *int // 0 runs until the window closes
	ConfigFile *string
	LogLevel   *string
}

// NewContextOptions binds the options to fs.
func NewContextOptions(fs *flag.FlagSet) *ContextOptions {
	return &ContextOptions{
		Help:       fs.Bool("help", false, "Show help message"),
		Mode:       fs.String("mode", "headless", "Context mode: headless, window or glfw"),
		Profiles:   fs.String("profiles", "", "Comma separated GL profiles in preference order (default es3.0,es2.0)"),
		Platform:   fs.String("platform", "default", "EGL platform: default, device, x11, wayland, gbm, surfaceless or angle"),
		Width:      fs.Int("width", 1280, "Width of the surface"),
		Height:     fs.Int("height", 720, "Height of the surface"),
		Frames:     fs.Int("frames", 1, "Frames to present before exiting, 0 runs until closed"),
		ConfigFile: fs.String("config", "", "TOML or YAML config file"),
		LogLevel:   fs.String("loglevel", "info", "Log level: debug, info, warn or error"),
	}
}

// GLProfiles parses the -profiles flag. An empty list means the defaults.
func (o *ContextOptions) GLProfiles() ([]graphics.GLVersion, error) {
	v, err := graphics.ParseGLVersions(strings.Split(*o.Profiles, ","))
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return graphics.DefaultProfiles(), nil
	}
	return v, nil
}

// Merge copies values from c into o for every flag not set on the command
// line.
func (o *ContextOptions) Merge(fs *flag.FlagSet, c *FileConfig) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["mode"] && c.Mode != "" {
		*o.Mode = c.Mode
	}
	if !set["profiles"] && len(c.Profiles) > 0 {
		*o.Profiles = strings.Join(c.Profiles, ",")
	}
	if !set["platform"] && c.Platform != "" {
		*o.Platform = c.Platform
	}
	if !set["width"] && c.Width > 0 {
		*o.Width = c.Width
	}
	if !set["height"] && c.Height > 0 {
		*o.Height = c.Height
	}
	if !set["frames"] && c.Frames != nil {
		*o.Frames = *c.Frames
	}
	if !set["loglevel"] && c.LogLevel != "" {
		*o.LogLevel = c.LogLevel
	}
}

// FileConfig is the on-disk form of the options.
type FileConfig struct {
	Mode     string   `toml:"mode" yaml:"mode"`
	Profiles []string `toml:"profiles" yaml:"profiles"`
	Platform string   `toml:"platform" yaml:"platform"`
	Width    int      `toml:"width" yaml:"width"`
	Height   int      `toml:"height" yaml:"height"`
	Frames   *int     `toml:"frames" yaml:"frames"`
	LogLevel string   `toml:"log_level" yaml:"log_level"`
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file type %q", ext)
	}
	return &c, nil
}

// GLProfiles parses the profile list of the file. An empty list means the
// defaults.
func (c *FileConfig) GLProfiles() ([]graphics.GLVersion, error) {
	v, err := graphics.ParseGLVersions(c.Profiles)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return graphics.DefaultProfiles(), nil
	}
	return v, nil
}

var platforms = map[string]egl.Platform{
	"":            egl.PlatformDefault,
	"default":     egl.PlatformDefault,
	"device":      egl.PlatformDevice,
	"x11":         egl.PlatformX11,
	"gbm":         egl.PlatformGBM,
	"wayland":     egl.PlatformWayland,
	"surfaceless": egl.PlatformSurfaceless,
	"angle":       egl.PlatformANGLE,
}

func ParsePlatform(s string) (egl.Platform, error) {
	p, ok := platforms[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown EGL platform %q", s)
	}
	return p, nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
