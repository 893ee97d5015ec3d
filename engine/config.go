package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/platform"
)

const (
	BackendOpenGL   = "opengl"
	BackendHeadless = "headless"
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Log      LogConfig      `toml:"log"`
	Renderer RendererConfig `toml:"renderer"`
	Assets   AssetsConfig   `toml:"assets"`
}

type WindowConfig struct {
	// The application name used in windowing.
	Title string `toml:"title"`
	// Window starting width and height.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Window starting position, ignored in fullscreen.
	PosX       int  `toml:"pos_x"`
	PosY       int  `toml:"pos_y"`
	VSync      bool `toml:"vsync"`
	Fullscreen bool `toml:"fullscreen"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type RendererConfig struct {
	Backend    string     `toml:"backend"`
	ClearColor [4]float32 `toml:"clear_color"`
	// QuadShader is the 2D renderer's shader, relative to the asset root.
	QuadShader string `toml:"quad_shader"`
	// MaxFrames stops the loop after that many iterations; 0 runs until closed.
	MaxFrames int `toml:"max_frames"`
}

type AssetsConfig struct {
	Root string `toml:"root"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Prism",
			Width:  1024,
			Height: 800,
			PosX:   100,
			PosY:   100,
			VSync:  true,
		},
		Log: LogConfig{Level: "info"},
		Renderer: RendererConfig{
			Backend:    BackendOpenGL,
			ClearColor: [4]float32{0.8, 0.8, 0.8, 1},
			QuadShader: "shaders/quad.glsl",
		},
		Assets: AssetsConfig{Root: "assets"},
	}
}

// ParseConfig overlays data on the defaults, so a file only needs the keys
// it changes.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("malformed config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads path. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("config file %s not found, using defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	switch c.Renderer.Backend {
	case BackendOpenGL, BackendHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer backend %q", c.Renderer.Backend))
	}
	for _, v := range c.Renderer.ClearColor {
		if math.Clamp(v, 0, 1) != v {
			errs = append(errs, fmt.Errorf("clear colour %v outside [0,1]", c.Renderer.ClearColor))
			break
		}
	}
	if c.Renderer.QuadShader == "" {
		errs = append(errs, errors.New("renderer quad_shader is required"))
	}
	if c.Renderer.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max_frames must not be negative, got %d", c.Renderer.MaxFrames))
	}
	return errors.Join(errs...)
}

func (c Config) PlatformWindow() platform.WindowConfig {
	return platform.WindowConfig{
		Title:      c.Window.Title,
		X:          c.Window.PosX,
		Y:          c.Window.PosY,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		Fullscreen: c.Window.Fullscreen,
	}
}

func (c Config) ClearColour() math.Vec4 {
	cc := c.Renderer.ClearColor
	return math.NewVec4(cc[0], cc[1], cc[2], cc[3])
}
