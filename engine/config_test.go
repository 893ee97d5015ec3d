package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[window]
title = "Sandbox"
width = 640

[renderer]
backend = "headless"
max_frames = 10
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Sandbox" || cfg.Window.Width != 640 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != DefaultConfig().Window.Height {
		t.Errorf("height lost its default: %d", cfg.Window.Height)
	}
	if cfg.Renderer.Backend != BackendHeadless || cfg.Renderer.MaxFrames != 10 {
		t.Errorf("renderer = %+v", cfg.Renderer)
	}
	if cfg.Renderer.QuadShader != "shaders/quad.glsl" || cfg.Log.Level != "info" {
		t.Error("untouched sections lost their defaults")
	}
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "[window\nwidth = 1"},
		{"zero width", "[window]\nwidth = 0"},
		{"unknown backend", "[renderer]\nbackend = \"vulkan\""},
		{"bad level", "[log]\nlevel = \"loud\""},
		{"clear colour out of range", "[renderer]\nclear_color = [1.5, 0, 0, 1]"},
		{"negative frames", "[renderer]\nmax_frames = -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Error("missing file did not yield the defaults")
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[assets]\nroot = \"data\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Assets.Root != "data" {
		t.Errorf("root = %q", cfg.Assets.Root)
	}

	if err := os.WriteFile(path, []byte("not = [toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestPlatformWindowAndClearColour(t *testing.T) {
	cfg := DefaultConfig()
	w := cfg.PlatformWindow()
	if w.Title != cfg.Window.Title || w.X != cfg.Window.PosX || w.Width != cfg.Window.Width {
		t.Errorf("window config = %+v", w)
	}
	c := cfg.ClearColour()
	if c.X != 0.8 || c.W != 1 {
		t.Errorf("clear colour = %v", c)
	}
}
