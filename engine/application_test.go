package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/headless"
)

const quadShaderSource = `#region Vertex
uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;
uniform vec4 u_texCoords;
#region Fragment
uniform vec4 u_tint;
uniform sampler2D u_texData;
`

type harness struct {
	app     *Application
	window  *platform.HeadlessWindow
	device  *headless.Device
	updates int
	renders int
	resized [2]int
}

func newHarness(t *testing.T, maxFrames int, render Render) *harness {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "shaders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "shaders", "quad.glsl"), []byte(quadShaderSource), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Renderer.Backend = BackendHeadless
	cfg.Renderer.MaxFrames = maxFrames
	cfg.Assets.Root = root

	h := &harness{
		window: platform.NewHeadlessWindow(cfg.PlatformWindow()),
		device: headless.NewDevice(),
	}
	game := &Game{
		FnUpdate: func(*Application, float64) error {
			h.updates++
			return nil
		},
		FnRender: func(app *Application, dt float64) error {
			h.renders++
			if render != nil {
				return render(app, dt)
			}
			return nil
		},
		FnOnResize: func(_ *Application, w, hh int) error {
			h.resized = [2]int{w, hh}
			return nil
		},
	}
	app, err := NewApplication(cfg, game, h.window, h.device)
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatal(err)
	}
	h.app = app
	return h
}

func TestRunUntilFrameLimit(t *testing.T) {
	h := newHarness(t, 3, nil)
	if err := h.app.Run(); err != nil {
		t.Fatal(err)
	}
	if h.updates != 3 || h.renders != 3 || h.app.Frames() != 3 || h.window.Swaps() != 3 {
		t.Errorf("updates=%d renders=%d frames=%d swaps=%d", h.updates, h.renders, h.app.Frames(), h.window.Swaps())
	}
	if err := h.app.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if h.device.Live() != 0 {
		t.Errorf("%d resources alive after shutdown", h.device.Live())
	}
	if err := h.app.Shutdown(); !errors.Is(err, core.ErrShuttingDown) {
		t.Errorf("second shutdown: %v", err)
	}
}

func TestRunBeforeInitialize(t *testing.T) {
	cfg := DefaultConfig()
	game := &Game{
		FnUpdate: func(*Application, float64) error { return nil },
		FnRender: func(*Application, float64) error { return nil },
	}
	app, err := NewApplication(cfg, game, platform.NewHeadlessWindow(cfg.PlatformWindow()), headless.NewDevice())
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Run(); !errors.Is(err, core.ErrNotInitialized) {
		t.Errorf("got %v", err)
	}
}

func TestNewApplicationRequiresCallbacks(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := NewApplication(cfg, &Game{}, platform.NewHeadlessWindow(cfg.PlatformWindow()), headless.NewDevice()); err == nil {
		t.Error("game without callbacks accepted")
	}
}

func TestWindowEventsDriveTheLoop(t *testing.T) {
	t.Run("close stops before rendering", func(t *testing.T) {
		h := newHarness(t, 10, nil)
		h.window.Queue(events.NewWindowCloseEvent())
		if err := h.app.Run(); err != nil {
			t.Fatal(err)
		}
		if h.renders != 0 {
			t.Errorf("rendered %d frames after close", h.renders)
		}
	})

	t.Run("lost focus pauses", func(t *testing.T) {
		h := newHarness(t, 5, nil)
		lost := events.NewWindowLostFocusEvent()
		h.window.Queue(lost)
		if err := h.app.Run(); err != nil {
			t.Fatal(err)
		}
		if !lost.Handled() || !h.app.Suspended() {
			t.Error("lost focus not handled")
		}
		if h.renders != 0 || h.updates != 0 {
			t.Errorf("paused app ran %d updates, %d renders", h.updates, h.renders)
		}
		// the first iteration polls and sees the event; the rest wait
		if h.window.Waits() != 5 {
			t.Errorf("waits = %d, want 5", h.window.Waits())
		}
	})

	t.Run("focus resumes", func(t *testing.T) {
		h := newHarness(t, 2, nil)
		h.window.Emit(events.NewWindowLostFocusEvent())
		h.window.Queue(events.NewWindowFocusEvent())
		if err := h.app.Run(); err != nil {
			t.Fatal(err)
		}
		if h.renders != 2 {
			t.Errorf("renders = %d", h.renders)
		}
	})

	t.Run("resize reaches viewport and game", func(t *testing.T) {
		h := newHarness(t, 1, nil)
		resize := events.NewWindowResizeEvent(640, 480)
		if !h.window.Emit(resize) || !resize.Handled() {
			t.Fatal("resize not handled")
		}
		if h.device.Viewport != [4]int32{0, 0, 640, 480} {
			t.Errorf("viewport = %v", h.device.Viewport)
		}
		if w, hh := h.window.Size(); h.device.Viewport != [4]int32{0, 0, int32(w), int32(hh)} {
			t.Errorf("viewport %v does not match window size %dx%d", h.device.Viewport, w, hh)
		}
		if h.resized != [2]int{640, 480} {
			t.Errorf("game saw %v", h.resized)
		}
	})

	t.Run("minimise pauses until restored", func(t *testing.T) {
		h := newHarness(t, 1, nil)
		h.window.Emit(events.NewWindowResizeEvent(0, 0))
		if !h.app.Suspended() {
			t.Error("zero-size window not suspended")
		}
		h.window.Emit(events.NewWindowResizeEvent(800, 600))
		if h.app.Suspended() {
			t.Error("restored window still suspended")
		}
	})

	t.Run("stop from another goroutine", func(t *testing.T) {
		h := newHarness(t, 0, func(app *Application, _ float64) error {
			app.Stop()
			return nil
		})
		if err := h.app.Run(); err != nil {
			t.Fatal(err)
		}
		if h.renders != 1 {
			t.Errorf("renders = %d", h.renders)
		}
	})
}

func TestRendererMisuseStopsTheLoop(t *testing.T) {
	h := newHarness(t, 10, func(app *Application, _ float64) error {
		return app.Renderer2D().End()
	})
	err := h.app.Run()
	if !errors.Is(err, renderer.ErrNotRecording) {
		t.Fatalf("got %v", err)
	}
	if h.renders != 1 || h.window.Swaps() != 0 {
		t.Errorf("renders=%d swaps=%d", h.renders, h.window.Swaps())
	}
}

func TestRenderThroughApplication(t *testing.T) {
	projection := math.NewMat4Orthographic(0, 800, 600, 0, -1, 1)
	h := newHarness(t, 1, func(app *Application, _ float64) error {
		var uniforms renderer.SceneWideUniforms
		uniforms.Set(renderer.UniformView, renderer.Mat4(math.NewMat4Identity()))
		uniforms.Set(renderer.UniformProjection, renderer.ViewMat4(&projection))

		r := app.Renderer2D()
		if err := r.Begin(&uniforms); err != nil {
			return err
		}
		q := renderer.NewQuadCentreHalfExtents(math.NewVec2(400, 75), math.NewVec2(100, 50))
		if err := r.SubmitColor(q, math.NewVec4(1, 0, 0, 1)); err != nil {
			return err
		}
		return r.End()
	})
	if err := h.app.Run(); err != nil {
		t.Fatal(err)
	}
	draws := h.device.Draws()
	if len(draws) != 1 {
		t.Fatalf("draws = %d", len(draws))
	}
	model := draws[0].Model()
	min := math.NewVec3(-0.5, -0.5, 0).Transform(model)
	max := math.NewVec3(0.5, 0.5, 0).Transform(model)
	if !min.Compare(math.NewVec3(300, 25, 0), 1e-4) || !max.Compare(math.NewVec3(500, 125, 0), 1e-4) {
		t.Errorf("quad spans %v-%v", min, max)
	}
}
