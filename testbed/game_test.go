package testbed

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/headless"
)

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(to, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// sandboxAssets copies the real shaders and writes small stand-in textures.
func sandboxAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"quad.glsl", "texturedPhong.glsl"} {
		copyFile(t, filepath.Join("..", "assets", "shaders", name), filepath.Join(root, "shaders", name))
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 256, 128))); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{letterTexturePath, numberTexturePath} {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func newSandboxApp(t *testing.T, frames int) (*engine.Application, *platform.HeadlessWindow, *headless.Device) {
	app, window, device, _ := newSandbox(t, frames)
	return app, window, device
}

func newSandbox(t *testing.T, frames int) (*engine.Application, *platform.HeadlessWindow, *headless.Device, *gameState) {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 800, 600
	cfg.Renderer.Backend = engine.BackendHeadless
	cfg.Renderer.MaxFrames = frames
	cfg.Assets.Root = sandboxAssets(t)

	window := platform.NewHeadlessWindow(cfg.PlatformWindow())
	device := headless.NewDevice()
	game := NewSandbox()
	app, err := engine.NewApplication(cfg, game, window, device)
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Initialize(); err != nil {
		t.Fatal(err)
	}
	return app, window, device, game.State.(*gameState)
}

func TestCubeGeometry(t *testing.T) {
	device := headless.NewDevice()
	tex, _ := device.CreateTexture("atlas", 256, 128, make([]uint8, 256*128*4))
	letters, _ := renderer.NewSubTexture(tex, math.NewVec2(0, 0), math.NewVec2(1, 0.5))
	numbers, _ := renderer.NewSubTexture(tex, math.NewVec2(0, 0.5), math.NewVec2(1, 1))

	vertices := cubeVertices(letters, numbers)
	if len(vertices) != 24 {
		t.Fatalf("vertices = %d", len(vertices))
	}
	for i, v := range vertices[:12] {
		if v.Texcoord.Y > 0.5 {
			t.Errorf("letter face vertex %d samples v=%v outside its half", i, v.Texcoord.Y)
		}
	}
	for i, v := range vertices[12:] {
		if v.Texcoord.Y < 0.5 {
			t.Errorf("number face vertex %d samples v=%v outside its half", i+12, v.Texcoord.Y)
		}
	}
	if err := renderer.ValidateIndices(len(vertices), quadIndices(6)); err != nil {
		t.Error(err)
	}
	if err := renderer.ValidateIndices(len(pyramidVertices()), pyramidIndices); err != nil {
		t.Error(err)
	}
}

func TestCameraViewIsCached(t *testing.T) {
	c := newCamera(math.NewVec3(0, 0, 3), math.NewVec3(0, 0, -6))
	first := c.View()
	c.Pan(0, 0)
	if c.dirty {
		t.Error("a zero pan marked the view dirty")
	}
	c.Pan(1, 0)
	if !c.dirty {
		t.Fatal("pan did not mark the view dirty")
	}
	if c.View().Compare(first, 1e-6) {
		t.Error("view unchanged after pan")
	}
	if c.Target() != math.NewVec3(1, 0, -6) {
		t.Errorf("target = %v", c.Target())
	}
}

func TestSandboxFrame(t *testing.T) {
	app, _, device := newSandboxApp(t, 2)
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	// three meshes and seven quads per frame
	draws := device.Draws()
	if len(draws) != 2*(3+7) {
		t.Fatalf("draws = %d", len(draws))
	}
	first := draws[:10]
	for i, d := range first[:3] {
		if d.Shader != "texturedPhong" || !d.Depth || d.Blending {
			t.Errorf("3D draw %d = %+v", i, d)
		}
	}
	if first[0].IndexCount != 18 || first[1].IndexCount != 36 {
		t.Errorf("index counts = %d, %d", first[0].IndexCount, first[1].IndexCount)
	}
	if !first[0].Tint().Compare(math.NewVec4(0.4, 0.7, 0.3, 0.5), 1e-6) {
		t.Errorf("pyramid tint = %v", first[0].Tint())
	}
	for i, d := range first[3:] {
		if d.Shader != "quad" || d.Depth || !d.Blending {
			t.Errorf("2D draw %d = %+v", i, d)
		}
	}

	model := first[3].Model()
	min := math.NewVec3(-0.5, -0.5, 0).Transform(model)
	max := math.NewVec3(0.5, 0.5, 0).Transform(model)
	if !min.Compare(math.NewVec3(300, 25, 0), 1e-3) || !max.Compare(math.NewVec3(500, 125, 0), 1e-3) {
		t.Errorf("first quad spans %v-%v", min, max)
	}

	if err := app.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if device.Live() != 0 {
		t.Errorf("%d resources alive after shutdown", device.Live())
	}
}

func TestSandboxCameraFollowsKeys(t *testing.T) {
	app, window, _, state := newSandbox(t, 3)
	before := state.camera.Target()

	window.Queue(events.NewKeyPressedEvent(int(input.KeyW), 0))
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	after := state.camera.Target()
	if after.Y <= before.Y {
		t.Errorf("holding W left the target at %v", after)
	}
	if after.X != before.X {
		t.Errorf("holding W moved the target sideways to %v", after)
	}
}

func TestSandboxEscapeStops(t *testing.T) {
	app, window, _ := newSandboxApp(t, 0)
	window.Queue(events.NewKeyPressedEvent(int(input.KeyEscape), 0))
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if app.Frames() != 0 || window.Swaps() != 0 {
		t.Errorf("frames = %d, swaps = %d", app.Frames(), window.Swaps())
	}
}
