package testbed

import (
	"errors"
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/assets"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

const (
	letterTexturePath = "textures/letterAndNumberCube2.png"
	numberTexturePath = "textures/numberCube.png"
	phongShaderPath   = "shaders/texturedPhong.glsl"

	UniformLightColour = "u_lightColour"
	UniformLightPos    = "u_lightPos"
	UniformViewPos     = "u_viewPos"

	// camera target movement in world units per second
	cameraSpeed = 0.5
)

type gameState struct {
	letterTexture renderer.Texture
	numberTexture renderer.Texture
	phong         renderer.Shader

	cube    renderer.VertexArray
	pyramid renderer.VertexArray

	pyramidMaterial    *renderer.Material
	letterCubeMaterial *renderer.Material
	numberCubeMaterial *renderer.Material
	models             [3]*math.Transform

	camera *camera
	eye    math.Vec3

	view         math.Mat4
	projection   math.Mat4
	view2D       math.Mat4
	projection2D math.Mat4
	lightColour  math.Vec3
	lightPos     math.Vec3

	scene3D renderer.SceneWideUniforms
	scene2D renderer.SceneWideUniforms

	spin      *gween.Tween
	spinAngle float32

	hud      *assets.FontAtlas
	fpsTimer float64
}

// NewSandbox returns the demo scene: two textured cubes and a tinted pyramid
// under a phong light, with a 2D overlay drawn on top.
func NewSandbox() *engine.Game {
	state := &gameState{
		camera:      newCamera(math.NewVec3(0, 0, 3), math.NewVec3(0, 0, -6)),
		lightColour: math.NewVec3(1, 1, 1),
		lightPos:    math.NewVec3(-2, 4, 6),
		view2D:      math.NewMat4Identity(),
	}
	return &engine.Game{
		State:        state,
		FnInitialize: state.initialize,
		FnUpdate:     state.update,
		FnRender:     state.render,
		FnOnResize:   state.onResize,
		FnShutdown:   state.shutdown,
	}
}

func (s *gameState) initialize(app *engine.Application) error {
	lib := app.Library()

	var err error
	if s.letterTexture, err = lib.AcquireTexture(letterTexturePath); err != nil {
		return err
	}
	if s.numberTexture, err = lib.AcquireTexture(numberTexturePath); err != nil {
		return err
	}
	if s.phong, err = lib.AcquireShader(phongShaderPath); err != nil {
		return err
	}

	letterCube, err := renderer.NewSubTexture(s.letterTexture, math.NewVec2(0, 0), math.NewVec2(1, 0.5))
	if err != nil {
		return err
	}
	numberCube, err := renderer.NewSubTexture(s.numberTexture, math.NewVec2(0, 0.5), math.NewVec2(1, 1))
	if err != nil {
		return err
	}

	if s.cube, err = renderer.UploadMesh(app.Device(), cubeVertices(letterCube, numberCube), quadIndices(6)); err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	if s.pyramid, err = renderer.UploadMesh(app.Device(), pyramidVertices(), pyramidIndices); err != nil {
		return fmt.Errorf("pyramid: %w", err)
	}

	if s.pyramidMaterial, err = renderer.NewColorMaterial(s.phong, math.NewVec4(0.4, 0.7, 0.3, 0.5)); err != nil {
		return err
	}
	if s.letterCubeMaterial, err = renderer.NewTextureMaterial(s.phong, s.letterTexture); err != nil {
		return err
	}
	if s.numberCubeMaterial, err = renderer.NewTextureMaterial(s.phong, s.numberTexture); err != nil {
		return err
	}

	s.models[0] = math.NewTransformFromPosition(math.NewVec3(-2, 0, -6))
	s.models[1] = math.NewTransformFromPosition(math.NewVec3(0, 0, -6))
	s.models[2] = math.NewTransformFromPosition(math.NewVec3(2, 0, -6))

	s.eye = s.camera.Eye()
	s.view = s.camera.View()
	width, height := app.Window().Size()
	s.resizeProjections(width, height)

	s.scene3D.Set(renderer.UniformView, renderer.ViewMat4(&s.view))
	s.scene3D.Set(renderer.UniformProjection, renderer.ViewMat4(&s.projection))
	s.scene3D.Set(UniformLightColour, renderer.ViewVec3(&s.lightColour))
	s.scene3D.Set(UniformLightPos, renderer.ViewVec3(&s.lightPos))
	s.scene3D.Set(UniformViewPos, renderer.ViewVec3(&s.eye))

	s.scene2D.Set(renderer.UniformView, renderer.ViewMat4(&s.view2D))
	s.scene2D.Set(renderer.UniformProjection, renderer.ViewMat4(&s.projection2D))

	s.spin = gween.New(0, 360, 4, ease.InOutQuad)

	if fonts := app.Assets().List(assets.KindFont); len(fonts) > 0 {
		path, err := app.Assets().Resolve(fonts[0], assets.KindFont)
		if err == nil {
			s.hud, err = assets.LoadFontAtlas(app.Device(), path)
		}
		if err != nil {
			core.LogWarn("HUD font unavailable: %s", err)
		}
	}

	s.installInputHandlers(app)
	return nil
}

func (s *gameState) installInputHandlers(app *engine.Application) {
	h := app.EventHandler()
	h.SetOnKeyPressedCallback(func(e *events.KeyPressedEvent) bool {
		core.LogDebug("Key Pressed %d", e.KeyCode)
		if input.KeyCode(e.KeyCode) == input.KeyEscape {
			app.Stop()
		}
		return true
	})
	h.SetOnKeyReleasedCallback(func(*events.KeyReleasedEvent) bool {
		return true
	})
	h.SetOnMouseButtonPressedCallback(func(e *events.MouseButtonPressedEvent) bool {
		core.LogDebug("Button Pressed %d", e.Button)
		return true
	})
	h.SetOnMouseButtonReleasedCallback(func(*events.MouseButtonReleasedEvent) bool {
		return true
	})
	h.SetOnMouseMovedCallback(func(*events.MouseMovedEvent) bool {
		return true
	})
	h.SetOnMouseWheelCallback(func(*events.MouseScrolledEvent) bool {
		return true
	})
}

func (s *gameState) resizeProjections(width, height int) {
	s.projection = math.NewMat4Perspective(math.DegToRad(45), float32(width)/float32(height), 0.1, 100)
	s.projection2D = math.NewMat4Orthographic(0, float32(width), float32(height), 0, -1, 1)
}

func (s *gameState) onResize(_ *engine.Application, width, height int) error {
	s.resizeProjections(width, height)
	return nil
}

func (s *gameState) update(app *engine.Application, deltaTime float64) error {
	step := float32(cameraSpeed * deltaTime)
	poller := app.Poller()
	switch {
	case poller.IsKeyPressed(input.KeyS):
		s.camera.Pan(0, -step)
	case poller.IsKeyPressed(input.KeyW):
		s.camera.Pan(0, step)
	case poller.IsKeyPressed(input.KeyA):
		s.camera.Pan(-step, 0)
	case poller.IsKeyPressed(input.KeyD):
		s.camera.Pan(step, 0)
	}
	s.view = s.camera.View()

	rotation := math.NewQuatFromAxisAngle(math.NewVec3Up(), float32(deltaTime), false)
	for _, m := range s.models {
		m.Rotate(rotation)
	}

	angle, finished := s.spin.Update(float32(deltaTime))
	s.spinAngle = angle
	if finished {
		s.spin.Reset()
	}

	s.fpsTimer += deltaTime
	if s.fpsTimer >= 1 {
		s.fpsTimer = 0
		fps, frameMS := app.Metrics().Frame()
		core.LogDebug("FPS %.0f (%.2f ms)", fps, frameMS)
	}
	return nil
}

func (s *gameState) render(app *engine.Application, _ float64) error {
	device := app.Device()

	device.SetDepthTest(true)
	r3d := app.Renderer3D()
	if err := r3d.Begin(&s.scene3D); err != nil {
		return err
	}
	if err := errors.Join(
		r3d.Submit(s.pyramid, s.pyramidMaterial, s.models[0].World()),
		r3d.Submit(s.cube, s.letterCubeMaterial, s.models[1].World()),
		r3d.Submit(s.cube, s.numberCubeMaterial, s.models[2].World()),
	); err != nil {
		return err
	}
	if err := r3d.End(); err != nil {
		return err
	}

	device.SetDepthTest(false)
	device.SetBlending(true)
	defer device.SetBlending(false)

	r2d := app.Renderer2D()
	if err := r2d.Begin(&s.scene2D); err != nil {
		return err
	}
	q := overlayQuads
	if err := errors.Join(
		r2d.SubmitColor(q[0], math.NewVec4(0, 0, 1, 1)),
		r2d.SubmitTexture(q[1], s.letterTexture),
		r2d.SubmitTinted(q[2], math.NewVec4(0, 1, 1, 1), s.numberTexture),
		r2d.SubmitTintedRotated(q[3], math.NewVec4(0, 1, 1, 0.5), s.numberTexture, 45, true),
		r2d.SubmitTintedRotated(q[3], math.NewVec4(1, 0, 1, 0.5), s.numberTexture, math.DegToRad(-45), false),
		r2d.SubmitColorRotated(q[4], math.NewVec4(1, 1, 0, 1), 30+s.spinAngle, true),
		r2d.SubmitTintedRotated(q[5], math.NewVec4(1, 1, 0, 1), s.letterTexture, 90, true),
	); err != nil {
		return err
	}
	if s.hud != nil {
		fps, _ := app.Metrics().Frame()
		if err := s.hud.DrawText(r2d, fmt.Sprintf("FPS %.0f", fps), math.NewVec2(10, 10), 1, math.NewVec4One()); err != nil {
			return err
		}
	}
	return r2d.End()
}

func (s *gameState) shutdown(app *engine.Application) error {
	if s.hud != nil {
		s.hud.Destroy()
	}
	if s.cube != nil {
		s.cube.Destroy()
	}
	if s.pyramid != nil {
		s.pyramid.Destroy()
	}
	lib := app.Library()
	var errs []error
	if s.phong != nil {
		errs = append(errs, lib.ReleaseShader(phongShaderPath))
	}
	if s.letterTexture != nil {
		errs = append(errs, lib.ReleaseTexture(letterTexturePath))
	}
	if s.numberTexture != nil {
		errs = append(errs, lib.ReleaseTexture(numberTexturePath))
	}
	return errors.Join(errs...)
}
