package renderer

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief Draws arbitrary geometry with a material. Every Submit issues
 * exactly one indexed draw; nothing is batched.
 *
 * Without a fixed shader, the shader of each submitted material is bound
 * on first use and the scene-wide uniforms are uploaded to it at that point.
 */
type Renderer3D struct {
	span
	device Device
	white  Texture
	fixed  Shader
	bound  Shader
}

// NewRenderer3D returns a renderer for device. Renderers sharing guard
// refuse to open overlapping spans; a nil guard is private to this renderer.
func NewRenderer3D(device Device, guard *SpanGuard) *Renderer3D {
	return &Renderer3D{span: newSpan("renderer3d", guard), device: device}
}

func (r *Renderer3D) Init() error {
	if r.white != nil {
		return nil
	}
	white, err := createDefaultTexture(r.device)
	if err != nil {
		return fmt.Errorf("renderer3d: failed to create default texture: %w", err)
	}
	r.white = white
	core.LogInfo("Renderer3D initialized on %s.", r.device.Name())
	return nil
}

// Begin opens a span. Uniform values are copied here, so views only need to
// stay valid until Begin returns.
func (r *Renderer3D) Begin(uniforms *SceneWideUniforms) error {
	if r.white == nil {
		return fmt.Errorf("renderer3d: %w", ErrNotInitialized)
	}
	if err := r.beginSpan(uniforms); err != nil {
		return fmt.Errorf("renderer3d: %w", err)
	}
	r.fixed = nil
	r.bound = nil
	return nil
}

// BeginWithShader opens a span that draws everything with shader, ignoring
// the shader of submitted materials.
func (r *Renderer3D) BeginWithShader(shader Shader, uniforms *SceneWideUniforms) error {
	if shader == nil {
		return fmt.Errorf("renderer3d: %w", ErrNilShader)
	}
	if err := r.Begin(uniforms); err != nil {
		return err
	}
	r.fixed = shader
	r.bindShader(shader)
	r.bound = shader
	return nil
}

func (r *Renderer3D) Submit(geometry VertexArray, material *Material, transform math.Mat4) error {
	if err := r.checkRecording(); err != nil {
		return fmt.Errorf("renderer3d: %w", err)
	}
	if geometry == nil {
		return fmt.Errorf("renderer3d: %w: nil vertex array", ErrInvalidGeometry)
	}
	if err := material.validate(); err != nil {
		return fmt.Errorf("renderer3d: %w", err)
	}

	shader := r.fixed
	if shader == nil {
		shader = material.Shader()
	}
	if shader != r.bound {
		r.bindShader(shader)
		r.bound = shader
	}

	r.reportJoined(shader, material.Apply(shader, r.white))
	r.upload(shader, UniformModel, Mat4(transform))

	r.device.DrawIndexed(geometry)
	r.stats.Submissions++
	r.stats.DrawCalls++
	return nil
}

func (r *Renderer3D) End() error {
	if err := r.endSpan(); err != nil {
		return fmt.Errorf("renderer3d: %w", err)
	}
	r.fixed = nil
	r.bound = nil
	return nil
}

// Stats returns the counters of the current or most recent span.
func (r *Renderer3D) Stats() Stats {
	return r.stats
}

func (r *Renderer3D) Shutdown() {
	r.release()
	r.fixed = nil
	r.bound = nil
	if r.white != nil {
		r.white.Destroy()
		r.white = nil
	}
}
