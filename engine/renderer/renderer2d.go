package renderer

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

// QuadDraw describes the surface of one quad. A nil Tint draws white; with
// neither Texture nor SubTexture the default white texture is sampled.
// SubTexture wins over Texture.
type QuadDraw struct {
	Tint       *math.Vec4
	Texture    Texture
	SubTexture *SubTexture
	// Angle rotates the quad about its centre. It is read as degrees only
	// when AngleInDegrees is set.
	Angle          float32
	AngleInDegrees bool
}

var fullTexCoords = Float4{X: 0, Y: 0, Z: 1, W: 1}

/**
 * @brief Draws screen-space quads in submission order, one draw per quad.
 * There is no depth sorting: submit back to front.
 */
type Renderer2D struct {
	span
	device Device
	shader Shader
	quad   VertexArray
	white  Texture
}

// NewRenderer2D returns a renderer for device; see NewRenderer3D for guard.
func NewRenderer2D(device Device, guard *SpanGuard) *Renderer2D {
	return &Renderer2D{span: newSpan("renderer2d", guard), device: device}
}

// Init takes the quad shader and creates the unit quad geometry. Calling it
// again after a successful Init does nothing.
func (r *Renderer2D) Init(shader Shader) error {
	if shader == nil {
		return fmt.Errorf("renderer2d: %w", ErrNilShader)
	}
	if r.shader != nil {
		return nil
	}
	quad, err := r.device.CreateVertexArray(unitQuadVertices, Layout2D, unitQuadIndices)
	if err != nil {
		return fmt.Errorf("renderer2d: failed to create quad geometry: %w", err)
	}
	white, err := createDefaultTexture(r.device)
	if err != nil {
		quad.Destroy()
		return fmt.Errorf("renderer2d: failed to create default texture: %w", err)
	}
	r.shader = shader
	r.quad = quad
	r.white = white
	core.LogInfo("Renderer2D initialized on %s.", r.device.Name())
	return nil
}

func (r *Renderer2D) Begin(uniforms *SceneWideUniforms) error {
	if r.shader == nil {
		return fmt.Errorf("renderer2d: %w", ErrNotInitialized)
	}
	if err := r.beginSpan(uniforms); err != nil {
		return fmt.Errorf("renderer2d: %w", err)
	}
	r.bindShader(r.shader)
	return nil
}

func (r *Renderer2D) Submit(q Quad, d QuadDraw) error {
	if err := r.checkRecording(); err != nil {
		return fmt.Errorf("renderer2d: %w", err)
	}

	tint := defaultTint
	if d.Tint != nil {
		tint = *d.Tint
	}
	texture := r.white
	texCoords := fullTexCoords
	switch {
	case d.SubTexture != nil:
		if d.SubTexture.Texture() == nil {
			return fmt.Errorf("renderer2d: %w: no texture", ErrInvalidSubTexture)
		}
		texture = d.SubTexture.Texture()
		start, end := d.SubTexture.UVStart(), d.SubTexture.UVEnd()
		texCoords = Float4{X: start.X, Y: start.Y, Z: end.X, W: end.Y}
	case d.Texture != nil:
		texture = d.Texture
	}
	angle := d.Angle
	if d.AngleInDegrees {
		angle = math.DegToRad(angle)
	}

	r.reportJoined(r.shader, applySurface(r.shader, tint, texture))
	r.upload(r.shader, UniformTexCoords, texCoords)
	r.upload(r.shader, UniformModel, Mat4(q.Model(angle)))

	r.device.DrawIndexed(r.quad)
	r.stats.Submissions++
	r.stats.DrawCalls++
	return nil
}

func (r *Renderer2D) SubmitColor(q Quad, tint math.Vec4) error {
	return r.Submit(q, QuadDraw{Tint: &tint})
}

func (r *Renderer2D) SubmitTexture(q Quad, texture Texture) error {
	return r.Submit(q, QuadDraw{Texture: texture})
}

func (r *Renderer2D) SubmitSubTexture(q Quad, sub SubTexture) error {
	return r.Submit(q, QuadDraw{SubTexture: &sub})
}

func (r *Renderer2D) SubmitTinted(q Quad, tint math.Vec4, texture Texture) error {
	return r.Submit(q, QuadDraw{Tint: &tint, Texture: texture})
}

func (r *Renderer2D) SubmitColorRotated(q Quad, tint math.Vec4, angle float32, degrees bool) error {
	return r.Submit(q, QuadDraw{Tint: &tint, Angle: angle, AngleInDegrees: degrees})
}

func (r *Renderer2D) SubmitTintedRotated(q Quad, tint math.Vec4, texture Texture, angle float32, degrees bool) error {
	return r.Submit(q, QuadDraw{Tint: &tint, Texture: texture, Angle: angle, AngleInDegrees: degrees})
}

func (r *Renderer2D) End() error {
	if err := r.endSpan(); err != nil {
		return fmt.Errorf("renderer2d: %w", err)
	}
	return nil
}

func (r *Renderer2D) Stats() Stats {
	return r.stats
}

func (r *Renderer2D) Shutdown() {
	r.release()
	if r.quad != nil {
		r.quad.Destroy()
		r.quad = nil
	}
	if r.white != nil {
		r.white.Destroy()
		r.white = nil
	}
	r.shader = nil
}
