package renderer

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/prism/engine/math"
)

const (
	UniformModel      = "u_model"
	UniformTint       = "u_tint"
	UniformTexData    = "u_texData"
	UniformTexCoords  = "u_texCoords"
	UniformView       = "u_view"
	UniformProjection = "u_projection"
)

// The texture unit every material samples from.
const materialTextureUnit uint32 = 0

var defaultTint = math.NewVec4One()

/**
 * @brief Binds a shader to a flat colour, a texture, or both. A material is
 * immutable; the shader and texture may be shared with other materials.
 */
type Material struct {
	shader  Shader
	tint    math.Vec4
	hasTint bool
	texture Texture
}

func NewColorMaterial(shader Shader, tint math.Vec4) (*Material, error) {
	if shader == nil {
		return nil, fmt.Errorf("%w: nil shader", ErrInvalidMaterial)
	}
	return &Material{shader: shader, tint: tint, hasTint: true}, nil
}

func NewTextureMaterial(shader Shader, texture Texture) (*Material, error) {
	if shader == nil {
		return nil, fmt.Errorf("%w: nil shader", ErrInvalidMaterial)
	}
	if texture == nil {
		return nil, fmt.Errorf("%w: nil texture", ErrInvalidMaterial)
	}
	return &Material{shader: shader, texture: texture}, nil
}

func NewTintedTextureMaterial(shader Shader, texture Texture, tint math.Vec4) (*Material, error) {
	m, err := NewTextureMaterial(shader, texture)
	if err != nil {
		return nil, err
	}
	m.tint = tint
	m.hasTint = true
	return m, nil
}

// validate rejects materials that did not come from a constructor.
func (m *Material) validate() error {
	switch {
	case m == nil:
		return fmt.Errorf("%w: nil material", ErrInvalidMaterial)
	case m.shader == nil:
		return fmt.Errorf("%w: nil shader", ErrInvalidMaterial)
	case !m.hasTint && m.texture == nil:
		return fmt.Errorf("%w: neither colour nor texture", ErrInvalidMaterial)
	}
	return nil
}

func (m *Material) Shader() Shader {
	return m.shader
}

func (m *Material) Tint() (math.Vec4, bool) {
	return m.tint, m.hasTint
}

func (m *Material) Texture() (Texture, bool) {
	return m.texture, m.texture != nil
}

/**
 * @brief Uploads the tint and binds the texture for a draw with shader.
 * A missing tint uploads white; a missing texture binds fallback. Upload
 * failures are returned joined, after everything else has been applied.
 */
func (m *Material) Apply(shader Shader, fallback Texture) error {
	tint := defaultTint
	if m.hasTint {
		tint = m.tint
	}
	texture := fallback
	if m.texture != nil {
		texture = m.texture
	}
	return applySurface(shader, tint, texture)
}

func applySurface(shader Shader, tint math.Vec4, texture Texture) error {
	var errs []error
	if err := shader.UploadUniform(UniformTint, Float4(tint)); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", UniformTint, err))
	}
	if texture != nil {
		texture.BindToUnit(materialTextureUnit)
	}
	if err := shader.UploadUniform(UniformTexData, Int(materialTextureUnit)); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", UniformTexData, err))
	}
	return errors.Join(errs...)
}
