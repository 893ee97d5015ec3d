package renderer

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief A rectangular region of a texture atlas, addressed as if it were a
 * standalone texture with its own [0,1] coordinates.
 */
type SubTexture struct {
	texture Texture
	uvStart math.Vec2
	uvEnd   math.Vec2
	width   int
	height  int
}

// NewSubTexture requires 0 <= uvStart <= uvEnd <= 1 on both axes.
func NewSubTexture(texture Texture, uvStart, uvEnd math.Vec2) (SubTexture, error) {
	if texture == nil {
		return SubTexture{}, fmt.Errorf("%w: nil texture", ErrInvalidSubTexture)
	}
	if !inUnitRange(uvStart) || !inUnitRange(uvEnd) {
		return SubTexture{}, fmt.Errorf("%w: uv %v-%v outside [0,1]", ErrInvalidSubTexture, uvStart, uvEnd)
	}
	if uvStart.X > uvEnd.X || uvStart.Y > uvEnd.Y {
		return SubTexture{}, fmt.Errorf("%w: start %v after end %v", ErrInvalidSubTexture, uvStart, uvEnd)
	}
	return SubTexture{
		texture: texture,
		uvStart: uvStart,
		uvEnd:   uvEnd,
		width:   int(float32(texture.Width()) * (uvEnd.X - uvStart.X)),
		height:  int(float32(texture.Height()) * (uvEnd.Y - uvStart.Y)),
	}, nil
}

func inUnitRange(v math.Vec2) bool {
	return math.Clamp(v.X, 0, 1) == v.X && math.Clamp(v.Y, 0, 1) == v.Y
}

func (s SubTexture) Texture() Texture {
	return s.texture
}

func (s SubTexture) UVStart() math.Vec2 {
	return s.uvStart
}

func (s SubTexture) UVEnd() math.Vec2 {
	return s.uvEnd
}

// Size is the region's extent in texels.
func (s SubTexture) Size() (int, int) {
	return s.width, s.height
}

func (s SubTexture) SizeF() math.Vec2 {
	return math.NewVec2(float32(s.width), float32(s.height))
}

func (s SubTexture) Width() int {
	return s.width
}

func (s SubTexture) Height() int {
	return s.height
}

// TransformU maps a local u in [0,1] into the atlas.
func (s SubTexture) TransformU(u float32) float32 {
	return math.Lerp(s.uvStart.X, s.uvEnd.X, u)
}

// TransformV maps a local v in [0,1] into the atlas.
func (s SubTexture) TransformV(v float32) float32 {
	return math.Lerp(s.uvStart.Y, s.uvEnd.Y, v)
}

func (s SubTexture) TransformUV(uv math.Vec2) math.Vec2 {
	return math.NewVec2(s.TransformU(uv.X), s.TransformV(uv.Y))
}
