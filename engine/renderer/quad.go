package renderer

import (
	"github.com/spaghettifunk/prism/engine/math"
)

// Quad is an axis-aligned rectangle in screen space.
type Quad struct {
	centre      math.Vec2
	halfExtents math.Vec2
}

func NewQuadCentreHalfExtents(centre, halfExtents math.Vec2) Quad {
	return Quad{centre: centre, halfExtents: halfExtents}
}

func NewQuadMinMax(min, max math.Vec2) Quad {
	halfExtents := max.Sub(min).MulScalar(0.5)
	return Quad{centre: min.Add(halfExtents), halfExtents: halfExtents}
}

func (q Quad) Centre() math.Vec2 {
	return q.centre
}

func (q Quad) HalfExtents() math.Vec2 {
	return q.halfExtents
}

func (q Quad) Min() math.Vec2 {
	return q.centre.Sub(q.halfExtents)
}

func (q Quad) Max() math.Vec2 {
	return q.centre.Add(q.halfExtents)
}

func (q Quad) Extents() math.Extents2D {
	return math.Extents2D{Min: q.Min(), Max: q.Max()}
}

// Model maps the unit quad (-0.5..0.5) onto q, rotated by radians about its centre.
func (q Quad) Model(radians float32) math.Mat4 {
	scale := math.NewMat4Scale(math.NewVec3(2*q.halfExtents.X, 2*q.halfExtents.Y, 1))
	translate := math.NewMat4Translation(math.NewVec3(q.centre.X, q.centre.Y, 0))
	if radians == 0 {
		return scale.Mul(translate)
	}
	return scale.Mul(math.NewMat4EulerZ(radians)).Mul(translate)
}
