package testbed

import (
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

func vertex(px, py, pz, nx, ny, nz, u, v float32) renderer.Vertex3D {
	return renderer.Vertex3D{
		Position: math.NewVec3(px, py, pz),
		Normal:   math.NewVec3(nx, ny, nz),
		Texcoord: math.NewVec2(u, v),
	}
}

// cubeVertices maps the first three faces onto the letter half of the atlas
// and the last three onto the number half. Each face takes a third of its
// region's width.
func cubeVertices(letters, numbers renderer.SubTexture) []renderer.Vertex3D {
	l := letters.TransformUV
	n := numbers.TransformUV
	uv := math.NewVec2
	face := func(sub func(math.Vec2) math.Vec2, positions [4]math.Vec3, normal math.Vec3, uvs [4]math.Vec2) []renderer.Vertex3D {
		out := make([]renderer.Vertex3D, 4)
		for i := range out {
			t := sub(uvs[i])
			out[i] = vertex(positions[i].X, positions[i].Y, positions[i].Z, normal.X, normal.Y, normal.Z, t.X, t.Y)
		}
		return out
	}
	p := math.NewVec3

	var out []renderer.Vertex3D
	// back
	out = append(out, face(l,
		[4]math.Vec3{p(0.5, 0.5, -0.5), p(0.5, -0.5, -0.5), p(-0.5, -0.5, -0.5), p(-0.5, 0.5, -0.5)},
		p(0, 0, -1),
		[4]math.Vec2{uv(0, 0), uv(0, 0.5), uv(0.33, 0.5), uv(0.33, 0)})...)
	// front
	out = append(out, face(l,
		[4]math.Vec3{p(-0.5, -0.5, 0.5), p(0.5, -0.5, 0.5), p(0.5, 0.5, 0.5), p(-0.5, 0.5, 0.5)},
		p(0, 0, 1),
		[4]math.Vec2{uv(0.33, 0.5), uv(0.66, 0.5), uv(0.66, 0), uv(0.33, 0)})...)
	// bottom
	out = append(out, face(l,
		[4]math.Vec3{p(-0.5, -0.5, -0.5), p(0.5, -0.5, -0.5), p(0.5, -0.5, 0.5), p(-0.5, -0.5, 0.5)},
		p(0, -1, 0),
		[4]math.Vec2{uv(1, 0), uv(0.66, 0), uv(0.66, 0.5), uv(1, 0.5)})...)
	// top
	out = append(out, face(n,
		[4]math.Vec3{p(0.5, 0.5, 0.5), p(0.5, 0.5, -0.5), p(-0.5, 0.5, -0.5), p(-0.5, 0.5, 0.5)},
		p(0, 1, 0),
		[4]math.Vec2{uv(0, 0.5), uv(0, 1), uv(0.33, 1), uv(0.33, 0.5)})...)
	// left
	out = append(out, face(n,
		[4]math.Vec3{p(-0.5, 0.5, 0.5), p(-0.5, 0.5, -0.5), p(-0.5, -0.5, -0.5), p(-0.5, -0.5, 0.5)},
		p(-1, 0, 0),
		[4]math.Vec2{uv(0.66, 0.5), uv(0.33, 0.5), uv(0.33, 1), uv(0.66, 1)})...)
	// right
	out = append(out, face(n,
		[4]math.Vec3{p(0.5, -0.5, -0.5), p(0.5, 0.5, -0.5), p(0.5, 0.5, 0.5), p(0.5, -0.5, 0.5)},
		p(1, 0, 0),
		[4]math.Vec2{uv(1, 1), uv(1, 0.5), uv(0.66, 0.5), uv(0.66, 1)})...)
	return out
}

// quadIndices returns two triangles per four-vertex face.
func quadIndices(faces int) []uint32 {
	out := make([]uint32, 0, faces*6)
	for f := uint32(0); f < uint32(faces); f++ {
		b := f * 4
		out = append(out, b, b+1, b+2, b+2, b+3, b)
	}
	return out
}

func pyramidVertices() []renderer.Vertex3D {
	return []renderer.Vertex3D{
		// base
		vertex(-0.5, -0.5, -0.5, 0, -1, 0, 0, 0),
		vertex(0.5, -0.5, -0.5, 0, -1, 0, 0, 0.5),
		vertex(0.5, -0.5, 0.5, 0, -1, 0, 0.33, 0.5),
		vertex(-0.5, -0.5, 0.5, 0, -1, 0, 0.33, 0),

		vertex(-0.5, -0.5, -0.5, -0.8944, 0.4472, 0, 0.33, 1),
		vertex(-0.5, -0.5, 0.5, -0.8944, 0.4472, 0, 0.66, 1),
		vertex(0, 0.5, 0, -0.8944, 0.4472, 0, 0.495, 0),

		vertex(-0.5, -0.5, 0.5, 0, 0.4472, 0.8944, 0, 0),
		vertex(0.5, -0.5, 0.5, 0, 0.4472, 0.8944, 0, 0),
		vertex(0, 0.5, 0, 0, 0.4472, 0.8944, 0, 0),

		vertex(0.5, -0.5, 0.5, 0.8944, 0.4472, 0, 0, 0),
		vertex(0.5, -0.5, -0.5, 0.8944, 0.4472, 0, 0, 0),
		vertex(0, 0.5, 0, 0.8944, 0.4472, 0, 0, 0),

		vertex(0.5, -0.5, -0.5, 0, 0.4472, -0.8944, 0, 0),
		vertex(-0.5, -0.5, -0.5, 0, 0.4472, -0.8944, 0, 0),
		vertex(0, 0.5, 0, 0, 0.4472, -0.8944, 0, 0),
	}
}

var pyramidIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
	4, 5, 6,
	7, 8, 9,
	10, 11, 12,
	13, 14, 15,
}

// overlayQuads are laid out for an 800x600 window, y down.
var overlayQuads = [6]renderer.Quad{
	renderer.NewQuadCentreHalfExtents(math.NewVec2(400, 75), math.NewVec2(100, 50)),
	renderer.NewQuadCentreHalfExtents(math.NewVec2(350, 300), math.NewVec2(50, 100)),
	renderer.NewQuadCentreHalfExtents(math.NewVec2(400, 500), math.NewVec2(75, 75)),

	renderer.NewQuadCentreHalfExtents(math.NewVec2(100, 200), math.NewVec2(75, 50)),
	renderer.NewQuadCentreHalfExtents(math.NewVec2(700, 100), math.NewVec2(50, 25)),
	renderer.NewQuadCentreHalfExtents(math.NewVec2(600, 450), math.NewVec2(75, 15)),
}
