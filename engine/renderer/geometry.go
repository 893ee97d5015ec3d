package renderer

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position math.Vec3
	/** @brief The normal of the vertex. */
	Normal math.Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord math.Vec2
}

// Layout3D matches Vertex3D: position, normal, texcoord.
var Layout3D = NewBufferLayout(
	NewBufferElement("a_vertexPosition", ShaderDataTypeFloat3),
	NewBufferElement("a_vertexNormal", ShaderDataTypeFloat3),
	NewBufferElement("a_texCoord", ShaderDataTypeFloat2),
)

// Layout2D is the unit quad's layout: position, texcoord.
var Layout2D = NewBufferLayout(
	NewBufferElement("a_vertexPosition", ShaderDataTypeFloat3),
	NewBufferElement("a_texCoord", ShaderDataTypeFloat2),
)

// Interleave flattens vertices in Layout3D order.
func Interleave(vertices []Vertex3D) []float32 {
	out := make([]float32, 0, len(vertices)*Layout3D.FloatsPerVertex())
	for _, v := range vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Texcoord.X, v.Texcoord.Y,
		)
	}
	return out
}

/**
 * @brief Sets every vertex normal to the normalized sum of the normals of
 * the triangles that reference it. Counter-clockwise winding is front facing.
 */
func GenerateNormals(vertices []Vertex3D, indices []uint32) error {
	if err := ValidateIndices(len(vertices), indices); err != nil {
		return err
	}
	for i := range vertices {
		vertices[i].Normal = math.NewVec3Zero()
	}
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2)
		vertices[i0].Normal = vertices[i0].Normal.Add(normal)
		vertices[i1].Normal = vertices[i1].Normal.Add(normal)
		vertices[i2].Normal = vertices[i2].Normal.Add(normal)
	}
	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalized()
	}
	return nil
}

// ValidateIndices checks that indices form whole triangles within vertexCount.
func ValidateIndices(vertexCount int, indices []uint32) error {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidGeometry, len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d out of range for %d vertices", ErrInvalidGeometry, idx, vertexCount)
		}
	}
	return nil
}

// UploadMesh validates the mesh and creates a vertex array on device.
func UploadMesh(device Device, vertices []Vertex3D, indices []uint32) (VertexArray, error) {
	if err := ValidateIndices(len(vertices), indices); err != nil {
		return nil, err
	}
	return device.CreateVertexArray(Interleave(vertices), Layout3D, indices)
}

// Unit quad centred on the origin, texcoords flipped so v grows downwards
// in screen space.
var (
	unitQuadVertices = []float32{
		-0.5, -0.5, 0, 0, 0,
		0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0, 1, 1,
		-0.5, 0.5, 0, 0, 1,
	}
	unitQuadIndices = []uint32{0, 1, 2, 2, 3, 0}
)
