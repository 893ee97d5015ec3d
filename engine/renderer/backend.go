package renderer

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief A graphics backend. Resource creation hands ownership to the
 * caller; Destroy on the returned object releases it.
 */
type Device interface {
	Name() string
	// CreateShader compiles and links a program. The name is only used in logs.
	CreateShader(name, vertexSource, fragmentSource string) (Shader, error)
	// CreateTexture uploads tightly packed RGBA8 pixels. An empty name is
	// replaced by a generated one.
	CreateTexture(name string, width, height uint32, pixels []uint8) (Texture, error)
	CreateVertexArray(vertices []float32, layout BufferLayout, indices []uint32) (VertexArray, error)

	SetViewport(x, y, width, height int32)
	SetClearColor(colour math.Vec4)
	Clear()
	SetDepthTest(enabled bool)
	SetBlending(enabled bool)
	// DrawIndexed issues one draw covering every index of the vertex array.
	DrawIndexed(va VertexArray)

	Shutdown() error
}

type Shader interface {
	Name() string
	Bind()
	// UploadUniform writes an owned value to the named uniform of this
	// shader. It returns ErrUnknownUniform when the program has no such
	// active uniform and ErrUniformTypeMismatch when the declared type
	// differs from value's shape; nothing is written in either case.
	UploadUniform(name string, value UniformValue) error
	Destroy()
}

type Texture interface {
	Name() string
	Width() uint32
	Height() uint32
	BindToUnit(unit uint32)
	Destroy()
}

type VertexArray interface {
	Bind()
	Layout() BufferLayout
	IndexCount() int32
	Destroy()
}

// GeneratedName returns a unique resource name with the given prefix.
func GeneratedName(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
