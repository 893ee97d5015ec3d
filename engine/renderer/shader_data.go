package renderer

import "fmt"

/** @brief The shape of a shader input: vertex attribute or uniform. */
type ShaderDataType uint8

const (
	ShaderDataTypeNone ShaderDataType = iota
	ShaderDataTypeFloat
	ShaderDataTypeFloat2
	ShaderDataTypeFloat3
	ShaderDataTypeFloat4
	ShaderDataTypeMat3
	ShaderDataTypeMat4
	ShaderDataTypeInt
	ShaderDataTypeInt2
	ShaderDataTypeInt3
	ShaderDataTypeInt4
	ShaderDataTypeBool
	ShaderDataTypeSampler2D
)

var shaderDataTypeNames = [...]string{
	ShaderDataTypeNone:      "None",
	ShaderDataTypeFloat:     "Float",
	ShaderDataTypeFloat2:    "Float2",
	ShaderDataTypeFloat3:    "Float3",
	ShaderDataTypeFloat4:    "Float4",
	ShaderDataTypeMat3:      "Mat3",
	ShaderDataTypeMat4:      "Mat4",
	ShaderDataTypeInt:       "Int",
	ShaderDataTypeInt2:      "Int2",
	ShaderDataTypeInt3:      "Int3",
	ShaderDataTypeInt4:      "Int4",
	ShaderDataTypeBool:      "Bool",
	ShaderDataTypeSampler2D: "Sampler2D",
}

func (t ShaderDataType) String() string {
	if int(t) < len(shaderDataTypeNames) {
		return shaderDataTypeNames[t]
	}
	return fmt.Sprintf("ShaderDataType(%d)", uint8(t))
}

// Size returns the size in bytes of one value of this type.
func (t ShaderDataType) Size() uint32 {
	switch t {
	case ShaderDataTypeFloat, ShaderDataTypeInt, ShaderDataTypeSampler2D:
		return 4
	case ShaderDataTypeFloat2, ShaderDataTypeInt2:
		return 4 * 2
	case ShaderDataTypeFloat3, ShaderDataTypeInt3:
		return 4 * 3
	case ShaderDataTypeFloat4, ShaderDataTypeInt4:
		return 4 * 4
	case ShaderDataTypeMat3:
		return 4 * 3 * 3
	case ShaderDataTypeMat4:
		return 4 * 4 * 4
	case ShaderDataTypeBool:
		return 1
	}
	return 0
}

// ComponentCount returns the number of scalar components. Matrices count
// their columns, which is how they are split into vertex attributes.
func (t ShaderDataType) ComponentCount() int32 {
	switch t {
	case ShaderDataTypeFloat, ShaderDataTypeInt, ShaderDataTypeBool, ShaderDataTypeSampler2D:
		return 1
	case ShaderDataTypeFloat2, ShaderDataTypeInt2:
		return 2
	case ShaderDataTypeFloat3, ShaderDataTypeInt3, ShaderDataTypeMat3:
		return 3
	case ShaderDataTypeFloat4, ShaderDataTypeInt4, ShaderDataTypeMat4:
		return 4
	}
	return 0
}

// IsInteger reports whether the type is read as integers by the shader.
func (t ShaderDataType) IsInteger() bool {
	switch t {
	case ShaderDataTypeInt, ShaderDataTypeInt2, ShaderDataTypeInt3, ShaderDataTypeInt4,
		ShaderDataTypeBool, ShaderDataTypeSampler2D:
		return true
	}
	return false
}

// Accepts reports whether a uniform declared as t may be set from a value
// of shape got. Samplers and booleans are set through Int.
func (t ShaderDataType) Accepts(got ShaderDataType) bool {
	if t == got {
		return true
	}
	switch t {
	case ShaderDataTypeSampler2D, ShaderDataTypeBool:
		return got == ShaderDataTypeInt
	}
	return false
}

/** @brief One attribute of an interleaved vertex. */
type BufferElement struct {
	Name       string
	Type       ShaderDataType
	Normalized bool
	Size       uint32
	Offset     uint32
}

func NewBufferElement(name string, dataType ShaderDataType) BufferElement {
	return BufferElement{Name: name, Type: dataType, Size: dataType.Size()}
}

/** @brief Describes the layout of an interleaved vertex buffer. */
type BufferLayout struct {
	elements []BufferElement
	stride   uint32
}

func NewBufferLayout(elements ...BufferElement) BufferLayout {
	l := BufferLayout{elements: make([]BufferElement, len(elements))}
	var offset uint32
	for i, e := range elements {
		if e.Size == 0 {
			e.Size = e.Type.Size()
		}
		e.Offset = offset
		offset += e.Size
		l.elements[i] = e
	}
	l.stride = offset
	return l
}

// NewBufferLayoutFromTypes builds a layout of unnamed elements.
func NewBufferLayoutFromTypes(types ...ShaderDataType) BufferLayout {
	elements := make([]BufferElement, len(types))
	for i, t := range types {
		elements[i] = NewBufferElement("", t)
	}
	return NewBufferLayout(elements...)
}

func (l BufferLayout) Elements() []BufferElement {
	return l.elements
}

// Stride is the size in bytes of one vertex.
func (l BufferLayout) Stride() uint32 {
	return l.stride
}

// FloatsPerVertex is Stride expressed in float32 components.
func (l BufferLayout) FloatsPerVertex() int {
	return int(l.stride / 4)
}
