package renderer

import (
	"github.com/spaghettifunk/prism/engine/math"
)

// UniformValue is a shader input of a known shape. The set of
// implementations is closed: the owned values declared below, and views
// created with the View* constructors.
type UniformValue interface {
	DataType() ShaderDataType
	// snapshot returns an owned copy of the value.
	snapshot() (UniformValue, error)
}

type (
	Float  float32
	Float2 math.Vec2
	Float3 math.Vec3
	Float4 math.Vec4
	Mat3   math.Mat3
	Mat4   math.Mat4
	Int    int32
)

func (Float) DataType() ShaderDataType  { return ShaderDataTypeFloat }
func (Float2) DataType() ShaderDataType { return ShaderDataTypeFloat2 }
func (Float3) DataType() ShaderDataType { return ShaderDataTypeFloat3 }
func (Float4) DataType() ShaderDataType { return ShaderDataTypeFloat4 }
func (Mat3) DataType() ShaderDataType   { return ShaderDataTypeMat3 }
func (Mat4) DataType() ShaderDataType   { return ShaderDataTypeMat4 }
func (Int) DataType() ShaderDataType    { return ShaderDataTypeInt }

func (v Float) snapshot() (UniformValue, error)  { return v, nil }
func (v Float2) snapshot() (UniformValue, error) { return v, nil }
func (v Float3) snapshot() (UniformValue, error) { return v, nil }
func (v Float4) snapshot() (UniformValue, error) { return v, nil }
func (v Mat3) snapshot() (UniformValue, error)   { return v, nil }
func (v Mat4) snapshot() (UniformValue, error)   { return v, nil }
func (v Int) snapshot() (UniformValue, error)    { return v, nil }

// View is a non-owning reference to caller storage. The storage must stay
// alive until the renderer's Begin has returned; the value is copied there.
type View[T any] struct {
	ptr      *T
	dataType ShaderDataType
	own      func(T) UniformValue
}

func (v View[T]) DataType() ShaderDataType {
	return v.dataType
}

func (v View[T]) snapshot() (UniformValue, error) {
	if v.ptr == nil {
		return nil, ErrNilUniformView
	}
	return v.own(*v.ptr), nil
}

func ViewFloat(p *float32) View[float32] {
	return View[float32]{ptr: p, dataType: ShaderDataTypeFloat, own: func(v float32) UniformValue { return Float(v) }}
}

func ViewVec2(p *math.Vec2) View[math.Vec2] {
	return View[math.Vec2]{ptr: p, dataType: ShaderDataTypeFloat2, own: func(v math.Vec2) UniformValue { return Float2(v) }}
}

func ViewVec3(p *math.Vec3) View[math.Vec3] {
	return View[math.Vec3]{ptr: p, dataType: ShaderDataTypeFloat3, own: func(v math.Vec3) UniformValue { return Float3(v) }}
}

func ViewVec4(p *math.Vec4) View[math.Vec4] {
	return View[math.Vec4]{ptr: p, dataType: ShaderDataTypeFloat4, own: func(v math.Vec4) UniformValue { return Float4(v) }}
}

func ViewMat3(p *math.Mat3) View[math.Mat3] {
	return View[math.Mat3]{ptr: p, dataType: ShaderDataTypeMat3, own: func(v math.Mat3) UniformValue { return Mat3(v) }}
}

func ViewMat4(p *math.Mat4) View[math.Mat4] {
	return View[math.Mat4]{ptr: p, dataType: ShaderDataTypeMat4, own: func(v math.Mat4) UniformValue { return Mat4(v) }}
}

func ViewInt(p *int32) View[int32] {
	return View[int32]{ptr: p, dataType: ShaderDataTypeInt, own: func(v int32) UniformValue { return Int(v) }}
}

// Snapshot returns an owned copy of v. Views are dereferenced.
func Snapshot(v UniformValue) (UniformValue, error) {
	if v == nil {
		return nil, ErrNilUniformView
	}
	return v.snapshot()
}

type namedUniform struct {
	name  string
	value UniformValue
}

/**
 * @brief Uniforms shared by every draw of a begin/end span, such as camera
 * and lighting. Entries keep insertion order; setting an existing name
 * overwrites its value in place.
 */
type SceneWideUniforms struct {
	entries []namedUniform
	index   map[string]int
}

func NewSceneWideUniforms() *SceneWideUniforms {
	return &SceneWideUniforms{index: make(map[string]int)}
}

func (s *SceneWideUniforms) Set(name string, value UniformValue) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.entries[i].value = value
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, namedUniform{name: name, value: value})
}

func (s *SceneWideUniforms) Get(name string) (UniformValue, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].value, true
}

func (s *SceneWideUniforms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Each visits entries in insertion order.
func (s *SceneWideUniforms) Each(fn func(name string, value UniformValue)) {
	if s == nil {
		return
	}
	for _, e := range s.entries {
		fn(e.name, e.value)
	}
}

// Reset drops every entry, keeping the allocated storage.
func (s *SceneWideUniforms) Reset() {
	s.entries = s.entries[:0]
	clear(s.index)
}
