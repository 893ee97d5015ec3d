package renderer

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/prism/engine/math"
)

func TestSceneWideUniformsOrderAndOverwrite(t *testing.T) {
	s := NewSceneWideUniforms()
	s.Set("u_view", Mat4(math.NewMat4Identity()))
	s.Set("u_projection", Mat4(math.NewMat4Identity()))
	s.Set("u_lightColour", Float3(math.NewVec3One()))
	s.Set("u_view", Float(2))

	var names []string
	s.Each(func(name string, _ UniformValue) { names = append(names, name) })
	want := []string{"u_view", "u_projection", "u_lightColour"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v, want %v", names, want)
		}
	}
	if v, ok := s.Get("u_view"); !ok || v != Float(2) {
		t.Errorf("u_view = %v, %v", v, ok)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Error("Reset kept entries")
	}
	if _, ok := s.Get("u_view"); ok {
		t.Error("Reset kept the index")
	}
	s.Set("u_view", Int(1))
	if s.Len() != 1 {
		t.Error("set after reset")
	}
}

func TestZeroValueSceneWideUniforms(t *testing.T) {
	var s SceneWideUniforms
	s.Set("u_time", Float(1))
	if v, ok := s.Get("u_time"); !ok || v != Float(1) {
		t.Errorf("got %v, %v", v, ok)
	}
}

func TestUniformValueShapes(t *testing.T) {
	f := float32(3)
	v2 := math.NewVec2(1, 2)
	v3 := math.NewVec3(1, 2, 3)
	v4 := math.NewVec4(1, 2, 3, 4)
	m3 := math.NewMat3Identity()
	m4 := math.NewMat4Identity()
	i := int32(7)

	tests := []struct {
		name  string
		value UniformValue
		shape ShaderDataType
		owned UniformValue
	}{
		{"float", Float(3), ShaderDataTypeFloat, Float(3)},
		{"float view", ViewFloat(&f), ShaderDataTypeFloat, Float(3)},
		{"vec2 view", ViewVec2(&v2), ShaderDataTypeFloat2, Float2(v2)},
		{"vec3 view", ViewVec3(&v3), ShaderDataTypeFloat3, Float3(v3)},
		{"vec4 view", ViewVec4(&v4), ShaderDataTypeFloat4, Float4(v4)},
		{"mat3 view", ViewMat3(&m3), ShaderDataTypeMat3, Mat3(m3)},
		{"mat4 view", ViewMat4(&m4), ShaderDataTypeMat4, Mat4(m4)},
		{"int view", ViewInt(&i), ShaderDataTypeInt, Int(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.DataType() != tt.shape {
				t.Errorf("shape = %v, want %v", tt.value.DataType(), tt.shape)
			}
			got, err := Snapshot(tt.value)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.owned {
				t.Errorf("snapshot = %v, want %v", got, tt.owned)
			}
		})
	}

	if _, err := Snapshot(ViewMat4(nil)); !errors.Is(err, ErrNilUniformView) {
		t.Errorf("nil view: got %v", err)
	}
	if _, err := Snapshot(nil); !errors.Is(err, ErrNilUniformView) {
		t.Errorf("nil value: got %v", err)
	}
}

func TestShaderDataTypeAccepts(t *testing.T) {
	if !ShaderDataTypeSampler2D.Accepts(ShaderDataTypeInt) || !ShaderDataTypeBool.Accepts(ShaderDataTypeInt) {
		t.Error("samplers and bools are set through Int")
	}
	if ShaderDataTypeMat4.Accepts(ShaderDataTypeFloat4) || ShaderDataTypeFloat3.Accepts(ShaderDataTypeFloat4) {
		t.Error("shapes must not be coerced")
	}
}
