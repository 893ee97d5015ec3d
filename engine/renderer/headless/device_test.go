package headless

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

func TestParseUniforms(t *testing.T) {
	source := `#version 330 core
uniform mat4 u_model;
  uniform vec4   u_tint ;
uniform sampler2D u_texData;
// uniform float u_commented;
void main() {}
`
	got, err := ParseUniforms(source)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]renderer.ShaderDataType{
		"u_model":   renderer.ShaderDataTypeMat4,
		"u_tint":    renderer.ShaderDataTypeFloat4,
		"u_texData": renderer.ShaderDataTypeSampler2D,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for name, shape := range want {
		if got[name] != shape {
			t.Errorf("%s = %v, want %v", name, got[name], shape)
		}
	}
}

func TestParseUniformsErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"array", "uniform vec3 u_lights[4];"},
		{"unknown type", "uniform dmat4 u_model;"},
		{"conflicting redeclaration", "uniform vec3 u_a;\nuniform vec4 u_a;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUniforms(tt.source); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestShaderUploadChecksDeclarations(t *testing.T) {
	d := NewDevice()
	s, err := d.CreateShader("test", "uniform mat4 u_model;", "uniform sampler2D u_texData;")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value renderer.UniformValue
		want  error
	}{
		{"u_model", renderer.Mat4(math.NewMat4Identity()), nil},
		{"u_model", renderer.Float4(math.NewVec4One()), renderer.ErrUniformTypeMismatch},
		{"u_texData", renderer.Int(0), nil},
		{"u_missing", renderer.Float(1), renderer.ErrUnknownUniform},
	}
	for _, tt := range tests {
		err := s.UploadUniform(tt.name, tt.value)
		if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
			t.Errorf("%s <- %v: got %v, want %v", tt.name, tt.value.DataType(), err, tt.want)
		}
	}
	if v, _ := s.(*Shader).Value("u_model"); v.DataType() != renderer.ShaderDataTypeMat4 {
		t.Error("rejected upload overwrote the accepted value")
	}
}

func TestResourceValidationAndLifetime(t *testing.T) {
	d := NewDevice()

	if _, err := d.CreateTexture("bad", 0, 4, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := d.CreateTexture("short", 2, 2, make([]uint8, 3)); err == nil {
		t.Error("short pixel buffer accepted")
	}
	tex, err := d.CreateTexture("", 1, 1, []uint8{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(tex.Name(), "texture_") {
		t.Errorf("generated name = %q", tex.Name())
	}

	layout := renderer.NewBufferLayoutFromTypes(renderer.ShaderDataTypeFloat2)
	if _, err := d.CreateVertexArray([]float32{0, 0, 1}, layout, []uint32{0, 0, 0}); !errors.Is(err, renderer.ErrInvalidGeometry) {
		t.Errorf("ragged vertices: got %v", err)
	}
	va, err := d.CreateVertexArray([]float32{0, 0, 1, 0, 0, 1}, layout, []uint32{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if va.IndexCount() != 3 || va.(*VertexArray).VertexCount() != 3 {
		t.Errorf("counts = %d, %d", va.IndexCount(), va.(*VertexArray).VertexCount())
	}

	if d.Live() != 2 {
		t.Errorf("live = %d", d.Live())
	}
	tex.Destroy()
	va.Destroy()
	if d.Live() != 0 {
		t.Errorf("live after destroy = %d", d.Live())
	}
}

func TestDrawRecordsState(t *testing.T) {
	d := NewDevice()
	s, _ := d.CreateShader("quad", "uniform mat4 u_model;", "")
	tex, _ := d.CreateTexture("atlas", 1, 1, []uint8{0, 0, 0, 0})
	va, _ := d.CreateVertexArray(make([]float32, 9), renderer.NewBufferLayoutFromTypes(renderer.ShaderDataTypeFloat3), []uint32{0, 1, 2})

	model := math.NewMat4Translation(math.NewVec3(1, 2, 3))
	s.Bind()
	tex.BindToUnit(0)
	d.SetBlending(true)
	_ = s.UploadUniform("u_model", renderer.Mat4(model))
	d.DrawIndexed(va)

	draws := d.Draws()
	if len(draws) != 1 {
		t.Fatalf("draws = %d", len(draws))
	}
	got := draws[0]
	if got.Shader != "quad" || got.Textures[0] != "atlas" || !got.Blending || got.Depth || got.IndexCount != 3 {
		t.Errorf("draw = %+v", got)
	}
	if !got.Model().Compare(model, 0) {
		t.Errorf("model = %v", got.Model().Data)
	}

	d.Reset()
	if len(d.Draws()) != 0 || len(d.ShaderBinds()) != 0 {
		t.Error("Reset kept recordings")
	}
}
