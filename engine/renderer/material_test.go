package renderer_test

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/headless"
)

func TestMaterialConstruction(t *testing.T) {
	device := headless.NewDevice()
	shader := newTestShader(t, device, "phong")
	texture := newTestTexture(t, device, "numbers", 2, 2)
	tint := math.NewVec4(0.4, 0.7, 0.3, 0.5)

	tests := []struct {
		name        string
		build       func() (*renderer.Material, error)
		wantErr     bool
		wantTint    bool
		wantTexture bool
	}{
		{"colour", func() (*renderer.Material, error) { return renderer.NewColorMaterial(shader, tint) }, false, true, false},
		{"texture", func() (*renderer.Material, error) { return renderer.NewTextureMaterial(shader, texture) }, false, false, true},
		{"tinted texture", func() (*renderer.Material, error) { return renderer.NewTintedTextureMaterial(shader, texture, tint) }, false, true, true},
		{"colour without shader", func() (*renderer.Material, error) { return renderer.NewColorMaterial(nil, tint) }, true, false, false},
		{"texture without texture", func() (*renderer.Material, error) { return renderer.NewTextureMaterial(shader, nil) }, true, false, false},
		{"tinted without texture", func() (*renderer.Material, error) { return renderer.NewTintedTextureMaterial(shader, nil, tint) }, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			if tt.wantErr {
				if !errors.Is(err, renderer.ErrInvalidMaterial) || m != nil {
					t.Fatalf("got %v, %v", m, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if m.Shader() != shader {
				t.Error("shader not kept")
			}
			if gotTint, ok := m.Tint(); ok != tt.wantTint || (ok && gotTint != tint) {
				t.Errorf("tint = %v, %v", gotTint, ok)
			}
			if _, ok := m.Texture(); ok != tt.wantTexture {
				t.Errorf("has texture = %v", ok)
			}
		})
	}
}

func TestMaterialApply(t *testing.T) {
	device := headless.NewDevice()
	shader := newTestShader(t, device, "phong")
	texture := newTestTexture(t, device, "numbers", 2, 2)
	fallback := newTestTexture(t, device, "white", 1, 1)
	tint := math.NewVec4(0, 1, 1, 0.5)

	m, err := renderer.NewTintedTextureMaterial(shader, texture, tint)
	if err != nil {
		t.Fatal(err)
	}
	shader.Bind()
	if err := m.Apply(shader, fallback); err != nil {
		t.Fatal(err)
	}
	hs := shader.(*headless.Shader)
	if v, _ := hs.Value(renderer.UniformTint); v != renderer.Float4(tint) {
		t.Errorf("u_tint = %v", v)
	}
	if v, _ := hs.Value(renderer.UniformTexData); v != renderer.Int(0) {
		t.Errorf("u_texData = %v", v)
	}

	bare, err := device.CreateShader("bare", "void main() {}", "void main() {}")
	if err != nil {
		t.Fatal(err)
	}
	err = m.Apply(bare, fallback)
	if !errors.Is(err, renderer.ErrUnknownUniform) {
		t.Errorf("apply on a shader without material uniforms: got %v", err)
	}
}
