// Package headless is a graphics device that keeps every resource in memory
// and records what the renderers ask of it. It needs no GPU or window.
package headless

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

// Draw is one DrawIndexed call together with the state it was issued with.
type Draw struct {
	Shader     string
	IndexCount int32
	// Uniforms holds every value uploaded to the bound shader so far.
	Uniforms map[string]renderer.UniformValue
	// Textures maps texture units to the name of the bound texture.
	Textures map[uint32]string
	Blending bool
	Depth    bool
}

// Model returns the u_model matrix of the draw, or the identity.
func (d Draw) Model() math.Mat4 {
	if m, ok := d.Uniforms[renderer.UniformModel].(renderer.Mat4); ok {
		return math.Mat4(m)
	}
	return math.NewMat4Identity()
}

// Tint returns the u_tint of the draw, or white.
func (d Draw) Tint() math.Vec4 {
	if t, ok := d.Uniforms[renderer.UniformTint].(renderer.Float4); ok {
		return math.Vec4(t)
	}
	return math.NewVec4One()
}

type Device struct {
	draws      []Draw
	shaderBind []string
	bound      *Shader
	textures   map[uint32]string

	Viewport   [4]int32
	ClearColor math.Vec4
	Clears     int
	DepthTest  bool
	Blending   bool

	live int
}

func NewDevice() *Device {
	return &Device{textures: make(map[uint32]string)}
}

func (d *Device) Name() string {
	return "headless"
}

func (d *Device) CreateShader(name, vertexSource, fragmentSource string) (renderer.Shader, error) {
	uniforms, err := ParseUniforms(vertexSource + "\n" + fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	d.live++
	return &Shader{device: d, name: name, declared: uniforms, values: make(map[string]renderer.UniformValue)}, nil
}

func (d *Device) CreateTexture(name string, width, height uint32, pixels []uint8) (renderer.Texture, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("texture %q: invalid dimensions %dx%d", name, width, height)
	}
	if want := int(width * height * 4); len(pixels) != want {
		return nil, fmt.Errorf("texture %q: got %d bytes of pixel data, want %d", name, len(pixels), want)
	}
	if name == "" {
		name = renderer.GeneratedName("texture")
	}
	d.live++
	return &Texture{device: d, name: name, width: width, height: height, pixels: append([]uint8(nil), pixels...)}, nil
}

func (d *Device) CreateVertexArray(vertices []float32, layout renderer.BufferLayout, indices []uint32) (renderer.VertexArray, error) {
	stride := layout.FloatsPerVertex()
	if stride == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("%w: %d floats do not fit a stride of %d", renderer.ErrInvalidGeometry, len(vertices), stride)
	}
	if err := renderer.ValidateIndices(len(vertices)/stride, indices); err != nil {
		return nil, err
	}
	d.live++
	return &VertexArray{device: d, layout: layout, vertexCount: len(vertices) / stride, indexCount: int32(len(indices))}, nil
}

func (d *Device) SetViewport(x, y, width, height int32) {
	d.Viewport = [4]int32{x, y, width, height}
}

func (d *Device) SetClearColor(colour math.Vec4) {
	d.ClearColor = colour
}

func (d *Device) Clear() {
	d.Clears++
}

func (d *Device) SetDepthTest(enabled bool) {
	d.DepthTest = enabled
}

func (d *Device) SetBlending(enabled bool) {
	d.Blending = enabled
}

func (d *Device) DrawIndexed(va renderer.VertexArray) {
	draw := Draw{
		IndexCount: va.IndexCount(),
		Uniforms:   make(map[string]renderer.UniformValue),
		Textures:   make(map[uint32]string, len(d.textures)),
		Blending:   d.Blending,
		Depth:      d.DepthTest,
	}
	if d.bound != nil {
		draw.Shader = d.bound.name
		for k, v := range d.bound.values {
			draw.Uniforms[k] = v
		}
	} else {
		core.LogWarn("headless: draw issued with no shader bound")
	}
	for unit, name := range d.textures {
		draw.Textures[unit] = name
	}
	d.draws = append(d.draws, draw)
}

func (d *Device) Shutdown() error {
	if d.live != 0 {
		core.LogWarn("headless: %d resources still alive at shutdown", d.live)
	}
	return nil
}

// Draws returns every draw issued since the last Reset.
func (d *Device) Draws() []Draw {
	return d.draws
}

// ShaderBinds lists the names of bound shaders in bind order.
func (d *Device) ShaderBinds() []string {
	return d.shaderBind
}

// Live is the number of created resources not yet destroyed.
func (d *Device) Live() int {
	return d.live
}

// Reset forgets recorded draws and binds; resources stay alive.
func (d *Device) Reset() {
	d.draws = nil
	d.shaderBind = nil
	d.Clears = 0
}

type Shader struct {
	device   *Device
	name     string
	declared map[string]renderer.ShaderDataType
	values   map[string]renderer.UniformValue
}

func (s *Shader) Name() string {
	return s.name
}

func (s *Shader) Bind() {
	s.device.bound = s
	s.device.shaderBind = append(s.device.shaderBind, s.name)
}

func (s *Shader) UploadUniform(name string, value renderer.UniformValue) error {
	declared, ok := s.declared[name]
	if !ok {
		return fmt.Errorf("%w: %q", renderer.ErrUnknownUniform, name)
	}
	if !declared.Accepts(value.DataType()) {
		return fmt.Errorf("%w: %q is %s, got %s", renderer.ErrUniformTypeMismatch, name, declared, value.DataType())
	}
	s.values[name] = value
	return nil
}

// Value returns the last value uploaded to name.
func (s *Shader) Value(name string) (renderer.UniformValue, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *Shader) Destroy() {
	if s.device.bound == s {
		s.device.bound = nil
	}
	s.device.live--
}

type Texture struct {
	device        *Device
	name          string
	width, height uint32
	pixels        []uint8
}

func (t *Texture) Name() string   { return t.name }
func (t *Texture) Width() uint32  { return t.width }
func (t *Texture) Height() uint32 { return t.height }

// Pixels returns the RGBA8 data the texture was created with.
func (t *Texture) Pixels() []uint8 { return t.pixels }

func (t *Texture) BindToUnit(unit uint32) {
	t.device.textures[unit] = t.name
}

func (t *Texture) Destroy() {
	t.device.live--
}

type VertexArray struct {
	device      *Device
	layout      renderer.BufferLayout
	vertexCount int
	indexCount  int32
}

func (va *VertexArray) Bind()                         {}
func (va *VertexArray) Layout() renderer.BufferLayout { return va.layout }
func (va *VertexArray) IndexCount() int32             { return va.indexCount }
func (va *VertexArray) VertexCount() int              { return va.vertexCount }

func (va *VertexArray) Destroy() {
	va.device.live--
}
