// Package opengl implements the renderer's graphics device on OpenGL 3.3 core.
// Every call must be made on the goroutine that owns the current context.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

type Device struct {
	version string
}

// NewDevice loads the GL function pointers for the current context.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: failed to initialize: %w", err)
	}
	d := &Device{version: gl.GoStr(gl.GetString(gl.VERSION))}
	core.LogInfo("OpenGL %s, renderer %s", d.version, gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return d, nil
}

func (d *Device) Name() string {
	return "opengl " + d.version
}

func (d *Device) CreateShader(name, vertexSource, fragmentSource string) (renderer.Shader, error) {
	return newShader(name, vertexSource, fragmentSource)
}

func (d *Device) CreateTexture(name string, width, height uint32, pixels []uint8) (renderer.Texture, error) {
	if name == "" {
		name = renderer.GeneratedName("texture")
	}
	return newTexture(name, width, height, pixels)
}

func (d *Device) CreateVertexArray(vertices []float32, layout renderer.BufferLayout, indices []uint32) (renderer.VertexArray, error) {
	return newVertexArray(vertices, layout, indices)
}

func (d *Device) SetViewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) SetClearColor(colour math.Vec4) {
	gl.ClearColor(colour.X, colour.Y, colour.Z, colour.W)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) SetDepthTest(enabled bool) {
	toggle(gl.DEPTH_TEST, enabled)
}

func (d *Device) SetBlending(enabled bool) {
	toggle(gl.BLEND, enabled)
}

func (d *Device) DrawIndexed(va renderer.VertexArray) {
	va.Bind()
	gl.DrawElements(gl.TRIANGLES, va.IndexCount(), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (d *Device) Shutdown() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: pending error 0x%x at shutdown", code)
	}
	return nil
}

func toggle(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
