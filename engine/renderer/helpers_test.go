package renderer_test

import (
	"testing"

	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/headless"
)

const testVertexSource = `#version 330 core
layout(location = 0) in vec3 a_vertexPosition;
layout(location = 1) in vec2 a_texCoord;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;
uniform vec4 u_texCoords;

void main() {
	gl_Position = u_projection * u_view * u_model * vec4(a_vertexPosition, 1.0);
}
`

const testFragmentSource = `#version 330 core
uniform vec4 u_tint;
uniform sampler2D u_texData;
uniform vec3 u_lightPos;

out vec4 colour;

void main() {
	colour = u_tint;
}
`

func newTestShader(t *testing.T, device *headless.Device, name string) renderer.Shader {
	t.Helper()
	shader, err := device.CreateShader(name, testVertexSource, testFragmentSource)
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}
	return shader
}

func newTestTexture(t *testing.T, device *headless.Device, name string, width, height uint32) renderer.Texture {
	t.Helper()
	texture, err := device.CreateTexture(name, width, height, make([]uint8, width*height*4))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return texture
}

func newTestCube(t *testing.T, device *headless.Device) renderer.VertexArray {
	t.Helper()
	vertices := make([]renderer.Vertex3D, 8)
	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		0, 4, 7, 7, 3, 0,
		1, 5, 6, 6, 2, 1,
		3, 2, 6, 6, 7, 3,
		0, 1, 5, 5, 4, 0,
	}
	va, err := renderer.UploadMesh(device, vertices, indices)
	if err != nil {
		t.Fatalf("UploadMesh: %v", err)
	}
	return va
}
