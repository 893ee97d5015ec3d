package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/renderer"
)

type uniform struct {
	location int32
	dataType renderer.ShaderDataType
}

type Shader struct {
	name     string
	program  uint32
	uniforms map[string]uniform
}

func newShader(name, vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("shader %q vertex stage: %w", name, err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shader %q fragment stage: %w", name, err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader %q link error: %s", name, strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	s := &Shader{name: name, program: program, uniforms: activeUniforms(program)}
	core.LogDebug("shader %q linked with %d active uniforms", name, len(s.uniforms))
	return s, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// activeUniforms asks the linked program for every uniform the compiler kept.
// Uniforms optimised away are absent and read as unknown.
func activeUniforms(program uint32) map[string]uniform {
	var count, maxLength int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)

	out := make(map[string]uniform, count)
	buf := make([]uint8, maxLength+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		dataType, ok := dataTypeFromGL(xtype)
		if !ok {
			core.LogWarn("uniform %q has unsupported GL type 0x%x, ignoring", name, xtype)
			continue
		}
		out[name] = uniform{
			location: gl.GetUniformLocation(program, gl.Str(name+"\x00")),
			dataType: dataType,
		}
	}
	return out
}

func dataTypeFromGL(xtype uint32) (renderer.ShaderDataType, bool) {
	switch xtype {
	case gl.FLOAT:
		return renderer.ShaderDataTypeFloat, true
	case gl.FLOAT_VEC2:
		return renderer.ShaderDataTypeFloat2, true
	case gl.FLOAT_VEC3:
		return renderer.ShaderDataTypeFloat3, true
	case gl.FLOAT_VEC4:
		return renderer.ShaderDataTypeFloat4, true
	case gl.FLOAT_MAT3:
		return renderer.ShaderDataTypeMat3, true
	case gl.FLOAT_MAT4:
		return renderer.ShaderDataTypeMat4, true
	case gl.INT:
		return renderer.ShaderDataTypeInt, true
	case gl.INT_VEC2:
		return renderer.ShaderDataTypeInt2, true
	case gl.INT_VEC3:
		return renderer.ShaderDataTypeInt3, true
	case gl.INT_VEC4:
		return renderer.ShaderDataTypeInt4, true
	case gl.BOOL:
		return renderer.ShaderDataTypeBool, true
	case gl.SAMPLER_2D:
		return renderer.ShaderDataTypeSampler2D, true
	}
	return renderer.ShaderDataTypeNone, false
}

func (s *Shader) Name() string {
	return s.name
}

func (s *Shader) Bind() {
	gl.UseProgram(s.program)
}

// UploadUniform writes to the program in use; the shader must be bound.
func (s *Shader) UploadUniform(name string, value renderer.UniformValue) error {
	u, ok := s.uniforms[name]
	if !ok {
		return fmt.Errorf("%w: %q", renderer.ErrUnknownUniform, name)
	}
	if !u.dataType.Accepts(value.DataType()) {
		return fmt.Errorf("%w: %q is %s, got %s", renderer.ErrUniformTypeMismatch, name, u.dataType, value.DataType())
	}
	owned, err := renderer.Snapshot(value)
	if err != nil {
		return fmt.Errorf("uniform %q: %w", name, err)
	}
	switch v := owned.(type) {
	case renderer.Float:
		gl.Uniform1f(u.location, float32(v))
	case renderer.Float2:
		gl.Uniform2f(u.location, v.X, v.Y)
	case renderer.Float3:
		gl.Uniform3f(u.location, v.X, v.Y, v.Z)
	case renderer.Float4:
		gl.Uniform4f(u.location, v.X, v.Y, v.Z, v.W)
	case renderer.Mat3:
		gl.UniformMatrix3fv(u.location, 1, false, &v.Data[0])
	case renderer.Mat4:
		gl.UniformMatrix4fv(u.location, 1, false, &v.Data[0])
	case renderer.Int:
		gl.Uniform1i(u.location, int32(v))
	default:
		return fmt.Errorf("%w: %q cannot take a %T", renderer.ErrUniformTypeMismatch, name, value)
	}
	return nil
}

func (s *Shader) Destroy() {
	gl.DeleteProgram(s.program)
	s.program = 0
}
