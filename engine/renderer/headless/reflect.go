package headless

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spaghettifunk/prism/engine/renderer"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)\s*(\[\s*\d*\s*\])?\s*;`)

var glslTypes = map[string]renderer.ShaderDataType{
	"float":     renderer.ShaderDataTypeFloat,
	"vec2":      renderer.ShaderDataTypeFloat2,
	"vec3":      renderer.ShaderDataTypeFloat3,
	"vec4":      renderer.ShaderDataTypeFloat4,
	"mat3":      renderer.ShaderDataTypeMat3,
	"mat4":      renderer.ShaderDataTypeMat4,
	"int":       renderer.ShaderDataTypeInt,
	"ivec2":     renderer.ShaderDataTypeInt2,
	"ivec3":     renderer.ShaderDataTypeInt3,
	"ivec4":     renderer.ShaderDataTypeInt4,
	"bool":      renderer.ShaderDataTypeBool,
	"sampler2D": renderer.ShaderDataTypeSampler2D,
}

// ParseUniforms collects the plain `uniform <type> <name>;` declarations of
// a GLSL source. Arrays and uniform blocks are not supported.
func ParseUniforms(source string) (map[string]renderer.ShaderDataType, error) {
	out := make(map[string]renderer.ShaderDataType)
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		if strings.TrimSpace(m[3]) != "" {
			return nil, fmt.Errorf("uniform array %q is not supported", m[2])
		}
		t, ok := glslTypes[m[1]]
		if !ok {
			return nil, fmt.Errorf("uniform %q has unsupported type %q", m[2], m[1])
		}
		if prev, seen := out[m[2]]; seen && prev != t {
			return nil, fmt.Errorf("uniform %q declared as both %s and %s", m[2], prev, t)
		}
		out[m[2]] = t
	}
	return out, nil
}
