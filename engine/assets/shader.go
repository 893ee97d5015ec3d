package assets

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spaghettifunk/prism/engine/renderer"
)

const regionDirective = "#region"

// SplitShaderSource separates a combined shader file into its stages.
// Stages start with "#region Vertex" or "#region Fragment"; "#endregion"
// lines are dropped. Only blank lines may precede the first region.
func SplitShaderSource(source string) (vertex, fragment string, err error) {
	var stages [2]strings.Builder
	var seen [2]bool
	current := -1

	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "#endregion"):
			continue
		case strings.HasPrefix(trimmed, regionDirective):
			switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, regionDirective))) {
			case "vertex":
				current = 0
			case "fragment":
				current = 1
			default:
				return "", "", fmt.Errorf("line %d: unknown shader region %q", lineNo, trimmed)
			}
			if seen[current] {
				return "", "", fmt.Errorf("line %d: region %q declared twice", lineNo, trimmed)
			}
			seen[current] = true
			continue
		}

		if current < 0 {
			if trimmed != "" {
				return "", "", fmt.Errorf("line %d: source outside of a region", lineNo)
			}
			continue
		}
		stages[current].WriteString(line)
		stages[current].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", "", err
	}
	if !seen[0] || !seen[1] {
		return "", "", fmt.Errorf("shader needs both a Vertex and a Fragment region")
	}
	return stages[0].String(), stages[1].String(), nil
}

// LoadShader reads a combined shader file and compiles it on device. The
// shader is named after the file.
func LoadShader(device renderer.Device, path string) (renderer.Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vertex, fragment, err := SplitShaderSource(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return device.CreateShader(assetName(path), vertex, fragment)
}
