package gfx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ShaderSource holds the two stages of a shader program, split out of a
// combined source file. Produced once at startup and never mutated.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

const shaderMarker = "#shader"

// ParseShaderSource splits a combined shader stream into its vertex and
// fragment stages. A line containing "#shader" selects the stage that the
// following lines belong to, based on whether the same line mentions
// "vertex" or "fragment" (vertex checked first if both appear). Marker
// lines are not copied into either stage, and lines before the first
// marker are dropped.
func ParseShaderSource(r io.Reader) ShaderSource {
	var vertex, fragment strings.Builder
	var target *strings.Builder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, shaderMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				target = &vertex
			case strings.Contains(line, "fragment"):
				target = &fragment
			}
			continue
		}
		if target == nil {
			continue
		}
		target.WriteString(line)
		target.WriteByte('\n')
	}

	return ShaderSource{Vertex: vertex.String(), Fragment: fragment.String()}
}

// LoadShaderFile reads and splits the combined shader file at path.
func LoadShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	defer f.Close()
	return ParseShaderSource(f), nil
}
