package gfx_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glquad/pkg/gfx"
)

const combined = `#shader vertex
#version 330 core
void main() { gl_Position = vec4(0.0); }

#shader fragment
#version 330 core
void main() {}
`

func TestParseShaderSource_SplitsSections(t *testing.T) {
	src := gfx.ParseShaderSource(strings.NewReader(combined))

	assert.Equal(t, "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n\n", src.Vertex)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", src.Fragment)
}

func TestParseShaderSource_MarkerLinesExcluded(t *testing.T) {
	src := gfx.ParseShaderSource(strings.NewReader(combined))

	assert.NotContains(t, src.Vertex, "#shader")
	assert.NotContains(t, src.Fragment, "#shader")
}

func TestParseShaderSource_FragmentFirst(t *testing.T) {
	input := "#shader fragment\nfrag line\n#shader vertex\nvert line\n"

	src := gfx.ParseShaderSource(strings.NewReader(input))

	assert.Equal(t, "vert line\n", src.Vertex)
	assert.Equal(t, "frag line\n", src.Fragment)
}

func TestParseShaderSource_NoMarkers(t *testing.T) {
	src := gfx.ParseShaderSource(strings.NewReader("void main() {}\n"))

	assert.Empty(t, src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParseShaderSource_LinesBeforeFirstMarkerDropped(t *testing.T) {
	input := "orphan line\n#shader vertex\nvert line\n"

	src := gfx.ParseShaderSource(strings.NewReader(input))

	assert.Equal(t, "vert line\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParseShaderSource_BothKeywordsOnMarkerPicksVertex(t *testing.T) {
	input := "#shader vertex fragment\nline\n"

	src := gfx.ParseShaderSource(strings.NewReader(input))

	assert.Equal(t, "line\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParseShaderSource_MarkerWithoutKeywordKeepsTarget(t *testing.T) {
	input := "#shader vertex\nfirst\n#shader\nsecond\n"

	src := gfx.ParseShaderSource(strings.NewReader(input))

	assert.Equal(t, "first\nsecond\n", src.Vertex)
}

func TestLoadShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte(combined), 0o644))

	src, err := gfx.LoadShaderFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, src.Vertex)
	assert.NotEmpty(t, src.Fragment)
}

func TestLoadShaderFile_MissingFile(t *testing.T) {
	_, err := gfx.LoadShaderFile(filepath.Join(t.TempDir(), "absent.shader"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
