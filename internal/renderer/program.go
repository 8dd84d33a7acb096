package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"glquad/pkg/gfx"
)

type program struct {
	handle uint32
}

// newProgram compiles both stages and links them. A compile failure on
// either stage stops the build before link; the error carries the stage
// name and the driver's info log.
func newProgram(src gfx.ShaderSource) (program, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return program{}, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return program{}, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertexShader)
	gl.AttachShader(handle, fragmentShader)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(handle)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		gl.DeleteProgram(handle)
		return program{}, fmt.Errorf("link error: %s", log)
	}
	gl.ValidateProgram(handle)

	// Link keeps the compiled code; the stage objects are no longer needed.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program{handle: handle}, nil
}

func (p *program) use() {
	gl.UseProgram(p.handle)
}

func (p *program) release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
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
		return 0, fmt.Errorf("compile error: %s", log)
	}
	return shader, nil
}

func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
	return log
}
