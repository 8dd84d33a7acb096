package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"glquad/pkg/gfx"
)

type renderer struct {
	program program
	quad    mesh
}

// New initializes the GL driver in the current context, compiles and links
// the shader pair, and uploads the mesh. Any failure aborts construction;
// nothing is drawn with a partially built program.
func New(src gfx.ShaderSource, data MeshData) (gfx.Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	slog.Info("driver initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("mesh data: %w", err)
	}

	prog, err := newProgram(src)
	if err != nil {
		return nil, err
	}

	return &renderer{
		program: prog,
		quad:    newMesh(data),
	}, nil
}

func (r *renderer) Render(_ *gfx.Window) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.use()
	r.quad.draw()
}

func (r *renderer) Close() {
	r.quad.release()
	r.program.release()
}
