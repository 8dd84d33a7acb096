package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// MeshData is an interleaved 2D position array plus a triangle index array,
// uploaded once and read every frame.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (d MeshData) Validate() error {
	if len(d.Vertices) == 0 || len(d.Vertices)%2 != 0 {
		return fmt.Errorf("vertex array must hold pairs of floats, got %d values", len(d.Vertices))
	}
	if len(d.Indices) == 0 || len(d.Indices)%3 != 0 {
		return fmt.Errorf("index array must hold whole triangles, got %d indices", len(d.Indices))
	}
	vertexCount := uint32(len(d.Vertices) / 2)
	for _, idx := range d.Indices {
		if idx >= vertexCount {
			return fmt.Errorf("index %d out of range for %d vertices", idx, vertexCount)
		}
	}
	return nil
}

type mesh struct {
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

// newMesh uploads the vertex and index arrays to static GPU buffers and
// records the layout (one vec2 attribute, tightly packed) in a VAO.
func newMesh(data MeshData) mesh {
	m := mesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	return m
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

func (m *mesh) release() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	m.indexCount = 0
}
