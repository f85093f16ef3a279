package graphics

import (
	"drone-viewer/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DynamicMesh is a VAO/VBO pair re-filled every frame with a batch's triangles
type DynamicMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	scratch     []float32
}

// NewDynamicMesh allocates the GL objects with the pos/normal/color layout
func NewDynamicMesh() *DynamicMesh {
	m := &DynamicMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Upload replaces the buffer contents with the batch's triangles
func (m *DynamicMesh) Upload(b *meshing.Batch) {
	m.scratch = b.AppendFloats(m.scratch[:0])
	m.vertexCount = int32(b.VertexCount())

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	size := len(m.scratch) * 4
	// Orphan before refilling to avoid stalling on the previous frame's draw
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
	if size > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(m.scratch))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues the triangles uploaded last
func (m *DynamicMesh) Draw() {
	if m.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// VertexCount is the number of vertices drawn by Draw
func (m *DynamicMesh) VertexCount() int32 {
	return m.vertexCount
}

// Dispose cleans up OpenGL resources
func (m *DynamicMesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
