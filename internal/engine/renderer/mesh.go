package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/scrollscene/internal/scene"
)

// gpuMesh is a geometry uploaded once and drawn every frame.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

var vertexSize = int32(unsafe.Sizeof(scene.Vertex{}))

func uploadGeometry(g *scene.Geometry) *gpuMesh {
	m := &gpuMesh{indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(vertexSize), unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	// Position (0), normal (1), uv (2)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 12)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
}

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// gpuPoints is the particle position buffer.
type gpuPoints struct {
	vao, vbo uint32
	count    int32
}

func uploadPoints(p *scene.Points) *gpuPoints {
	g := &gpuPoints{count: int32(p.Count())}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if g.count > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(p.Positions)*4, unsafe.Pointer(&p.Positions[0]), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return g
}

func (g *gpuPoints) draw() {
	if g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.POINTS, 0, g.count)
}

func (g *gpuPoints) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
}
