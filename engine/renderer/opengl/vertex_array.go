package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/prism/engine/renderer"
)

type VertexArray struct {
	vao, vbo, ibo uint32
	layout        renderer.BufferLayout
	indexCount    int32
}

func newVertexArray(vertices []float32, layout renderer.BufferLayout, indices []uint32) (*VertexArray, error) {
	stride := layout.FloatsPerVertex()
	if stride == 0 || len(vertices) == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("%w: %d floats do not fit a stride of %d", renderer.ErrInvalidGeometry, len(vertices), stride)
	}
	if err := renderer.ValidateIndices(len(vertices)/stride, indices); err != nil {
		return nil, err
	}

	va := &VertexArray{layout: layout, indexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var attrib uint32
	for _, e := range layout.Elements() {
		switch e.Type {
		case renderer.ShaderDataTypeMat3, renderer.ShaderDataTypeMat4:
			columns := e.Type.ComponentCount()
			columnSize := uint32(columns) * 4
			for c := int32(0); c < columns; c++ {
				gl.EnableVertexAttribArray(attrib)
				gl.VertexAttribPointerWithOffset(attrib, columns, gl.FLOAT, e.Normalized, int32(layout.Stride()), uintptr(e.Offset+uint32(c)*columnSize))
				attrib++
			}
		default:
			gl.EnableVertexAttribArray(attrib)
			if e.Type.IsInteger() {
				gl.VertexAttribIPointerWithOffset(attrib, e.Type.ComponentCount(), gl.INT, int32(layout.Stride()), uintptr(e.Offset))
			} else {
				gl.VertexAttribPointerWithOffset(attrib, e.Type.ComponentCount(), gl.FLOAT, e.Normalized, int32(layout.Stride()), uintptr(e.Offset))
			}
			attrib++
		}
	}

	gl.GenBuffers(1, &va.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return va, nil
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.vao)
}

func (va *VertexArray) Layout() renderer.BufferLayout {
	return va.layout
}

func (va *VertexArray) IndexCount() int32 {
	return va.indexCount
}

func (va *VertexArray) Destroy() {
	gl.DeleteBuffers(1, &va.ibo)
	gl.DeleteBuffers(1, &va.vbo)
	gl.DeleteVertexArrays(1, &va.vao)
}
