package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"desk-scene/core"
	"desk-scene/scene"
)

// MeshBuffers holds the OpenGL buffer objects for an uploaded mesh.
type MeshBuffers struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// ShapeMeshes generates, uploads, and draws the primitive shape meshes.
// It satisfies render.MeshProvider.
type ShapeMeshes struct {
	buffers map[scene.Shape]*MeshBuffers
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{buffers: make(map[scene.Shape]*MeshBuffers)}
}

// LoadMesh generates the unit mesh for shape and uploads it. Loading an
// already-loaded shape is a no-op.
func (s *ShapeMeshes) LoadMesh(shape scene.Shape) error {
	if _, ok := s.buffers[shape]; ok {
		return nil
	}
	mesh, err := scene.CreateShapeMesh(shape)
	if err != nil {
		return err
	}
	buf, err := UploadMesh(mesh)
	if err != nil {
		return fmt.Errorf("upload %v: %w", shape, err)
	}
	s.buffers[shape] = buf
	return nil
}

// DrawMesh issues the draw call for a previously loaded shape.
func (s *ShapeMeshes) DrawMesh(shape scene.Shape) error {
	buf, ok := s.buffers[shape]
	if !ok {
		return fmt.Errorf("draw %v: mesh not loaded", shape)
	}
	DrawBuffers(buf)
	return nil
}

// Destroy frees all uploaded shape buffers.
func (s *ShapeMeshes) Destroy() {
	for shape, buf := range s.buffers {
		ReleaseBuffers(buf)
		delete(s.buffers, shape)
	}
}

// UploadMesh creates a VAO/VBO/EBO for the mesh and uploads its data.
func UploadMesh(mesh *scene.Mesh) (*MeshBuffers, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("mesh %q is empty", mesh.Name)
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	buf := &MeshBuffers{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &buf.VAO)
	gl.GenBuffers(1, &buf.VBO)
	gl.BindVertexArray(buf.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	// location 0: Position (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	// location 1: Normal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	// location 2: UV (vec2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &buf.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return buf, nil
}

// DrawBuffers draws an uploaded mesh as indexed triangles.
func DrawBuffers(buf *MeshBuffers) {
	gl.BindVertexArray(buf.VAO)
	gl.DrawElements(gl.TRIANGLES, buf.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReleaseBuffers frees the GPU buffers for an uploaded mesh.
func ReleaseBuffers(buf *MeshBuffers) {
	if buf == nil {
		return
	}
	gl.DeleteVertexArrays(1, &buf.VAO)
	gl.DeleteBuffers(1, &buf.VBO)
	gl.DeleteBuffers(1, &buf.EBO)
	buf.VAO, buf.VBO, buf.EBO = 0, 0, 0
}
