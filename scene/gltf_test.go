package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func writeTriangleGLTF(t *testing.T) string {
	t.Helper()
	doc := gltf.NewDocument()

	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	norm := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	uv := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})

	doc.Meshes = []*gltf.Mesh{{
		Name: "triangle",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{
				gltf.POSITION:   pos,
				gltf.NORMAL:     norm,
				gltf.TEXCOORD_0: uv,
			},
			Indices: gltf.Index(idx),
		}},
	}}

	path := filepath.Join(t.TempDir(), "triangle.gltf")
	if err := gltf.Save(doc, path); err != nil {
		t.Fatalf("save gltf: %v", err)
	}
	return path
}

func TestLoadGLTFMesh(t *testing.T) {
	path := writeTriangleGLTF(t)

	mesh, err := LoadGLTFMesh(path)
	if err != nil {
		t.Fatalf("LoadGLTFMesh: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Fatalf("vertices: expected 3, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 3 {
		t.Fatalf("indices: expected 3, got %d", len(mesh.Indices))
	}
	if mesh.Vertices[1].Position != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("vertex 1 position: got %v", mesh.Vertices[1].Position)
	}
	if mesh.Vertices[0].Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("vertex 0 normal: got %v", mesh.Vertices[0].Normal)
	}
	if mesh.Vertices[2].UV != (mgl32.Vec2{0, 1}) {
		t.Errorf("vertex 2 UV: got %v", mesh.Vertices[2].UV)
	}
}

func TestLoadGLTFMeshMissingFile(t *testing.T) {
	if _, err := LoadGLTFMesh(filepath.Join(t.TempDir(), "nope.gltf")); err == nil {
		t.Error("expected error for missing file")
	}
}
