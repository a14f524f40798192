package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMaterialRegistryFind(t *testing.T) {
	reg := NewMaterialRegistry()
	err := reg.Define("wood", mgl32.Vec3{0.6, 0.4, 0.3}, mgl32.Vec3{0.3, 0.3, 0.3}, 32)
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	mat, err := reg.Find("wood")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if mat.Tag != "wood" {
		t.Errorf("Tag: expected wood, got %q", mat.Tag)
	}
	if mat.Diffuse != (mgl32.Vec3{0.6, 0.4, 0.3}) {
		t.Errorf("Diffuse: got %v", mat.Diffuse)
	}
	if mat.Shininess != 32 {
		t.Errorf("Shininess: expected 32, got %v", mat.Shininess)
	}
}

func TestMaterialRegistryEmptyVsUnknown(t *testing.T) {
	reg := NewMaterialRegistry()

	// An empty registry and an unmatched tag are different failures.
	if _, err := reg.Find("wood"); !errors.Is(err, ErrNoMaterials) {
		t.Errorf("empty registry: expected ErrNoMaterials, got %v", err)
	}

	if err := reg.Define("metal", mgl32.Vec3{0.7, 0.7, 0.7}, mgl32.Vec3{0.9, 0.9, 0.9}, 64); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if _, err := reg.Find("wood"); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("unmatched tag: expected ErrUnknownMaterial, got %v", err)
	}
}

func TestMaterialRegistryDuplicate(t *testing.T) {
	reg := NewMaterialRegistry()
	if err := reg.Define("glossy", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 128); err != nil {
		t.Fatalf("Define: %v", err)
	}
	err := reg.Define("glossy", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}, 1)
	if !errors.Is(err, ErrDuplicateMaterial) {
		t.Errorf("expected ErrDuplicateMaterial, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len: expected 1, got %d", reg.Len())
	}

	// First definition stays intact.
	mat, err := reg.Find("glossy")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if mat.Shininess != 128 {
		t.Errorf("Shininess: expected 128, got %v", mat.Shininess)
	}
}
