package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoMaterials       = errors.New("no materials defined")
	ErrUnknownMaterial   = errors.New("no material defined under tag")
	ErrDuplicateMaterial = errors.New("material tag already defined")
)

// Material describes Phong surface appearance for a draw call.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// MaterialRegistry is an ordered list of named materials, populated once
// during scene setup and immutable afterward.
type MaterialRegistry struct {
	materials []Material
	index     map[string]int
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{index: make(map[string]int)}
}

// Define appends a material record under tag.
func (r *MaterialRegistry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) error {
	if _, ok := r.index[tag]; ok {
		return fmt.Errorf("define %q: %w", tag, ErrDuplicateMaterial)
	}
	r.index[tag] = len(r.materials)
	r.materials = append(r.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
	return nil
}

// Find returns a copy of the material registered under tag. An empty
// registry and an unmatched tag are reported as distinct errors.
func (r *MaterialRegistry) Find(tag string) (Material, error) {
	if len(r.materials) == 0 {
		return Material{}, fmt.Errorf("find %q: %w", tag, ErrNoMaterials)
	}
	i, ok := r.index[tag]
	if !ok {
		return Material{}, fmt.Errorf("find %q: %w", tag, ErrUnknownMaterial)
	}
	return r.materials[i], nil
}

// Len reports the number of defined materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
