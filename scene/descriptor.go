package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

// TextureRef names an image file and the tag it is registered under.
type TextureRef struct {
	Path string
	Tag  string
}

// ObjectDesc describes one drawable object: which primitive mesh to draw and
// the full shader state set before the draw call. Rotation angles are Euler
// degrees applied X, then Y, then Z.
type ObjectDesc struct {
	Name        string
	Shape       Shape
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3

	Color       core.Color
	TextureTag  string // empty = untextured, flat color only
	MaterialTag string // empty = leave material state unchanged
	UVScale     mgl32.Vec2
}

// Def is a complete data-driven scene description: the assets to load, the
// lighting rig, and the ordered object list to draw each frame.
type Def struct {
	Name      string
	Textures  []TextureRef
	Materials []Material
	Lights    LightRig
	Objects   []ObjectDesc
}

// Shapes returns the distinct primitive shapes referenced by the object
// list, in first-use order.
func (d *Def) Shapes() []Shape {
	seen := make(map[Shape]bool)
	var shapes []Shape
	for _, obj := range d.Objects {
		if !seen[obj.Shape] {
			seen[obj.Shape] = true
			shapes = append(shapes, obj.Shape)
		}
	}
	return shapes
}

// Validate checks referential integrity: every texture and material tag an
// object references must be declared by the definition.
func (d *Def) Validate() error {
	textures := make(map[string]bool, len(d.Textures))
	for _, t := range d.Textures {
		textures[t.Tag] = true
	}
	materials := make(map[string]bool, len(d.Materials))
	for _, m := range d.Materials {
		materials[m.Tag] = true
	}

	for _, obj := range d.Objects {
		if obj.TextureTag != "" && !textures[obj.TextureTag] {
			return fmt.Errorf("object %q references undeclared texture %q", obj.Name, obj.TextureTag)
		}
		if obj.MaterialTag != "" && !materials[obj.MaterialTag] {
			return fmt.Errorf("object %q references undeclared material %q", obj.Name, obj.MaterialTag)
		}
	}
	return nil
}
