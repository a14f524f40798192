package scene

import (
	"fmt"

	"desk-scene/core"
)

// Shape identifies one of the primitive meshes the scene layer can draw.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeCone
	ShapeTaperedCylinder
	ShapeSphere
	ShapeTorus
)

var shapeNames = map[Shape]string{
	ShapePlane:           "plane",
	ShapeBox:             "box",
	ShapeCylinder:        "cylinder",
	ShapeCone:            "cone",
	ShapeTaperedCylinder: "tapered_cylinder",
	ShapeSphere:          "sphere",
	ShapeTorus:           "torus",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape maps a shape name (as used in scene files) back to its Shape.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// CreateShapeMesh generates the unit-sized mesh for a primitive shape.
// Conventions: plane and box are centered at the origin; cylinder, cone, and
// tapered cylinder have radius 1, height 1, base on the XZ plane extending
// +Y; the sphere has radius 1; the torus has ring radius 1, tube radius 0.25.
func CreateShapeMesh(shape Shape) (*Mesh, error) {
	switch shape {
	case ShapePlane:
		return CreatePlane(2, 2, 1), nil
	case ShapeBox:
		return CreateBox(1, 1, 1), nil
	case ShapeCylinder:
		return CreateCylinder(1, 1, 32), nil
	case ShapeCone:
		return CreateCone(1, 1, 32), nil
	case ShapeTaperedCylinder:
		return CreateTaperedCylinder(1, 0.5, 1, 32), nil
	case ShapeSphere:
		return CreateSphere(1, 32, 16), nil
	case ShapeTorus:
		return CreateTorus(1, 0.25, 32, 16), nil
	default:
		return nil, fmt.Errorf("create mesh: unknown shape %v", shape)
	}
}
