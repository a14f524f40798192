package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func checkNormalsUnit(t *testing.T, m *Mesh) {
	t.Helper()
	for i, v := range m.Vertices {
		l := v.Normal.Len()
		if math.Abs(float64(l-1)) > 0.001 {
			t.Fatalf("%s vertex %d: normal length %v, expected 1", m.Name, i, l)
		}
	}
}

func checkIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("%s: index count %d not a multiple of 3", m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("%s index %d: %d out of range (%d vertices)", m.Name, i, idx, len(m.Vertices))
		}
	}
}

func TestCreatePlane(t *testing.T) {
	m := CreatePlane(2, 2, 1)
	if len(m.Vertices) != 4 {
		t.Errorf("vertices: expected 4, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 6 {
		t.Errorf("indices: expected 6, got %d", len(m.Indices))
	}
	for _, v := range m.Vertices {
		if v.Position.Y() != 0 {
			t.Errorf("plane vertex off XZ plane: %v", v.Position)
		}
		if v.Normal != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("plane normal: expected +Y, got %v", v.Normal)
		}
	}
	checkIndicesInRange(t, m)
}

func TestCreateBox(t *testing.T) {
	m := CreateBox(2, 4, 6)
	if len(m.Vertices) != 24 {
		t.Errorf("vertices: expected 24, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("indices: expected 36, got %d", len(m.Indices))
	}
	for _, v := range m.Vertices {
		p := v.Position
		if abs32(p.X()) > 1 || abs32(p.Y()) > 2 || abs32(p.Z()) > 3 {
			t.Errorf("vertex outside half-extents: %v", p)
		}
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateSphere(t *testing.T) {
	m := CreateSphere(2, 16, 8)
	for i, v := range m.Vertices {
		r := v.Position.Len()
		if math.Abs(float64(r-2)) > 0.001 {
			t.Fatalf("vertex %d: radius %v, expected 2", i, r)
		}
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateCylinderExtent(t *testing.T) {
	m := CreateCylinder(1, 3, 16)
	minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range m.Vertices {
		if v.Position.Y() < minY {
			minY = v.Position.Y()
		}
		if v.Position.Y() > maxY {
			maxY = v.Position.Y()
		}
	}
	// Base on the XZ plane, extending +Y to height.
	if minY != 0 {
		t.Errorf("minY: expected 0, got %v", minY)
	}
	if maxY != 3 {
		t.Errorf("maxY: expected 3, got %v", maxY)
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateTaperedCylinderRadii(t *testing.T) {
	m := CreateTaperedCylinder(2, 1, 1, 16)
	for _, v := range m.Vertices {
		r := mgl32.Vec2{v.Position.X(), v.Position.Z()}.Len()
		switch v.Position.Y() {
		case 0:
			if r > 2.001 {
				t.Errorf("bottom vertex radius %v exceeds 2", r)
			}
		case 1:
			if r > 1.001 {
				t.Errorf("top vertex radius %v exceeds 1", r)
			}
		}
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateConeTip(t *testing.T) {
	m := CreateCone(1, 2, 16)
	foundTip := false
	for _, v := range m.Vertices {
		if v.Position == (mgl32.Vec3{0, 2, 0}) {
			foundTip = true
		}
		if v.Position.Y() < 0 || v.Position.Y() > 2 {
			t.Errorf("vertex outside height range: %v", v.Position)
		}
	}
	if !foundTip {
		t.Error("no tip vertex at (0, height, 0)")
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateTorusRadii(t *testing.T) {
	ring, tube := float32(1), float32(0.25)
	m := CreateTorus(ring, tube, 16, 8)
	for i, v := range m.Vertices {
		// Distance from the tube's center circle must equal the tube radius.
		d := mgl32.Vec2{v.Position.X(), v.Position.Z()}.Len() - ring
		r := float32(math.Sqrt(float64(d*d + v.Position.Y()*v.Position.Y())))
		if math.Abs(float64(r-tube)) > 0.001 {
			t.Fatalf("vertex %d: tube distance %v, expected %v", i, r, tube)
		}
	}
	checkNormalsUnit(t, m)
	checkIndicesInRange(t, m)
}

func TestCreateShapeMeshAll(t *testing.T) {
	shapes := []Shape{
		ShapePlane, ShapeBox, ShapeCylinder, ShapeCone,
		ShapeTaperedCylinder, ShapeSphere, ShapeTorus,
	}
	for _, shape := range shapes {
		m, err := CreateShapeMesh(shape)
		if err != nil {
			t.Fatalf("CreateShapeMesh(%v): %v", shape, err)
		}
		if len(m.Vertices) == 0 || len(m.Indices) == 0 {
			t.Errorf("%v: empty mesh", shape)
		}
		checkIndicesInRange(t, m)
	}

	if _, err := CreateShapeMesh(Shape(99)); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestParseShapeRoundTrip(t *testing.T) {
	for s, name := range shapeNames {
		parsed, err := ParseShape(name)
		if err != nil {
			t.Fatalf("ParseShape(%q): %v", name, err)
		}
		if parsed != s {
			t.Errorf("ParseShape(%q): expected %v, got %v", name, s, parsed)
		}
	}
	if _, err := ParseShape("dodecahedron"); err == nil {
		t.Error("expected error for unknown shape name")
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
