package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

var (
	vecUp   = mgl32.Vec3{0, 1, 0}
	vecDown = mgl32.Vec3{0, -1, 0}
)

// CreatePlane generates a flat plane mesh on the XZ plane, centered at the
// origin, facing +Y.
func CreatePlane(width, depth float32, subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:   vecUp,
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return CreateMeshFromData("Plane", vertices, indices)
}

// CreateBox generates an axis-aligned box mesh centered at the origin.
func CreateBox(width, height, depth float32) *Mesh {
	x := width / 2
	y := height / 2
	z := depth / 2

	vertices := []core.Vertex{
		// Front face
		{Position: mgl32.Vec3{-x, -y, z}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{x, -y, z}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{x, y, z}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-x, y, z}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},
		// Back face
		{Position: mgl32.Vec3{-x, -y, -z}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{x, -y, -z}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{x, y, -z}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{-x, y, -z}, Normal: mgl32.Vec3{0, 0, -1}, UV: mgl32.Vec2{1, 1}},
		// Top face
		{Position: mgl32.Vec3{-x, y, -z}, Normal: vecUp, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{x, y, -z}, Normal: vecUp, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{x, y, z}, Normal: vecUp, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-x, y, z}, Normal: vecUp, UV: mgl32.Vec2{0, 1}},
		// Bottom face
		{Position: mgl32.Vec3{-x, -y, -z}, Normal: vecDown, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{x, -y, -z}, Normal: vecDown, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{x, -y, z}, Normal: vecDown, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{-x, -y, z}, Normal: vecDown, UV: mgl32.Vec2{0, 0}},
		// Right face
		{Position: mgl32.Vec3{x, -y, -z}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{x, -y, z}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{x, y, z}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{x, y, -z}, Normal: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 1}},
		// Left face
		{Position: mgl32.Vec3{-x, -y, -z}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{-x, -y, z}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{-x, y, z}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{-x, y, -z}, Normal: mgl32.Vec3{-1, 0, 0}, UV: mgl32.Vec2{1, 1}},
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Box", vertices, indices)
}

// CreateSphere generates a UV-sphere mesh centered at the origin.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateCylinder generates a capped cylinder with its base on the XZ plane,
// extending +Y to height.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	m := CreateTaperedCylinder(radius, radius, height, segments)
	m.Name = "Cylinder"
	return m
}

// CreateTaperedCylinder generates a capped conical frustum with its base on
// the XZ plane, extending +Y to height. Bottom and top radii may differ.
func CreateTaperedCylinder(bottomRadius, topRadius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	// Lateral normal for a linearly tapering radius: the Y component is the
	// radius change per unit height.
	slopeY := (bottomRadius - topRadius) / height

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{cosT, slopeY, sinT}.Normalize()
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * bottomRadius, 0, sinT * bottomRadius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * topRadius, height, sinT * topRadius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 1},
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendCap(&vertices, &indices, topRadius, height, vecUp, segments)
	appendCap(&vertices, &indices, bottomRadius, 0, vecDown, segments)

	return CreateMeshFromData("TaperedCylinder", vertices, indices)
}

// CreateCone generates a cone with its base on the XZ plane and tip at
// (0, height, 0).
func CreateCone(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	tipIdx := uint32(0)
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, height, 0},
		Normal:   vecUp,
		UV:       mgl32.Vec2{0.5, 1},
	})

	slopeY := radius / height
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{cosT, slopeY, sinT}.Normalize()

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, 0, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{float32(i) / float32(segments), 0},
		})
	}

	for i := 0; i < segments; i++ {
		indices = append(indices, tipIdx, uint32(i+2), uint32(i+1))
	}

	appendCap(&vertices, &indices, radius, 0, vecDown, segments)

	return CreateMeshFromData("Cone", vertices, indices)
}

// CreateTorus generates a torus centered at the origin, lying in the XZ
// plane. ringRadius is the distance from the center to the tube center.
func CreateTorus(ringRadius, tubeRadius float32, ringSegments, tubeSegments int) *Mesh {
	if ringSegments < 3 {
		ringSegments = 3
	}
	if tubeSegments < 3 {
		tubeSegments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= ringSegments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(ringSegments)
		cosTheta := float32(stdmath.Cos(theta))
		sinTheta := float32(stdmath.Sin(theta))

		for j := 0; j <= tubeSegments; j++ {
			phi := float64(j) * 2.0 * stdmath.Pi / float64(tubeSegments)
			cosPhi := float32(stdmath.Cos(phi))
			sinPhi := float32(stdmath.Sin(phi))

			pos := mgl32.Vec3{
				(ringRadius + tubeRadius*cosPhi) * cosTheta,
				tubeRadius * sinPhi,
				(ringRadius + tubeRadius*cosPhi) * sinTheta,
			}
			normal := mgl32.Vec3{cosPhi * cosTheta, sinPhi, cosPhi * sinTheta}.Normalize()

			vertices = append(vertices, core.Vertex{
				Position: pos,
				Normal:   normal,
				UV:       mgl32.Vec2{float32(i) / float32(ringSegments), float32(j) / float32(tubeSegments)},
			})
		}
	}

	for i := 0; i < ringSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			current := uint32(i*(tubeSegments+1) + j)
			next := uint32((i+1)*(tubeSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Torus", vertices, indices)
}

// appendCap adds a triangle-fan disc of the given radius at height y, facing
// along normal (vecUp for a top cap, vecDown for a bottom cap).
func appendCap(vertices *[]core.Vertex, indices *[]uint32, radius, y float32, normal mgl32.Vec3, segments int) {
	if radius <= 0 {
		return
	}

	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		UV:       mgl32.Vec2{0.5, 0.5},
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		cosN := float32(stdmath.Cos(nextTheta))
		sinN := float32(stdmath.Sin(nextTheta))

		v1 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, y, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
		})
		v2 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: mgl32.Vec3{cosN * radius, y, sinN * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5},
		})

		if normal.Y() > 0 {
			*indices = append(*indices, center, v1, v2)
		} else {
			*indices = append(*indices, center, v2, v1)
		}
	}
}
