package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

// DeskScene returns the canned desk setup: a wooden desk carrying a monitor
// on a metal stand, a keyboard, a desk lamp, and a coffee mug. Object
// transforms and colors are literal so the composition is reproducible.
func DeskScene() *Def {
	return &Def{
		Name: "desk",
		Textures: []TextureRef{
			{Path: "textures/monitor.jpg", Tag: "monitor"},
			{Path: "textures/screen.jpg", Tag: "screen"},
			{Path: "textures/dark-metal-texture.jpg", Tag: "metal"},
			{Path: "textures/texture-wooden-boards.jpg", Tag: "desk"},
		},
		Materials: []Material{
			// Glossy for the screen and bulb - high shine
			{Tag: "glossy", Diffuse: mgl32.Vec3{1, 1, 1}, Specular: mgl32.Vec3{1, 1, 1}, Shininess: 128},
			// Shiny metal for the stand and lamp hardware
			{Tag: "metal", Diffuse: mgl32.Vec3{0.7, 0.7, 0.7}, Specular: mgl32.Vec3{0.9, 0.9, 0.9}, Shininess: 64},
			// Wood for the desk surface
			{Tag: "wood", Diffuse: mgl32.Vec3{0.6, 0.4, 0.3}, Specular: mgl32.Vec3{0.3, 0.3, 0.3}, Shininess: 32},
			// Matte plastic for keyboard and monitor casing
			{Tag: "matte", Diffuse: mgl32.Vec3{0.5, 0.5, 0.5}, Specular: mgl32.Vec3{0.2, 0.2, 0.2}, Shininess: 16},
			// Ceramic for the mug
			{Tag: "ceramic", Diffuse: mgl32.Vec3{0.9, 0.9, 0.9}, Specular: mgl32.Vec3{0.5, 0.5, 0.5}, Shininess: 48},
			// Fallback
			{Tag: "default", Diffuse: mgl32.Vec3{1, 1, 1}, Specular: mgl32.Vec3{0.5, 0.5, 0.5}, Shininess: 32},
		},
		Lights: deskLights(),
		Objects: []ObjectDesc{
			{
				Name:        "desk",
				Shape:       ShapeBox,
				Scale:       mgl32.Vec3{15, 0.5, 10},
				Position:    mgl32.Vec3{0, -0.25, 0}, // top surface at y=0
				Color:       core.Color{R: 0.91, G: 0.85, B: 0.85, A: 1},
				TextureTag:  "desk",
				MaterialTag: "wood",
				UVScale:     mgl32.Vec2{1.5, 1},
			},
			{
				Name:        "monitor body",
				Shape:       ShapeBox,
				Scale:       mgl32.Vec3{10, 0.15, 4.5},
				RotationDeg: mgl32.Vec3{90, 0, 0},
				Position:    mgl32.Vec3{0, 5, 0},
				Color:       core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
				TextureTag:  "monitor",
				MaterialTag: "matte",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "stand plate",
				Shape:       ShapeCylinder,
				Scale:       mgl32.Vec3{0.5, 0.5, 2.5},
				RotationDeg: mgl32.Vec3{0, 90, 0},
				Position:    mgl32.Vec3{0, 0, 0},
				Color:       core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
				MaterialTag: "metal",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "stand column",
				Shape:       ShapeTaperedCylinder,
				Scale:       mgl32.Vec3{0.2, 5, 1},
				RotationDeg: mgl32.Vec3{0, 90, 0},
				Position:    mgl32.Vec3{0, 0, 0},
				Color:       core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
				TextureTag:  "metal",
				MaterialTag: "metal",
				UVScale:     mgl32.Vec2{1, 2},
			},
			{
				Name:        "screen",
				Shape:       ShapePlane,
				Scale:       mgl32.Vec3{4, 1, 2},
				RotationDeg: mgl32.Vec3{90, 0, 0},
				Position:    mgl32.Vec3{-0.25, 5, 0.5},
				Color:       core.ColorWhite,
				TextureTag:  "screen",
				MaterialTag: "glossy",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "keyboard",
				Shape:       ShapeBox,
				Scale:       mgl32.Vec3{5, 0.15, 1},
				Position:    mgl32.Vec3{0, 0.075, 3},
				Color:       core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
				MaterialTag: "matte",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "lamp base",
				Shape:       ShapeCylinder,
				Scale:       mgl32.Vec3{0.5, 0.3, 0.3},
				Position:    mgl32.Vec3{-5.5, 0.10, 2},
				Color:       core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
				MaterialTag: "metal",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "lamp pole",
				Shape:       ShapeCylinder,
				Scale:       mgl32.Vec3{0.12, 0.12, 2.8},
				RotationDeg: mgl32.Vec3{90, 0, 0},
				Position:    mgl32.Vec3{-5.5, 0.3, 2},
				Color:       core.Color{R: 0.15, G: 0.15, B: 0.15, A: 1},
				MaterialTag: "metal",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "lamp shade",
				Shape:       ShapeCone,
				Scale:       mgl32.Vec3{0.7, 0.9, 0.7},
				RotationDeg: mgl32.Vec3{180, 0, 0}, // cone flipped to open downward
				Position:    mgl32.Vec3{-5.5, 3.1, 2},
				Color:       core.Color{R: 0.9, G: 0.85, B: 0.7, A: 1},
				MaterialTag: "matte",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "lamp bulb",
				Shape:       ShapeSphere,
				Scale:       mgl32.Vec3{0.3, 0.3, 0.3},
				Position:    mgl32.Vec3{-5.5, 2.7, 2},
				Color:       core.Color{R: 1, G: 0.95, B: 0.8, A: 1},
				MaterialTag: "glossy",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "mug body",
				Shape:       ShapeCylinder,
				Scale:       mgl32.Vec3{0.45, 0.45, 0.65},
				Position:    mgl32.Vec3{5, 0.325, 2.5},
				Color:       core.Color{R: 0.85, G: 0.25, B: 0.15, A: 1},
				MaterialTag: "ceramic",
				UVScale:     mgl32.Vec2{1, 1},
			},
			{
				Name:        "mug handle",
				Shape:       ShapeTorus,
				Scale:       mgl32.Vec3{0.28, 0.38, 0.1},
				RotationDeg: mgl32.Vec3{0, 90, 0},
				Position:    mgl32.Vec3{5.5, 0.325, 2.5},
				Color:       core.Color{R: 0.85, G: 0.25, B: 0.15, A: 1},
				MaterialTag: "ceramic",
				UVScale:     mgl32.Vec2{1, 1},
			},
		},
	}
}

// deskLights builds the rig for the desk scene: a primary directional light
// from above-front, a cool fill from the right, and a warm red accent at the
// lamp position. Remaining point slots and the spot light stay off.
func deskLights() LightRig {
	rig := LightRig{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{0.2, -1, -0.3},
			Ambient:   mgl32.Vec3{0.25, 0.25, 0.25},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{0.4, 0.4, 0.4},
			Active:    true,
		},
		Spot: SpotLight{Active: false},
	}

	// Cool fill light from the right side
	rig.Points[0] = PointLight{
		Position: mgl32.Vec3{6, 6, 3},
		Ambient:  mgl32.Vec3{0.1, 0.1, 0.15},
		Diffuse:  mgl32.Vec3{0.4, 0.4, 0.5},
		Specular: mgl32.Vec3{0.5, 0.5, 0.6},
		Active:   true,
	}
	// Soft red glow at the desk lamp
	rig.Points[1] = PointLight{
		Position: mgl32.Vec3{-5.2, 2.6, 0.8},
		Ambient:  mgl32.Vec3{0.25, 0.05, 0.05},
		Diffuse:  mgl32.Vec3{0.8, 0.1, 0.1},
		Specular: mgl32.Vec3{0.6, 0.2, 0.2},
		Active:   true,
	}
	return rig
}
