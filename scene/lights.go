package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the number of point light slots in the shader.
const MaxPointLights = 5

// DirectionalLight is a scene-wide light with a direction but no position.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

// PointLight radiates from a world-space position.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// SpotLight is a cone-shaped light. Cutoff angles are in degrees, measured
// from the cone axis.
type SpotLight struct {
	Position       mgl32.Vec3
	Direction      mgl32.Vec3
	Ambient        mgl32.Vec3
	Diffuse        mgl32.Vec3
	Specular       mgl32.Vec3
	InnerCutoffDeg float32
	OuterCutoffDeg float32
	Active         bool
}

// LightRig is the full lighting state for a scene: one directional light,
// a fixed array of point lights, and one spot light. Inactive slots are
// written to the shader with their active flag cleared so stale state from
// a previous scene cannot leak through.
type LightRig struct {
	Directional DirectionalLight
	Points      [MaxPointLights]PointLight
	Spot        SpotLight
}
