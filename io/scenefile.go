package io

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/scene"
)

// SceneFile is the top-level structure for the .dscene format
type SceneFile struct {
	Version   string         `json:"version"`
	Name      string         `json:"name"`
	Textures  []TextureData  `json:"textures,omitempty"`
	Materials []MaterialData `json:"materials,omitempty"`
	Lights    LightsData     `json:"lights"`
	Objects   []ObjectData   `json:"objects"`
}

// TextureData names an image file and its registry tag
type TextureData struct {
	Path string `json:"path"`
	Tag  string `json:"tag"`
}

// MaterialData stores Phong material properties
type MaterialData struct {
	Tag       string     `json:"tag"`
	Diffuse   [3]float32 `json:"diffuse"`
	Specular  [3]float32 `json:"specular"`
	Shininess float32    `json:"shininess"`
}

// LightsData stores the full lighting rig
type LightsData struct {
	Directional DirectionalData `json:"directional"`
	Points      []PointData     `json:"points,omitempty"`
	Spot        SpotData        `json:"spot"`
}

// DirectionalData stores directional light state
type DirectionalData struct {
	Direction [3]float32 `json:"direction"`
	Ambient   [3]float32 `json:"ambient"`
	Diffuse   [3]float32 `json:"diffuse"`
	Specular  [3]float32 `json:"specular"`
	Active    bool       `json:"active"`
}

// PointData stores point light state
type PointData struct {
	Position [3]float32 `json:"position"`
	Ambient  [3]float32 `json:"ambient"`
	Diffuse  [3]float32 `json:"diffuse"`
	Specular [3]float32 `json:"specular"`
	Active   bool       `json:"active"`
}

// SpotData stores spot light state
type SpotData struct {
	Position    [3]float32 `json:"position"`
	Direction   [3]float32 `json:"direction"`
	Ambient     [3]float32 `json:"ambient"`
	Diffuse     [3]float32 `json:"diffuse"`
	Specular    [3]float32 `json:"specular"`
	InnerCutoff float32    `json:"inner_cutoff"`
	OuterCutoff float32    `json:"outer_cutoff"`
	Active      bool       `json:"active"`
}

// ObjectData stores one drawable object
type ObjectData struct {
	Name     string     `json:"name"`
	Shape    string     `json:"shape"`
	Scale    [3]float32 `json:"scale"`
	Rotation [3]float32 `json:"rotation"` // Euler degrees (x,y,z)
	Position [3]float32 `json:"position"`
	Color    [4]float32 `json:"color"`
	Texture  string     `json:"texture,omitempty"`
	Material string     `json:"material,omitempty"`
	UVScale  [2]float32 `json:"uv_scale,omitempty"`
}

// SaveScene serializes a scene definition to a .dscene JSON file
func SaveScene(path string, def *scene.Def) error {
	file := FromDef(def)
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScene deserializes a .dscene JSON file into a scene definition
func LoadScene(path string) (*scene.Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	file := &SceneFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	return ToDef(file)
}

// FromDef converts a scene definition to its file representation
func FromDef(def *scene.Def) *SceneFile {
	file := &SceneFile{
		Version: "1.0",
		Name:    def.Name,
	}
	for _, t := range def.Textures {
		file.Textures = append(file.Textures, TextureData{Path: t.Path, Tag: t.Tag})
	}
	for _, m := range def.Materials {
		file.Materials = append(file.Materials, MaterialData{
			Tag:       m.Tag,
			Diffuse:   Vec3ToArray(m.Diffuse),
			Specular:  Vec3ToArray(m.Specular),
			Shininess: m.Shininess,
		})
	}

	file.Lights.Directional = DirectionalData{
		Direction: Vec3ToArray(def.Lights.Directional.Direction),
		Ambient:   Vec3ToArray(def.Lights.Directional.Ambient),
		Diffuse:   Vec3ToArray(def.Lights.Directional.Diffuse),
		Specular:  Vec3ToArray(def.Lights.Directional.Specular),
		Active:    def.Lights.Directional.Active,
	}
	for _, p := range def.Lights.Points {
		file.Lights.Points = append(file.Lights.Points, PointData{
			Position: Vec3ToArray(p.Position),
			Ambient:  Vec3ToArray(p.Ambient),
			Diffuse:  Vec3ToArray(p.Diffuse),
			Specular: Vec3ToArray(p.Specular),
			Active:   p.Active,
		})
	}
	s := def.Lights.Spot
	file.Lights.Spot = SpotData{
		Position:    Vec3ToArray(s.Position),
		Direction:   Vec3ToArray(s.Direction),
		Ambient:     Vec3ToArray(s.Ambient),
		Diffuse:     Vec3ToArray(s.Diffuse),
		Specular:    Vec3ToArray(s.Specular),
		InnerCutoff: s.InnerCutoffDeg,
		OuterCutoff: s.OuterCutoffDeg,
		Active:      s.Active,
	}

	for _, o := range def.Objects {
		file.Objects = append(file.Objects, ObjectData{
			Name:     o.Name,
			Shape:    o.Shape.String(),
			Scale:    Vec3ToArray(o.Scale),
			Rotation: Vec3ToArray(o.RotationDeg),
			Position: Vec3ToArray(o.Position),
			Color:    ColorToArray(o.Color),
			Texture:  o.TextureTag,
			Material: o.MaterialTag,
			UVScale:  [2]float32{o.UVScale.X(), o.UVScale.Y()},
		})
	}
	return file
}

// ToDef converts a file representation back into a scene definition
func ToDef(file *SceneFile) (*scene.Def, error) {
	def := &scene.Def{Name: file.Name}

	for _, t := range file.Textures {
		def.Textures = append(def.Textures, scene.TextureRef{Path: t.Path, Tag: t.Tag})
	}
	for _, m := range file.Materials {
		def.Materials = append(def.Materials, scene.Material{
			Tag:       m.Tag,
			Diffuse:   ArrayToVec3(m.Diffuse),
			Specular:  ArrayToVec3(m.Specular),
			Shininess: m.Shininess,
		})
	}

	d := file.Lights.Directional
	def.Lights.Directional = scene.DirectionalLight{
		Direction: ArrayToVec3(d.Direction),
		Ambient:   ArrayToVec3(d.Ambient),
		Diffuse:   ArrayToVec3(d.Diffuse),
		Specular:  ArrayToVec3(d.Specular),
		Active:    d.Active,
	}
	if len(file.Lights.Points) > scene.MaxPointLights {
		return nil, fmt.Errorf("scene %q: %d point lights exceeds limit of %d",
			file.Name, len(file.Lights.Points), scene.MaxPointLights)
	}
	for i, p := range file.Lights.Points {
		def.Lights.Points[i] = scene.PointLight{
			Position: ArrayToVec3(p.Position),
			Ambient:  ArrayToVec3(p.Ambient),
			Diffuse:  ArrayToVec3(p.Diffuse),
			Specular: ArrayToVec3(p.Specular),
			Active:   p.Active,
		}
	}
	s := file.Lights.Spot
	def.Lights.Spot = scene.SpotLight{
		Position:       ArrayToVec3(s.Position),
		Direction:      ArrayToVec3(s.Direction),
		Ambient:        ArrayToVec3(s.Ambient),
		Diffuse:        ArrayToVec3(s.Diffuse),
		Specular:       ArrayToVec3(s.Specular),
		InnerCutoffDeg: s.InnerCutoff,
		OuterCutoffDeg: s.OuterCutoff,
		Active:         s.Active,
	}

	for _, o := range file.Objects {
		shape, err := scene.ParseShape(o.Shape)
		if err != nil {
			return nil, fmt.Errorf("scene %q object %q: %w", file.Name, o.Name, err)
		}
		def.Objects = append(def.Objects, scene.ObjectDesc{
			Name:        o.Name,
			Shape:       shape,
			Scale:       ArrayToVec3(o.Scale),
			RotationDeg: ArrayToVec3(o.Rotation),
			Position:    ArrayToVec3(o.Position),
			Color:       ArrayToColor(o.Color),
			TextureTag:  o.Texture,
			MaterialTag: o.Material,
			UVScale:     mgl32.Vec2{o.UVScale[0], o.UVScale[1]},
		})
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", file.Name, err)
	}
	return def, nil
}

// --- Helper conversions ---

// Vec3ToArray converts a Vec3 to a [3]float32
func Vec3ToArray(v mgl32.Vec3) [3]float32 {
	return [3]float32{v.X(), v.Y(), v.Z()}
}

// ArrayToVec3 converts a [3]float32 to Vec3
func ArrayToVec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}

// ColorToArray converts a Color to [4]float32
func ColorToArray(c core.Color) [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ArrayToColor converts [4]float32 to Color
func ArrayToColor(a [4]float32) core.Color {
	return core.Color{R: a[0], G: a[1], B: a[2], A: a[3]}
}
