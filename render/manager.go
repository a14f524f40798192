package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/scene"
)

// Uniform names the manager writes. These must match the declarations in the
// GLSL sources in shaders.go.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// UniformSink receives typed, name-addressed shader state. The production
// implementation is opengl.Program; tests substitute a recording fake.
type UniformSink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
	SetSampler2D(name string, unit int32)
}

// MeshProvider owns primitive mesh geometry. LoadMesh is idempotent;
// DrawMesh fails for shapes that were never loaded.
type MeshProvider interface {
	LoadMesh(shape scene.Shape) error
	DrawMesh(shape scene.Shape) error
}

// TextureBinder uploads every registry entry to the GPU and binds each to
// the texture unit matching its slot.
type TextureBinder interface {
	Bind(reg *scene.TextureRegistry) error
}

// Manager drives scene preparation and rendering: it owns the texture and
// material registries and translates scene descriptors into shader state and
// draw calls.
type Manager struct {
	sink      UniformSink
	meshes    MeshProvider
	binder    TextureBinder
	textures  *scene.TextureRegistry
	materials *scene.MaterialRegistry
}

func NewManager(sink UniformSink, meshes MeshProvider, binder TextureBinder) *Manager {
	return &Manager{
		sink:      sink,
		meshes:    meshes,
		binder:    binder,
		textures:  scene.NewTextureRegistry(),
		materials: scene.NewMaterialRegistry(),
	}
}

func (m *Manager) Textures() *scene.TextureRegistry   { return m.textures }
func (m *Manager) Materials() *scene.MaterialRegistry { return m.materials }

// ComposeModel builds a model matrix from scale, Euler rotation angles in
// degrees, and translation. The composition order is fixed:
// Translation * Rz * Ry * Rx * Scale, so a local-space vertex is scaled
// first, rotated about X, then Y, then Z, and finally translated.
func ComposeModel(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, translation mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// SetTransformations composes the model matrix for the next draw call and
// uploads it.
func (m *Manager) SetTransformations(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, translation mgl32.Vec3) {
	m.sink.SetMat4(uniformModel, ComposeModel(scale, rotXDeg, rotYDeg, rotZDeg, translation))
}

// SetShaderColor switches the next draw call to flat-color shading.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.sink.SetBool(uniformUseTexture, false)
	m.sink.SetVec4(uniformColor, core.Color{R: r, G: g, B: b, A: a}.Vec4())
}

// SetShaderTexture switches the next draw call to textured shading, sampling
// the registered texture's unit.
func (m *Manager) SetShaderTexture(tag string) error {
	slot, err := m.textures.Slot(tag)
	if err != nil {
		return err
	}
	m.sink.SetBool(uniformUseTexture, true)
	m.sink.SetSampler2D(uniformTexture, int32(slot))
	return nil
}

// SetTextureUVScale sets the tiling multiplier applied to texture
// coordinates by the vertex shader.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.sink.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial uploads the named material's Phong parameters.
func (m *Manager) SetShaderMaterial(tag string) error {
	mat, err := m.materials.Find(tag)
	if err != nil {
		return err
	}
	m.sink.SetVec3("material.diffuseColor", mat.Diffuse)
	m.sink.SetVec3("material.specularColor", mat.Specular)
	m.sink.SetFloat("material.shininess", mat.Shininess)
	return nil
}

// ApplyLights writes the full lighting rig. Every slot is written, active or
// not, so state from a previously applied rig cannot leak through.
func (m *Manager) ApplyLights(rig scene.LightRig) {
	m.sink.SetBool(uniformUseLighting, true)

	m.sink.SetVec3("directionalLight.direction", rig.Directional.Direction)
	m.sink.SetVec3("directionalLight.ambient", rig.Directional.Ambient)
	m.sink.SetVec3("directionalLight.diffuse", rig.Directional.Diffuse)
	m.sink.SetVec3("directionalLight.specular", rig.Directional.Specular)
	m.sink.SetBool("directionalLight.bActive", rig.Directional.Active)

	for i, p := range rig.Points {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		m.sink.SetBool(prefix+".bActive", p.Active)
		if !p.Active {
			continue
		}
		m.sink.SetVec3(prefix+".position", p.Position)
		m.sink.SetVec3(prefix+".ambient", p.Ambient)
		m.sink.SetVec3(prefix+".diffuse", p.Diffuse)
		m.sink.SetVec3(prefix+".specular", p.Specular)
	}

	m.sink.SetBool("spotLight.bActive", rig.Spot.Active)
	if rig.Spot.Active {
		m.sink.SetVec3("spotLight.position", rig.Spot.Position)
		m.sink.SetVec3("spotLight.direction", rig.Spot.Direction)
		m.sink.SetVec3("spotLight.ambient", rig.Spot.Ambient)
		m.sink.SetVec3("spotLight.diffuse", rig.Spot.Diffuse)
		m.sink.SetVec3("spotLight.specular", rig.Spot.Specular)
		m.sink.SetFloat("spotLight.innerCutoff", cosDeg(rig.Spot.InnerCutoffDeg))
		m.sink.SetFloat("spotLight.outerCutoff", cosDeg(rig.Spot.OuterCutoffDeg))
	}
}

// PrepareScene performs one-time setup for a scene definition: primitive
// meshes are generated and uploaded, textures decoded, uploaded, and bound
// to their slots, materials defined, and the lighting rig applied.
func (m *Manager) PrepareScene(def *scene.Def) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("prepare %q: %w", def.Name, err)
	}

	for _, shape := range def.Shapes() {
		if err := m.meshes.LoadMesh(shape); err != nil {
			return fmt.Errorf("prepare %q: load %v: %w", def.Name, shape, err)
		}
	}

	for _, ref := range def.Textures {
		if err := m.textures.Load(ref.Path, ref.Tag); err != nil {
			return fmt.Errorf("prepare %q: %w", def.Name, err)
		}
	}
	if err := m.binder.Bind(m.textures); err != nil {
		return fmt.Errorf("prepare %q: bind textures: %w", def.Name, err)
	}

	for _, mat := range def.Materials {
		if err := m.materials.Define(mat.Tag, mat.Diffuse, mat.Specular, mat.Shininess); err != nil {
			return fmt.Errorf("prepare %q: %w", def.Name, err)
		}
	}

	m.ApplyLights(def.Lights)
	return nil
}

// RenderScene draws every object in the definition in order: transform,
// color, optional texture and material, UV scale, then the draw call.
func (m *Manager) RenderScene(def *scene.Def) error {
	for _, obj := range def.Objects {
		m.SetTransformations(obj.Scale,
			obj.RotationDeg.X(), obj.RotationDeg.Y(), obj.RotationDeg.Z(),
			obj.Position)

		m.SetShaderColor(obj.Color.R, obj.Color.G, obj.Color.B, obj.Color.A)
		if obj.TextureTag != "" {
			if err := m.SetShaderTexture(obj.TextureTag); err != nil {
				return fmt.Errorf("render %q: %w", obj.Name, err)
			}
		}
		if obj.MaterialTag != "" {
			if err := m.SetShaderMaterial(obj.MaterialTag); err != nil {
				return fmt.Errorf("render %q: %w", obj.Name, err)
			}
		}

		uv := obj.UVScale
		if uv == (mgl32.Vec2{}) {
			uv = mgl32.Vec2{1, 1}
		}
		m.SetTextureUVScale(uv.X(), uv.Y())

		if err := m.meshes.DrawMesh(obj.Shape); err != nil {
			return fmt.Errorf("render %q: %w", obj.Name, err)
		}
	}
	return nil
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
