package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desk-scene/scene"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	def := scene.DeskScene()
	path := filepath.Join(t.TempDir(), "desk.dscene")

	require.NoError(t, SaveScene(path, def))

	loaded, err := LoadScene(path)
	require.NoError(t, err)

	assert.Equal(t, def.Name, loaded.Name)
	assert.Equal(t, def.Textures, loaded.Textures)
	assert.Equal(t, def.Materials, loaded.Materials)
	assert.Equal(t, def.Lights, loaded.Lights)
	assert.Equal(t, def.Objects, loaded.Objects)
}

func TestLoadSceneUnknownShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dscene")
	data := `{
  "version": "1.0",
  "name": "bad",
  "objects": [
    {"name": "x", "shape": "dodecahedron", "scale": [1,1,1], "position": [0,0,0], "color": [1,1,1,1]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadScene(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shape")
}

func TestLoadSceneDanglingMaterial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dangling.dscene")
	data := `{
  "version": "1.0",
  "name": "dangling",
  "objects": [
    {"name": "x", "shape": "box", "scale": [1,1,1], "position": [0,0,0], "color": [1,1,1,1], "material": "ghost"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadScene(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared material")
}

func TestLoadSceneTooManyPointLights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lights.dscene")
	data := `{
  "version": "1.0",
  "name": "lights",
  "lights": {
    "points": [
      {"active": true}, {"active": true}, {"active": true},
      {"active": true}, {"active": true}, {"active": true}
    ]
  },
  "objects": []
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadScene(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point lights")
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "nope.dscene"))
	assert.Error(t, err)
}
