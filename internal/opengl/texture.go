package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"desk-scene/scene"
)

// UploadTexture uploads a scene.Texture to the GPU and sets its GLID field.
// Call this from the main goroutine (OpenGL context must be current).
// Pixel data must be tightly packed, bottom row first.
func UploadTexture(tex *scene.Texture) error {
	if tex == nil {
		return fmt.Errorf("nil texture")
	}
	if len(tex.Pixels) == 0 {
		return fmt.Errorf("texture %q has no pixel data", tex.Name)
	}

	var format int32
	switch tex.Channels {
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return fmt.Errorf("texture %q: unsupported channel count: %d", tex.Name, tex.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// 3-channel rows are not 4-byte aligned in general.
	if tex.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		format,
		int32(tex.Width),
		int32(tex.Height),
		0,
		uint32(format),
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if tex.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.GLID = id
	return nil
}

// DeleteTexture frees a previously uploaded GPU texture and zeroes its GLID.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}

// TextureUnits uploads every registry entry and binds each one to the
// texture unit matching its registry slot. It satisfies render.TextureBinder.
type TextureUnits struct{}

// Bind uploads pending textures and binds them slot-to-unit.
func (TextureUnits) Bind(reg *scene.TextureRegistry) error {
	for slot, entry := range reg.Entries() {
		if entry.Texture.GLID == 0 {
			if err := UploadTexture(entry.Texture); err != nil {
				return fmt.Errorf("upload %q: %w", entry.Tag, err)
			}
		}
		gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
		gl.BindTexture(gl.TEXTURE_2D, entry.Texture.GLID)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	return nil
}

// ReleaseTextures deletes every uploaded GPU texture in the registry.
func ReleaseTextures(reg *scene.TextureRegistry) {
	for _, entry := range reg.Entries() {
		DeleteTexture(entry.Texture)
	}
}
