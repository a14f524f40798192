package scene

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// MaxTextureSlots is the number of texture units the registry may occupy,
// matching the minimum guaranteed by the GL implementation.
const MaxTextureSlots = 16

var (
	ErrRegistryFull      = errors.New("texture registry full")
	ErrDuplicateTag      = errors.New("tag already registered")
	ErrUnknownTexture    = errors.New("no texture registered under tag")
	ErrUnsupportedFormat = errors.New("unsupported channel count")
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Channels is 3 (tightly packed RGB) or 4 (RGBA), and selects the
	// pixel layout of Pixels as well as the GL internal format.
	Channels int
	// Pixels in row-major order, bottom row first (image files store the
	// top row first; rows are flipped at decode time so V=0 samples the
	// bottom of the image, matching GL texture coordinates).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side
// Texture with rows flipped vertically. Opaque YCbCr sources decode to a
// 3-channel texture, everything else carrying alpha decodes to 4 channels.
// Grayscale images are rejected.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	tex, err := textureFromImage(path, img)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return tex, nil
}

// textureFromImage converts a decoded image into a flipped, tightly packed
// pixel buffer. The channel count is derived from the image's native model.
func textureFromImage(name string, img image.Image) (*Texture, error) {
	channels, err := channelCount(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	pixels := make([]byte, w*h*channels)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Flip: write decoded row y into destination row (h-1-y).
		row := (bounds.Max.Y - 1 - y) * w * channels
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			i := row + (x-bounds.Min.X)*channels
			pixels[i+0] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(b >> 8)
			if channels == 4 {
				pixels[i+3] = byte(a >> 8)
			}
		}
	}

	return &Texture{
		Name:     name,
		Width:    w,
		Height:   h,
		Channels: channels,
		Pixels:   pixels,
	}, nil
}

// channelCount maps the decoded image's native color model to the channel
// counts the GL upload path handles.
func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 0, fmt.Errorf("%w: 1", ErrUnsupportedFormat)
	case *image.YCbCr:
		return 3, nil
	default:
		return 4, nil
	}
}

// TextureEntry associates a registered texture with its tag. The slot index
// is the entry's position in registration order.
type TextureEntry struct {
	Tag     string
	Texture *Texture
}

// TextureRegistry holds decoded textures keyed by tag, each occupying one
// texture unit equal to its registration index. Populated once during scene
// setup and read-only afterward.
type TextureRegistry struct {
	entries []TextureEntry
	slots   map[string]int
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{slots: make(map[string]int)}
}

// Load decodes the image at path and registers it under tag.
func (r *TextureRegistry) Load(path, tag string) error {
	tex, err := LoadTexture(path)
	if err != nil {
		return err
	}
	return r.Register(tag, tex)
}

// Register appends an already-decoded texture under tag.
func (r *TextureRegistry) Register(tag string, tex *Texture) error {
	if len(r.entries) >= MaxTextureSlots {
		return fmt.Errorf("register %q: %w (max %d)", tag, ErrRegistryFull, MaxTextureSlots)
	}
	if _, ok := r.slots[tag]; ok {
		return fmt.Errorf("register %q: %w", tag, ErrDuplicateTag)
	}
	r.slots[tag] = len(r.entries)
	r.entries = append(r.entries, TextureEntry{Tag: tag, Texture: tex})
	return nil
}

// Slot returns the texture unit index assigned to tag.
func (r *TextureRegistry) Slot(tag string) (int, error) {
	slot, ok := r.slots[tag]
	if !ok {
		return -1, fmt.Errorf("slot %q: %w", tag, ErrUnknownTexture)
	}
	return slot, nil
}

// Handle returns the GL texture object ID for tag. The ID is zero until the
// backend has uploaded the registry.
func (r *TextureRegistry) Handle(tag string) (uint32, error) {
	slot, ok := r.slots[tag]
	if !ok {
		return 0, fmt.Errorf("handle %q: %w", tag, ErrUnknownTexture)
	}
	return r.entries[slot].Texture.GLID, nil
}

// Entries returns the registered textures in slot order.
func (r *TextureRegistry) Entries() []TextureEntry {
	return r.entries
}

// Len reports the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}
