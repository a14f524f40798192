package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func writeJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestLoadTexturePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	path := writePNG(t, t.TempDir(), "flat.png", img)

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Errorf("size: expected 2x2, got %dx%d", tex.Width, tex.Height)
	}
	if tex.Channels != 4 {
		t.Errorf("channels: expected 4 for PNG, got %d", tex.Channels)
	}
	if len(tex.Pixels) != 2*2*4 {
		t.Errorf("pixels: expected %d bytes, got %d", 2*2*4, len(tex.Pixels))
	}
}

func TestLoadTextureJPEGChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := writeJPEG(t, t.TempDir(), "flat.jpg", img)

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	// JPEG decodes to YCbCr, which maps to a 3-channel texture.
	if tex.Channels != 3 {
		t.Errorf("channels: expected 3 for JPEG, got %d", tex.Channels)
	}
	if len(tex.Pixels) != 8*8*3 {
		t.Errorf("pixels: expected %d bytes, got %d", 8*8*3, len(tex.Pixels))
	}
}

func TestLoadTextureRejectsGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, t.TempDir(), "gray.png", img)

	_, err := LoadTexture(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadTextureFlipsRows(t *testing.T) {
	// Top row red, bottom row blue. After the vertical flip the first
	// stored row (V=0) must be the image's bottom row.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, t.TempDir(), "flip.png", img)

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Pixels[2] != 255 {
		t.Errorf("first stored row: expected blue (bottom of image), got RGBA %v", tex.Pixels[0:4])
	}
	if tex.Pixels[4] != 255 {
		t.Errorf("second stored row: expected red (top of image), got RGBA %v", tex.Pixels[4:8])
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTextureRegistrySlots(t *testing.T) {
	reg := NewTextureRegistry()

	tags := []string{"desk", "monitor", "metal"}
	for _, tag := range tags {
		if err := reg.Register(tag, &Texture{Name: tag}); err != nil {
			t.Fatalf("Register %q: %v", tag, err)
		}
	}

	// Slots follow registration order and stay stable.
	for want, tag := range tags {
		got, err := reg.Slot(tag)
		if err != nil {
			t.Fatalf("Slot %q: %v", tag, err)
		}
		if got != want {
			t.Errorf("Slot %q: expected %d, got %d", tag, want, got)
		}
	}
	if reg.Len() != len(tags) {
		t.Errorf("Len: expected %d, got %d", len(tags), reg.Len())
	}
}

func TestTextureRegistryUnknownTag(t *testing.T) {
	reg := NewTextureRegistry()
	if _, err := reg.Slot("missing"); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Slot: expected ErrUnknownTexture, got %v", err)
	}
	if _, err := reg.Handle("missing"); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Handle: expected ErrUnknownTexture, got %v", err)
	}
}

func TestTextureRegistryDuplicateTag(t *testing.T) {
	reg := NewTextureRegistry()
	if err := reg.Register("desk", &Texture{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("desk", &Texture{}); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("expected ErrDuplicateTag, got %v", err)
	}
}

func TestTextureRegistryCapacity(t *testing.T) {
	reg := NewTextureRegistry()
	for i := 0; i < MaxTextureSlots; i++ {
		if err := reg.Register(fmt.Sprintf("tex-%d", i), &Texture{}); err != nil {
			t.Fatalf("Register %d: %v", i, err)
		}
	}
	if err := reg.Register("overflow", &Texture{}); !errors.Is(err, ErrRegistryFull) {
		t.Errorf("expected ErrRegistryFull, got %v", err)
	}
	if reg.Len() != MaxTextureSlots {
		t.Errorf("Len after overflow: expected %d, got %d", MaxTextureSlots, reg.Len())
	}
}
