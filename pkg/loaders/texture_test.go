package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/danaf/gorender/pkg/material"
)

func writePNGFile(t *testing.T, width, height int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadTextureDecodesPNG(t *testing.T) {
	path := writePNGFile(t, 4, 4, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	tex, err := LoadTexture(path, material.Nearest)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 4 || tex.Height != 4 {
		t.Errorf("dims = %dx%d, want 4x4", tex.Width, tex.Height)
	}

	color, err := tex.Sample(0, 0)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if color.X < 0.9 || color.Y > 0.1 {
		t.Errorf("sampled color = %v, want ~red", color)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"), material.Nearest); err == nil {
		t.Fatal("expected an error for a missing texture file")
	}
}

func TestLoadTextureRejectsUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if _, err := LoadTexture(path, material.Nearest); err == nil {
		t.Fatal("expected an error for an undecodable file")
	}
}
