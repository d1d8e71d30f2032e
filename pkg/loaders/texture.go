package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/danaf/gorender/pkg/material"
)

// LoadTexture decodes an image file into a material.Texture. Blank-imported
// decoders register themselves with image.Decode: PNG/JPEG from the
// standard library, BMP/TIFF from golang.org/x/image, so any of the four
// can be passed here transparently. A missing file or an unsupported
// channel count is fatal at load time (spec.md 7).
func LoadTexture(path string, filter material.FilterMode) (*material.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	const channels = 4
	pixels := make([]byte, width*height*channels)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pos := (y*width + x) * channels
			pixels[pos] = byte(r >> 8)
			pixels[pos+1] = byte(g >> 8)
			pixels[pos+2] = byte(b >> 8)
			pixels[pos+3] = byte(a >> 8)
		}
	}

	return material.NewTexture(width, height, channels, pixels, filter)
}
