package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/danaf/gorender/pkg/core"
)

// FilterMode selects how Texture.Sample interpolates between texels.
// Only Nearest is implemented; the others are reserved (spec.md 4.12).
type FilterMode int

const (
	Nearest FilterMode = iota
	Bilinear
	Trilinear
	Anisotropic
)

// ErrFilterNotImplemented is returned by Sample for any FilterMode other
// than Nearest.
var ErrFilterNotImplemented = errors.New("texture filter mode not implemented")

// Texture is a decoded width*height*channels byte buffer (the product of an
// external image loader; decoding itself is out of this package's scope).
type Texture struct {
	Width, Height, Channels int
	Pixels                  []byte
	Filter                  FilterMode
}

// NewTexture validates the buffer shape and constructs a Texture. Texture
// loading failures (missing file, wrong channel count) are fatal at
// construction per spec.md 7, so this returns an error rather than panicking.
func NewTexture(width, height, channels int, pixels []byte, filter FilterMode) (*Texture, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("texture channel count must be 3 or 4, got %d", channels)
	}
	if len(pixels) != width*height*channels {
		return nil, fmt.Errorf("texture buffer size %d does not match %dx%dx%d", len(pixels), width, height, channels)
	}
	return &Texture{Width: width, Height: height, Channels: channels, Pixels: pixels, Filter: filter}, nil
}

// Sample looks up the color at normalized texture coordinates (u, v).
// Nearest rounds to the closest texel (spec.md 4.12); any other filter mode
// is not implemented and is a fatal error for the sampling pixel.
func (t *Texture) Sample(u, v float64) (core.Vec3, error) {
	if t.Filter != Nearest {
		return core.Vec3{}, ErrFilterNotImplemented
	}

	uPx := int(math.Round(float64(t.Width-1) * u))
	vPx := int(math.Round(float64(t.Height-1) * v))
	uPx = clampInt(uPx, 0, t.Width-1)
	vPx = clampInt(vPx, 0, t.Height-1)

	pos := vPx*t.Width*t.Channels + uPx*t.Channels
	return core.NewVec3(
		float64(t.Pixels[pos])/255.0,
		float64(t.Pixels[pos+1])/255.0,
		float64(t.Pixels[pos+2])/255.0,
	), nil
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ColorSource provides the color a Lambertian material scatters with,
// either a constant color or a texture sampled at the hit's UV.
type ColorSource interface {
	Evaluate(uv core.Vec2) core.Vec3
}

// SolidColor is a ColorSource with no spatial variation.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant-color source.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of uv.
func (s *SolidColor) Evaluate(core.Vec2) core.Vec3 {
	return s.Color
}

// ImageColorSource samples a Texture at the given UV. NewTexture accepts
// any FilterMode (the scene builder always passes Nearest); if Sample
// reports ErrFilterNotImplemented, Evaluate panics, failing the render
// rather than silently returning a wrong color.
type ImageColorSource struct {
	Texture *Texture
}

// NewImageColorSource wraps a texture as a ColorSource.
func NewImageColorSource(tex *Texture) *ImageColorSource {
	return &ImageColorSource{Texture: tex}
}

// Evaluate samples the wrapped texture at uv.
func (s *ImageColorSource) Evaluate(uv core.Vec2) core.Vec3 {
	color, err := s.Texture.Sample(uv.X, uv.Y)
	if err != nil {
		panic(err)
	}
	return color
}
