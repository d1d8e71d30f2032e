package renderer

import (
	"bufio"
	"fmt"
	"os"

	"github.com/danaf/gorender/pkg/core"
)

// Image is a row-major height x width grid of linear RGB color, gamma-
// encoded in place by the renderer before being dumped (spec.md 4.11).
// Row 0 is the top of the image.
type Image struct {
	Width, Height int
	pixels        [][]core.Vec3
}

// NewImage allocates a black width x height image.
func NewImage(width, height int) *Image {
	pixels := make([][]core.Vec3, height)
	for row := range pixels {
		pixels[row] = make([]core.Vec3, width)
	}
	return &Image{Width: width, Height: height, pixels: pixels}
}

// Set writes the color at (row, col). Workers write disjoint cells, so no
// synchronization is required (spec.md 5).
func (img *Image) Set(row, col int, color core.Vec3) {
	img.pixels[row][col] = color
}

// At returns the color at (row, col).
func (img *Image) At(row, col int) core.Vec3 {
	return img.pixels[row][col]
}

// Dump writes the image to path as ASCII PPM P3: header "P3\n<w> <h>\n255\n",
// then one line per pixel of three integers in [0, 255].
func (img *Image) Dump(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ppm file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", img.Width, img.Height)

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			c := img.pixels[row][col]
			fmt.Fprintf(w, "%d %d %d\n", toByte(c.X), toByte(c.Y), toByte(c.Z))
		}
	}

	return w.Flush()
}

// toByte maps a gamma-encoded channel to [0, 255] per spec.md 4.11:
// floor(clamp(c, 0, 0.999) * 256).
func toByte(c float64) int {
	clamped := core.NewInterval(0, 0.999).Clamp(c)
	return int(clamped * 256)
}
