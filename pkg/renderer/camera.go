package renderer

import (
	"math"

	"github.com/danaf/gorender/pkg/core"
)

// CameraConfig describes a pinhole camera pose (spec.md 4.10). VFov is in
// radians.
type CameraConfig struct {
	Width, Height int
	VFov          float64
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
}

// Camera derives a pinhole projection from a CameraConfig: an orthonormal
// basis, a viewport, and per-pixel delta vectors. Camera is immutable after
// construction and safe to share across render workers.
type Camera struct {
	Width, Height int
	Eye           core.Vec3
	Du, Dv        core.Vec3
	Pixel00       core.Vec3
}

// NewCamera builds a Camera from cfg.
func NewCamera(cfg CameraConfig) Camera {
	aspect := float64(cfg.Width) / float64(cfg.Height)
	focalLength := cfg.LookFrom.Subtract(cfg.LookAt).Length()

	viewportHeight := 2 * focalLength * math.Tan(cfg.VFov/2)
	viewportWidth := viewportHeight * aspect

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	du := viewportU.Multiply(1.0 / float64(cfg.Width))
	dv := viewportV.Multiply(1.0 / float64(cfg.Height))

	topLeft := cfg.LookFrom.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	pixel00 := topLeft.Add(du.Add(dv).Multiply(0.5))

	return Camera{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Eye:     cfg.LookFrom,
		Du:      du,
		Dv:      dv,
		Pixel00: pixel00,
	}
}

// RayAt generates a primary ray through pixel (row, col), jittered by
// (jx, jy) in [-0.5, 0.5)^2 (spec.md 4.9).
func (c Camera) RayAt(row, col int, jx, jy float64) core.Ray {
	pixelCenter := c.Pixel00.
		Add(c.Du.Multiply(float64(col) + jx)).
		Add(c.Dv.Multiply(float64(row) + jy))

	direction := pixelCenter.Subtract(c.Eye)
	return core.NewRay(c.Eye, direction)
}
