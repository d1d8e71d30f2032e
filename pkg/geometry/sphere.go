package geometry

import (
	"math"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// Sphere is a sphere primitive (spec.md 4.3).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere. Radius must be > 0.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves |origin + t*direction - center|^2 = radius^2 and returns the
// nearest root within tRange.
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	// UV from the inward unit direction d = normalize(center - point): the
	// historic convention of this codebase, preserved per spec.md 4.3/9 even
	// though it inverts longitude/latitude relative to the usual
	// normalize(point - center) parameterization.
	d := s.Center.Subtract(point).Normalize()
	u := 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v := 0.5 + math.Asin(d.Y)/math.Pi

	hit := &material.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		UV:       core.NewVec2(u, v),
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns [center-r, center+r] on every axis.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
