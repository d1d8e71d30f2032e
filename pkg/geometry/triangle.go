package geometry

import (
	"math"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// Vertex is a triangle corner: position, texture coordinate and a unit
// shading normal (spec.md 3).
type Vertex struct {
	Position core.Vec3
	UV       core.Vec2
	Normal   core.Vec3
}

// Triangle is a single triangle defined by three vertices, with a cached
// bounding box (spec.md 4.4).
type Triangle struct {
	A, B, C  Vertex
	Material material.Material
	bbox     core.AABB
}

// NewTriangle creates a triangle from three vertices and a material.
func NewTriangle(a, b, c Vertex, mat material.Material) *Triangle {
	return &Triangle{
		A:        a,
		B:        b,
		C:        c,
		Material: mat,
		bbox:     core.NewAABBFromPoints(a.Position, b.Position, c.Position),
	}
}

// Hit implements Möller–Trumbore intersection, interpolating UV and normal
// by barycentric weights (spec.md 4.4).
func (t *Triangle) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	const epsilon = 2.220446049250313e-16 // machine epsilon, as spec.md 4.4 requires

	e1 := t.B.Position.Subtract(t.A.Position)
	e2 := t.C.Position.Subtract(t.A.Position)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < epsilon {
		return nil, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(t.A.Position)
	u := invDet * s.Dot(p)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(e1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := invDet * e2.Dot(q)
	if tHit <= epsilon || !tRange.Surrounds(tHit) {
		return nil, false
	}

	w := 1.0 - u - v
	uv := t.A.UV.Multiply(w).Add(t.B.UV.Multiply(u)).Add(t.C.UV.Multiply(v))
	outwardNormal := t.A.Normal.Multiply(w).Add(t.B.Normal.Multiply(u)).Add(t.C.Normal.Multiply(v))

	hit := &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Material: t.Material,
		UV:       uv,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the cached hull of the three vertex positions.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
