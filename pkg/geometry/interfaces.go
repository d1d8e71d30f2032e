// Package geometry implements the primitive intersection oracles of
// spec.md 4 (Sphere, Triangle, Mesh), their aggregation (HittableList) and
// the BVH that accelerates queries over them.
package geometry

import (
	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// Hittable is anything that can answer a ray intersection query and report
// a conservative bounding box. Hittables are created once at scene build
// time, shared by reference between a HittableList, a BVH and any parent
// Mesh, and are immutable thereafter.
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
