package geometry

import (
	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// HittableList is an ordered sequence of shared hittables with an
// incrementally maintained union AABB (spec.md 4.6). It is the Scene
// container that feeds the BVH.
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates an empty list. An empty list's bounding box is
// the universe (unbounded); callers must not rely on a tight bound for it.
func NewHittableList() *HittableList {
	return &HittableList{bbox: core.UniverseAABB()}
}

// Add appends a hittable, growing the union bounding box.
func (l *HittableList) Add(h Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = h.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(h.BoundingBox())
	}
	l.Objects = append(l.Objects, h)
}

// Hit performs closest-hit over the list's children, tightening tMax as
// each closer hit commits.
func (l *HittableList) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tRange.Max

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every child's bounding box, or the
// universe for an empty list.
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
