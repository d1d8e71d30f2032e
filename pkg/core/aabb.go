package core

// AABB is an axis-aligned bounding box expressed as three per-axis
// intervals. The zero value is a degenerate box at the origin ([0, 0] on
// every axis), not the unbounded box; use UniverseAABB() for that.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from two corner points, taking the coordinate-wise
// min/max so the corners may be given in any order.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		X: orderedInterval(a.X, b.X),
		Y: orderedInterval(a.Y, b.Y),
		Z: orderedInterval(a.Z, b.Z),
	}
}

func orderedInterval(a, b float64) Interval {
	if a <= b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// NewAABBFromPoints returns the tightest AABB bounding all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := NewAABB(points[0], points[0])
	for _, p := range points[1:] {
		box = box.Union(NewAABB(p, p))
	}
	return box
}

// UniverseAABB returns the unbounded AABB, the default for an empty
// HittableList: callers must not rely on a tight bound for it.
func UniverseAABB() AABB {
	return AABB{X: Universe(), Y: Universe(), Z: Universe()}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests ray-box intersection via the slab method (spec.md 4.2): for each
// axis compute the entry/exit parameters from IEEE-754 infinity arithmetic
// (a zero direction component yields +/-Inf here, which is relied upon
// rather than special-cased) and narrow [tMin, tMax]. The test is
// inclusive-open: tMax <= tMin is a miss.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.Axis(axis)
		var o, d float64
		switch axis {
		case 0:
			o, d = ray.Origin.X, ray.Direction.X
		case 1:
			o, d = ray.Origin.Y, ray.Direction.Y
		default:
			o, d = ray.Origin.Z, ray.Direction.Z
		}

		invD := 1.0 / d
		t0 := (ax.Min - o) * invD
		t1 := (ax.Max - o) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Hull(other.X),
		Y: aabb.Y.Hull(other.Y),
		Z: aabb.Z.Hull(other.Z),
	}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Min returns the minimum corner of the AABB.
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner of the AABB.
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
// Retained from the teacher for diagnostics; BVH construction itself uses a
// randomly chosen axis per spec.md 4.7/9, not this one.
func (aabb AABB) LongestAxis() int {
	sx, sy, sz := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}
