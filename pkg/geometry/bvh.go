package geometry

import (
	"math/rand"
	"sort"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// BVH is a Bounding Volume Hierarchy over a set of shared Hittable handles
// (spec.md 4.7). Construction never clones the underlying primitives, only
// the slice of references.
type BVH struct {
	root *bvhNode
}

// bvhNode is either a leaf (left == right, a single Hittable) or an
// internal node with two children.
type bvhNode struct {
	bbox        core.AABB
	left, right Hittable
}

// NewBVH builds a BVH over objs. The split axis at each level is chosen
// uniformly at random (spec.md 4.7/9) — a deliberate pedagogical choice the
// spec calls out explicitly; traversal cost is variance-heavy and tree
// shape must not be assumed by callers.
func NewBVH(objs []Hittable) *BVH {
	if len(objs) == 0 {
		return &BVH{}
	}
	objsCopy := make([]Hittable, len(objs))
	copy(objsCopy, objs)
	return &BVH{root: buildBVHNode(objsCopy, rand.New(rand.NewSource(rand.Int63())))}
}

func buildBVHNode(objs []Hittable, random *rand.Rand) *bvhNode {
	axis := random.Intn(3)
	span := len(objs)

	var left, right Hittable
	switch {
	case span == 1:
		left, right = objs[0], objs[0]
	case span == 2:
		if boxMin(objs[0], axis) < boxMin(objs[1], axis) {
			left, right = objs[0], objs[1]
		} else {
			left, right = objs[1], objs[0]
		}
	default:
		sort.Slice(objs, func(i, j int) bool {
			return boxMin(objs[i], axis) < boxMin(objs[j], axis)
		})
		mid := span / 2
		left = &hittableNode{buildBVHNode(objs[:mid], random)}
		right = &hittableNode{buildBVHNode(objs[mid:], random)}
	}

	bbox := left.BoundingBox().Union(right.BoundingBox())
	// A flat child (an axis-aligned triangle or planar mesh) leaves an axis
	// of zero width, which the strict slab test in AABB.Hit always rejects;
	// widen such axes slightly so rays can still reach the child.
	const minAxisSize = 1e-4
	for _, ax := range []*core.Interval{&bbox.X, &bbox.Y, &bbox.Z} {
		if ax.Size() < minAxisSize {
			ax.Min -= minAxisSize / 2
			ax.Max += minAxisSize / 2
		}
	}

	return &bvhNode{bbox: bbox, left: left, right: right}
}

func boxMin(h Hittable, axis int) float64 {
	return h.BoundingBox().Axis(axis).Min
}

// hittableNode adapts a *bvhNode to the Hittable interface so internal BVH
// nodes can sit as children of other nodes.
type hittableNode struct {
	node *bvhNode
}

func (n *hittableNode) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	return n.node.hit(ray, tRange)
}

func (n *hittableNode) BoundingBox() core.AABB {
	return n.node.bbox
}

// Hit traverses the BVH. A ray missing the root's bounding box is a miss
// for the whole tree; an empty BVH (zero objects) always misses.
func (b *BVH) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if b.root == nil {
		return nil, false
	}
	return b.root.hit(ray, tRange)
}

// hit implements the asymmetric-tightening traversal of spec.md 4.7: the
// left subtree's hit (if any) narrows the window searched by the right
// subtree. Both subtrees are always explored, so this is a pruning
// optimization, not a commitment — closest-hit semantics are preserved.
func (n *bvhNode) hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange.Min, tRange.Max) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tRange)

	rightMax := tRange.Max
	if okLeft {
		rightMax = hitLeft.T
	}
	hitRight, okRight := n.right.Hit(ray, core.NewInterval(tRange.Min, rightMax))

	if okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}
