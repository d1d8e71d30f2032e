package geometry

import (
	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/material"
)

// Mesh is an ordered collection of triangles sharing a material, plus a
// precomputed hull AABB (spec.md 4.5). Internally it accelerates its own
// closest-hit search with a BVH; this is an implementation detail allowed
// by spec.md 4.5 and has identical semantics to a linear scan.
type Mesh struct {
	triangles []*Triangle
	bvh       *BVH
	bbox      core.AABB
}

// NewMesh builds a Mesh from positions/uvs/normals and a flat triangle
// index list (three indices per triangle), as produced by an external mesh
// loader (spec.md 6).
func NewMesh(positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3, indices []int, mat material.Material) *Mesh {
	triangleCount := len(indices) / 3
	triangles := make([]*Triangle, 0, triangleCount)
	hittables := make([]Hittable, 0, triangleCount)

	var bbox core.AABB
	first := true

	for i := 0; i < triangleCount; i++ {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		tri := NewTriangle(
			Vertex{Position: positions[i0], UV: uvs[i0], Normal: normals[i0]},
			Vertex{Position: positions[i1], UV: uvs[i1], Normal: normals[i1]},
			Vertex{Position: positions[i2], UV: uvs[i2], Normal: normals[i2]},
			mat,
		)
		triangles = append(triangles, tri)
		hittables = append(hittables, tri)

		if first {
			bbox = tri.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(tri.BoundingBox())
		}
	}

	return &Mesh{
		triangles: triangles,
		bvh:       NewBVH(hittables),
		bbox:      bbox,
	}
}

// Hit delegates to the mesh's internal BVH for a closest-hit search over
// its triangles.
func (m *Mesh) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	return m.bvh.Hit(ray, tRange)
}

// BoundingBox returns the cached hull of every triangle in the mesh.
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}
