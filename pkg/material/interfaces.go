// Package material implements the four scattering/emission models of
// spec.md 4.8 (Lambertian, Metal, Dielectric, DiffuseEmissive) plus the
// texture sampler Lambertian draws its albedo from.
package material

import (
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
)

// HitRecord is the result of a successful ray-primitive intersection
// (spec.md 3). Normal is always oriented against the incoming ray.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	FrontFace bool
	UV        core.Vec2
	T         float64
	Material  Material
}

// SetFaceNormal orients Normal against the ray direction and records which
// face was struck.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is returned by a successful Material.Scatter.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// Material answers how a surface scatters and emits light. scatter and
// emitted are independent: a surface may do either, neither, or (in
// principle) both.
type Material interface {
	// Scatter proposes an outgoing ray and its color attenuation for a ray
	// that struck hit. ok is false if the path terminates here.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (result ScatterResult, ok bool)

	// Emitted returns the light emitted at uv, or false if this material
	// does not emit.
	Emitted(uv core.Vec2) (emission core.Vec3, ok bool)
}
