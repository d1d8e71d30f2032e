package material

import (
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
)

// Metal is a specular material with an optional fuzz perturbation
// (spec.md 4.8).
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // clamped to [0, 1] at construction
}

// NewMetal creates a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the normal and perturbs it
// by Fuzz * random_unit_vector. Scatter is rejected if the perturbed
// direction ends up below the hemisphere of the hit normal (which faces
// the incoming ray), i.e. dot(scattered, normal) <= 0.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, ok
}

// Emitted returns false: Metal surfaces never emit.
func (m *Metal) Emitted(core.Vec2) (core.Vec3, bool) {
	return core.Vec3{}, false
}

// reflect computes the reflection of v about a surface with normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
