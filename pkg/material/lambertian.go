package material

import (
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
)

// Lambertian is a perfectly diffuse material. Its albedo may be a constant
// color or a texture sampled at the hit's UV (spec.md 4.8).
type Lambertian struct {
	Albedo ColorSource
}

// NewLambertian creates a Lambertian material with a constant albedo.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a Lambertian material whose albedo is
// sampled from a ColorSource (e.g. an image texture).
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always succeeds: the outgoing direction is normal + a random unit
// vector, falling back to normal if that sum is degenerate.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo.Evaluate(hit.UV),
	}, true
}

// Emitted returns false: Lambertian surfaces never emit.
func (l *Lambertian) Emitted(core.Vec2) (core.Vec3, bool) {
	return core.Vec3{}, false
}
