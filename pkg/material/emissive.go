package material

import (
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
)

// DiffuseEmissive is a light-emitting material that never scatters
// (spec.md 4.8). The emitted radiance is the color/intensity product,
// computed once at construction.
type DiffuseEmissive struct {
	emission core.Vec3
}

// NewDiffuseEmissive creates an emissive material from a color and an
// intensity (> 0); the two are stored pre-multiplied.
func NewDiffuseEmissive(color core.Vec3, intensity float64) *DiffuseEmissive {
	return &DiffuseEmissive{emission: color.Multiply(intensity)}
}

// Scatter never succeeds: emissive materials absorb every incoming ray.
func (e *DiffuseEmissive) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted always returns the color*intensity product, regardless of uv.
func (e *DiffuseEmissive) Emitted(core.Vec2) (core.Vec3, bool) {
	return e.emission, true
}
