package material

import (
	"math"
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
)

// Dielectric is a transparent, refractive material such as glass
// (spec.md 4.8). RefractiveIndex is relative to air (assumed 1.0).
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given refractive
// index.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter always succeeds, attenuating by (1,1,1) and either reflecting or
// refracting depending on total internal reflection and a Schlick
// reflectance roll.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	var ratio float64
	if hit.FrontFace {
		ratio = 1.0 / d.RefractiveIndex
	} else {
		ratio = d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, ratio) > random.Float64() {
		direction = reflect(unitDir, hit.Normal)
	} else {
		direction = refract(unitDir, hit.Normal, ratio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Emitted returns false: Dielectric surfaces never emit.
func (d *Dielectric) Emitted(core.Vec2) (core.Vec3, bool) {
	return core.Vec3{}, false
}

// refract applies Snell's law to uv about a surface with normal n and
// relative refractive index etaiOverEtat.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance is Schlick's approximation of Fresnel reflectance.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
