package core

import "math/rand"

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// sphere, via rejection sampling.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed unit vector, used by
// Lambertian scattering (spec.md 4.8: normal + random_unit_vector()).
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// SampleJitter draws the per-sample pixel offset (jx, jy) in [-0.5, 0.5)^2
// used by the camera's primary-ray generation (spec.md 4.9).
func SampleJitter(random *rand.Rand) (float64, float64) {
	return random.Float64() - 0.5, random.Float64() - 0.5
}
