package renderer

import (
	"math"
	"math/rand"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/geometry"
)

// shadowAcneEpsilon is the lower bound on t used when querying the scene
// from a hit point, to avoid a ray re-intersecting the surface it just left
// (spec.md 4.9).
const shadowAcneEpsilon = 0.001

// RenderConfig controls the sample loop (spec.md 4.9).
type RenderConfig struct {
	SamplesPerPixel int
	MaxDepth        int
}

// Raytracer owns the immutable scene and camera and produces radiance
// samples. It holds no mutable state of its own, so a single Raytracer can
// be shared (by value or pointer) across worker goroutines; each worker
// supplies its own *rand.Rand.
type Raytracer struct {
	scene  geometry.Hittable
	camera Camera
	config RenderConfig
}

// NewRaytracer creates a Raytracer over scene, as seen through camera.
func NewRaytracer(scene geometry.Hittable, camera Camera, config RenderConfig) *Raytracer {
	return &Raytracer{scene: scene, camera: camera, config: config}
}

// TracePixel renders one pixel: SamplesPerPixel jittered primary rays,
// averaged and gamma-encoded (spec.md 4.9, 4.11).
func (rt *Raytracer) TracePixel(row, col int, random *rand.Rand) core.Vec3 {
	sum := core.Vec3{}

	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		jx, jy := core.SampleJitter(random)
		ray := rt.camera.RayAt(row, col, jx, jy)
		sum = sum.Add(rt.trace(ray, rt.config.MaxDepth, random))
	}

	avg := sum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
	return gammaEncode(avg)
}

// trace implements the recursive radiance estimator of spec.md 4.9. The
// background is pure black; no sky gradient is evaluated at a miss.
func (rt *Raytracer) trace(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, ok := rt.scene.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !ok {
		return core.Vec3{}
	}

	color := core.Vec3{}

	if scatter, ok := hit.Material.Scatter(ray, *hit, random); ok {
		incoming := rt.trace(scatter.Scattered, depth-1, random)
		color = color.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	if emission, ok := hit.Material.Emitted(hit.UV); ok {
		color = color.Add(emission)
	}

	return color
}

// gammaEncode applies gamma-2 encoding (sqrt) per channel. A NaN channel —
// the result of an implementation bug upstream — is clamped to 0 rather
// than propagated into the image (spec.md 7).
func gammaEncode(c core.Vec3) core.Vec3 {
	return core.NewVec3(gammaChannel(c.X), gammaChannel(c.Y), gammaChannel(c.Z))
}

func gammaChannel(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Sqrt(v)
}
