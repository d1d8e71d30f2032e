package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/geometry"
	"github.com/danaf/gorender/pkg/material"
)

func testCamera() Camera {
	return NewCamera(CameraConfig{
		Width: 20, Height: 10, VFov: math.Pi / 2,
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
	})
}

// TestEmptySceneRendersBlack covers spec.md 8 scenario 6.
func TestEmptySceneRendersBlack(t *testing.T) {
	scene := geometry.NewHittableList()
	rt := NewRaytracer(scene, testCamera(), RenderConfig{SamplesPerPixel: 4, MaxDepth: 8})
	random := rand.New(rand.NewSource(1))

	color := rt.TracePixel(5, 10, random)
	if color != (core.Vec3{}) {
		t.Errorf("TracePixel on empty scene = %v, want (0,0,0)", color)
	}
}

func TestEmissiveSphereFillsFrameWithLight(t *testing.T) {
	scene := geometry.NewHittableList()
	mat := material.NewDiffuseEmissive(core.NewVec3(1, 1, 1), 2)
	scene.Add(geometry.NewSphere(core.NewVec3(0, 0, -3), 5, mat))

	rt := NewRaytracer(scene, testCamera(), RenderConfig{SamplesPerPixel: 1, MaxDepth: 8})
	random := rand.New(rand.NewSource(1))

	color := rt.TracePixel(5, 10, random)
	if color.X <= 0 {
		t.Errorf("expected positive radiance hitting an emissive sphere, got %v", color)
	}
}

func TestTraceDepthZeroReturnsBlack(t *testing.T) {
	scene := geometry.NewHittableList()
	mat := material.NewDiffuseEmissive(core.NewVec3(1, 1, 1), 2)
	scene.Add(geometry.NewSphere(core.NewVec3(0, 0, -3), 5, mat))

	rt := NewRaytracer(scene, testCamera(), RenderConfig{SamplesPerPixel: 1, MaxDepth: 0})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if got := rt.trace(ray, 0, random); got != (core.Vec3{}) {
		t.Errorf("trace at depth 0 = %v, want (0,0,0)", got)
	}
}

func TestGammaEncodeIsMonotoneAndHandlesNaN(t *testing.T) {
	if gammaChannel(4) != 2 {
		t.Errorf("gammaChannel(4) = %v, want 2", gammaChannel(4))
	}
	if gammaChannel(1) >= gammaChannel(4) {
		t.Error("expected gammaChannel to be monotone non-decreasing")
	}
	if gammaChannel(math.NaN()) != 0 {
		t.Error("expected NaN to clamp to 0")
	}
	if gammaChannel(-1) != 0 {
		t.Error("expected negative input to clamp to 0")
	}
}
