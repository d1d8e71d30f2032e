package renderer

import (
	"math"
	"testing"

	"github.com/danaf/gorender/pkg/core"
)

func TestCameraLooksDownNegativeZ(t *testing.T) {
	cam := NewCamera(CameraConfig{
		Width: 200, Height: 100, VFov: math.Pi / 2,
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
	})

	if !cam.Eye.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Eye = %v, want origin", cam.Eye)
	}

	center := cam.RayAt(cam.Height/2, cam.Width/2, 0, 0)
	if center.Direction.Z >= 0 {
		t.Errorf("center ray direction.Z = %v, want < 0 (camera looks down -z)", center.Direction.Z)
	}
}

func TestCameraPixelDeltasSpanViewport(t *testing.T) {
	cam := NewCamera(CameraConfig{
		Width: 400, Height: 200, VFov: math.Pi / 4,
		LookFrom: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
	})

	topLeft := cam.RayAt(0, 0, -0.5, -0.5)
	bottomRight := cam.RayAt(cam.Height-1, cam.Width-1, 0.5, 0.5)

	if topLeft.Direction.X >= bottomRight.Direction.X {
		t.Error("expected top-left ray to point further left than bottom-right")
	}
	if topLeft.Direction.Y <= bottomRight.Direction.Y {
		t.Error("expected top-left ray to point further up than bottom-right")
	}
}

func TestCameraJitterStaysWithinPixel(t *testing.T) {
	cam := NewCamera(CameraConfig{
		Width: 10, Height: 10, VFov: math.Pi / 3,
		LookFrom: core.NewVec3(0, 0, 2),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
	})

	unjittered := cam.RayAt(5, 5, 0, 0)
	jittered := cam.RayAt(5, 5, 0.49, -0.49)

	duDist := jittered.Direction.Subtract(unjittered.Direction).Length()
	pixelSpan := cam.Du.Length() + cam.Dv.Length()
	if duDist > pixelSpan {
		t.Errorf("jittered ray strayed %v beyond pixel span %v", duDist, pixelSpan)
	}
}
