package material

import (
	"math/rand"
	"testing"

	"github.com/danaf/gorender/pkg/core"
)

func TestMetalScattersOnlyAboveNormal(t *testing.T) {
	m := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	random := rand.New(rand.NewSource(1))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	// Incoming ray straight down reflects straight up: should scatter.
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	result, ok := m.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("expected scatter for reflection above the normal")
	}
	if got := result.Scattered.Direction.Dot(normal); got <= 0 {
		t.Errorf("dot(scattered, normal) = %v, want > 0", got)
	}
	if !result.Attenuation.Equals(m.Albedo) {
		t.Errorf("Attenuation = %v, want albedo %v", result.Attenuation, m.Albedo)
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("Fuzz = %v, want clamped to 1.0", m.Fuzz)
	}
	m2 := NewMetal(core.NewVec3(1, 1, 1), -5.0)
	if m2.Fuzz != 0.0 {
		t.Errorf("Fuzz = %v, want clamped to 0.0", m2.Fuzz)
	}
}

func TestMetalNeverEmits(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 0)
	if _, ok := m.Emitted(core.Vec2{}); ok {
		t.Error("Metal should never emit")
	}
}
