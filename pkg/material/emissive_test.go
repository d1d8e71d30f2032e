package material

import (
	"math/rand"
	"testing"

	"github.com/danaf/gorender/pkg/core"
)

func TestDiffuseEmissiveNeverScattersAlwaysEmits(t *testing.T) {
	e := NewDiffuseEmissive(core.NewVec3(1, 0.5, 0.2), 4.0)
	random := rand.New(rand.NewSource(1))

	if _, ok := e.Scatter(core.Ray{}, HitRecord{}, random); ok {
		t.Error("DiffuseEmissive should never scatter")
	}

	emission, ok := e.Emitted(core.NewVec2(0.3, 0.9))
	if !ok {
		t.Fatal("DiffuseEmissive should always emit")
	}
	want := core.NewVec3(4, 2, 0.8)
	if !emission.Equals(want) {
		t.Errorf("Emitted = %v, want %v", emission, want)
	}
}
