package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/danaf/gorender/pkg/core"
)

func writeOBJFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing obj file: %v", err)
	}
	return path
}

// A 10-unit-wide shape (a quad plus one extra triangle), off-center and
// asymmetric, to exercise
// both the normalize pass and triangle fanning on a quad face.
const boxOBJ = `
v 0 0 0
v 10 0 0
v 10 10 0
v 0 10 0
v 0 0 10
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 -1
f 1/1/1 2/2/1 3/3/1 4/4/1
f 1/1/1 2/2/1 5/1/1
`

func TestLoadOBJNormalizesToUnitRange(t *testing.T) {
	path := writeOBJFile(t, boxOBJ)
	data, err := LoadOBJ(path, IdentityTransform())
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	var min, max core.Vec3 = data.Positions[0], data.Positions[0]
	for _, p := range data.Positions[1:] {
		min = core.NewVec3(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = core.NewVec3(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}

	size := max.Subtract(min)
	largest := math.Max(size.X, math.Max(size.Y, size.Z))
	if math.Abs(largest-2.0) > 1e-9 {
		t.Errorf("largest normalized dimension = %v, want 2.0", largest)
	}
}

func TestLoadOBJFanTriangulatesQuad(t *testing.T) {
	path := writeOBJFile(t, boxOBJ)
	data, err := LoadOBJ(path, IdentityTransform())
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	// The quad face (4 vertices) fans into 2 triangles (6 indices); the
	// triangle face contributes 1 more (3 indices) = 9 total.
	if len(data.Indices) != 9 {
		t.Errorf("len(Indices) = %d, want 9", len(data.Indices))
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), IdentityTransform()); err == nil {
		t.Fatal("expected an error for a missing OBJ file")
	}
}

func TestLoadOBJAppliesTransformBeforeNormalize(t *testing.T) {
	pathPlain := writeOBJFile(t, boxOBJ)
	plain, err := LoadOBJ(pathPlain, IdentityTransform())
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	pathShifted := writeOBJFile(t, boxOBJ)
	shifted, err := LoadOBJ(pathShifted, Transform{
		Translation: core.NewVec3(100, 0, 0),
		Scale:       core.NewVec3(1, 1, 1),
	})
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	// A pure translation washes out under normalize: the shape, and hence
	// every normalized position, should be identical either way.
	for i := range plain.Positions {
		if !plain.Positions[i].Equals(shifted.Positions[i]) {
			t.Errorf("position %d differs after a translate-then-normalize pass: %v vs %v", i, plain.Positions[i], shifted.Positions[i])
		}
	}
}
