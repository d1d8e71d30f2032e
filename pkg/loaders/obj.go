// Package loaders implements the external-collaborator boundary of the
// renderer: OBJ mesh loading and texture image decoding (scene JSON
// parsing lives in package scene). None of this package is part of the rendering core; it exists
// to hand the core plain data (positions/uvs/normals/indices, decoded byte
// buffers) it can consume without knowing where they came from.
package loaders

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/danaf/gorender/pkg/core"
)

// Transform describes the translation/scale/rotation applied to a loaded
// mesh before the normalize pass (spec.md 6). Rotation is XYZ order, in
// radians.
type Transform struct {
	Translation core.Vec3
	Scale       core.Vec3
	Rotation    core.Vec3
}

// IdentityTransform returns a Transform that leaves positions unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: core.NewVec3(1, 1, 1)}
}

// MeshData is the plain data an OBJ file resolves to: per-vertex
// position/uv/normal arrays plus a flat triangle index list, already
// transformed and normalized, ready for geometry.NewMesh.
type MeshData struct {
	Positions []core.Vec3
	UVs       []core.Vec2
	Normals   []core.Vec3
	Indices   []int
}

// LoadOBJ reads a Wavefront OBJ file, applies transform, then normalizes
// the result: centers it at the origin and scales it so its largest
// dimension is 2 units (spec.md 6). Faces with more than 3 vertices are
// triangle-fanned from the first vertex.
func LoadOBJ(path string, transform Transform) (MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return MeshData{}, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()

	var rawPositions []core.Vec3
	var rawUVs []core.Vec2
	var rawNormals []core.Vec3
	var faces [][]rawFaceVertex

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return MeshData{}, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			rawPositions = append(rawPositions, v)
		case "vt":
			u, errU := strconv.ParseFloat(fields[1], 64)
			v, errV := strconv.ParseFloat(fields[2], 64)
			if errU != nil || errV != nil {
				return MeshData{}, fmt.Errorf("obj line %d: malformed texture coordinate", lineNo)
			}
			rawUVs = append(rawUVs, core.NewVec2(u, v))
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return MeshData{}, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			rawNormals = append(rawNormals, n)
		case "f":
			verts := make([]rawFaceVertex, 0, len(fields)-1)
			for _, token := range fields[1:] {
				fv, err := parseFaceVertex(token)
				if err != nil {
					return MeshData{}, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				verts = append(verts, fv)
			}
			if len(verts) < 3 {
				return MeshData{}, fmt.Errorf("obj line %d: face needs at least 3 vertices", lineNo)
			}
			faces = append(faces, verts)
		}
	}
	if err := scanner.Err(); err != nil {
		return MeshData{}, fmt.Errorf("reading obj file: %w", err)
	}

	data := buildMeshData(rawPositions, rawUVs, rawNormals, faces)
	applyTransform(&data, transform)
	normalize(&data)
	return data, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components")
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return core.Vec3{}, fmt.Errorf("malformed vector")
	}
	return core.NewVec3(x, y, z), nil
}

type rawFaceVertex struct{ p, t, n int }

func parseFaceVertex(token string) (rawFaceVertex, error) {
	parts := strings.Split(token, "/")
	p, err := strconv.Atoi(parts[0])
	if err != nil {
		return rawFaceVertex{}, fmt.Errorf("malformed face index %q", token)
	}
	fv := rawFaceVertex{p: p - 1}
	if len(parts) > 1 && parts[1] != "" {
		t, err := strconv.Atoi(parts[1])
		if err != nil {
			return rawFaceVertex{}, fmt.Errorf("malformed face texture index %q", token)
		}
		fv.t = t - 1
	} else {
		fv.t = -1
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return rawFaceVertex{}, fmt.Errorf("malformed face normal index %q", token)
		}
		fv.n = n - 1
	} else {
		fv.n = -1
	}
	return fv, nil
}

// buildMeshData flattens OBJ's independently-indexed position/uv/normal
// streams into the parallel per-vertex arrays geometry.NewMesh expects,
// triangle-fanning any face with more than 3 vertices.
func buildMeshData(positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3, faces [][]rawFaceVertex) MeshData {
	var data MeshData
	vertexIndex := make(map[rawFaceVertex]int)

	resolve := func(fv rawFaceVertex) int {
		if idx, ok := vertexIndex[fv]; ok {
			return idx
		}
		idx := len(data.Positions)
		data.Positions = append(data.Positions, positions[fv.p])
		if fv.t >= 0 && fv.t < len(uvs) {
			data.UVs = append(data.UVs, uvs[fv.t])
		} else {
			data.UVs = append(data.UVs, core.NewVec2(0, 0))
		}
		if fv.n >= 0 && fv.n < len(normals) {
			data.Normals = append(data.Normals, normals[fv.n])
		} else {
			data.Normals = append(data.Normals, core.NewVec3(0, 1, 0))
		}
		vertexIndex[fv] = idx
		return idx
	}

	for _, face := range faces {
		anchor := resolve(face[0])
		for i := 1; i+1 < len(face); i++ {
			b := resolve(face[i])
			c := resolve(face[i+1])
			data.Indices = append(data.Indices, anchor, b, c)
		}
	}

	return data
}

// applyTransform rotates (XYZ order, radians), scales, then translates every
// position in place.
func applyTransform(data *MeshData, transform Transform) {
	for i, p := range data.Positions {
		rotated := p.Rotate(transform.Rotation)
		scaled := core.NewVec3(rotated.X*transform.Scale.X, rotated.Y*transform.Scale.Y, rotated.Z*transform.Scale.Z)
		data.Positions[i] = scaled.Add(transform.Translation)
	}
}

// normalize centers the mesh at the origin and scales it so its largest
// dimension is exactly 2 units (spec.md 6).
func normalize(data *MeshData) {
	if len(data.Positions) == 0 {
		return
	}

	min := data.Positions[0]
	max := data.Positions[0]
	for _, p := range data.Positions[1:] {
		min = core.NewVec3(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = core.NewVec3(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}

	center := min.Add(max).Multiply(0.5)
	size := max.Subtract(min)
	largest := math.Max(size.X, math.Max(size.Y, size.Z))
	if largest == 0 {
		return
	}
	scale := 2.0 / largest

	for i, p := range data.Positions {
		data.Positions[i] = p.Subtract(center).Multiply(scale)
	}
}
