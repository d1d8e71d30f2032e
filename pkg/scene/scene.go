package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/danaf/gorender/pkg/core"
	"github.com/danaf/gorender/pkg/geometry"
	"github.com/danaf/gorender/pkg/loaders"
	"github.com/danaf/gorender/pkg/material"
	"github.com/danaf/gorender/pkg/renderer"
)

// Scene is the parsed, fully-built result of a scene file: a BVH-accelerated
// Hittable ready for the renderer, plus the camera configuration that
// produced it.
type Scene struct {
	World  geometry.Hittable
	Camera renderer.CameraConfig
}

// Parse reads and builds a scene from the JSON file at path. Malformed
// JSON, a missing camera (no positive width and height), or an unknown
// material/primitive type is surfaced as an error rather than attempting a
// partial render (spec.md 7). An empty or absent "scene" array is valid and
// yields an empty world.
func Parse(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	doc, err := unmarshalSceneJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene JSON: %w", err)
	}
	if doc.Camera.Width <= 0 || doc.Camera.Height <= 0 {
		return nil, fmt.Errorf("scene file has no camera with a positive width and height")
	}

	baseDir := filepath.Dir(path)

	list := geometry.NewHittableList()
	for i, p := range doc.Scene {
		hittable, err := buildPrimitive(p, baseDir)
		if err != nil {
			return nil, fmt.Errorf("scene entry %d: %w", i, err)
		}
		list.Add(hittable)
	}

	return &Scene{
		World:  geometry.NewBVH(list.Objects),
		Camera: buildCamera(doc.Camera),
	}, nil
}

func buildCamera(c cameraJSON) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:    c.Width,
		Height:   c.Height,
		VFov:     c.FovDeg * math.Pi / 180,
		LookFrom: vec3From(c.LookFrom),
		LookAt:   vec3From(c.LookAt),
		Up:       vec3From(c.Up),
	}
}

func buildPrimitive(p primitiveJSON, baseDir string) (geometry.Hittable, error) {
	switch p.Type {
	case "sphere":
		mat, err := buildMaterial(p.Material, baseDir)
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(vec3From(p.Center), p.Radius, mat), nil

	case "triangle":
		mat, err := buildMaterial(p.Material, baseDir)
		if err != nil {
			return nil, err
		}
		v0, v1, v2 := vec3From(p.V0), vec3From(p.V1), vec3From(p.V2)
		// The inline triangle primitive carries no per-vertex normals, so
		// all three corners share the flat face normal.
		flatNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
		return geometry.NewTriangle(
			geometry.Vertex{Position: v0, UV: vec2From(p.UV0), Normal: flatNormal},
			geometry.Vertex{Position: v1, UV: vec2From(p.UV1), Normal: flatNormal},
			geometry.Vertex{Position: v2, UV: vec2From(p.UV2), Normal: flatNormal},
			mat,
		), nil

	case "mesh":
		mat, err := buildMaterial(p.Material, baseDir)
		if err != nil {
			return nil, err
		}
		meshPath := p.File
		if !filepath.IsAbs(meshPath) {
			meshPath = filepath.Join(baseDir, meshPath)
		}
		transform := loaders.Transform{
			Translation: vec3From(p.Translate),
			Scale:       defaultUnitScale(p.Scale),
			Rotation:    vec3From(p.Rotate),
		}
		data, err := loaders.LoadOBJ(meshPath, transform)
		if err != nil {
			return nil, fmt.Errorf("loading mesh %q: %w", p.File, err)
		}
		return geometry.NewMesh(data.Positions, data.UVs, data.Normals, data.Indices, mat), nil

	default:
		return nil, fmt.Errorf("unknown primitive type %q", p.Type)
	}
}

func buildMaterial(m materialJSON, baseDir string) (material.Material, error) {
	switch m.Type {
	case "lambertian":
		if m.Texture != "" {
			texPath := m.Texture
			if !filepath.IsAbs(texPath) {
				texPath = filepath.Join(baseDir, texPath)
			}
			tex, err := loaders.LoadTexture(texPath, material.Nearest)
			if err != nil {
				return nil, fmt.Errorf("loading lambertian texture: %w", err)
			}
			return material.NewTexturedLambertian(material.NewImageColorSource(tex)), nil
		}
		return material.NewLambertian(vec3From(m.Albedo)), nil

	case "metal":
		return material.NewMetal(vec3From(m.Albedo), m.Fuzz), nil

	case "dielectric":
		return material.NewDielectric(m.Index), nil

	case "emissive":
		return material.NewDiffuseEmissive(vec3From(m.Color), m.Intensity), nil

	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func vec3From(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func vec2From(a [2]float64) core.Vec2 {
	return core.NewVec2(a[0], a[1])
}

// defaultUnitScale treats an all-zero scale (the JSON zero value, when the
// field is omitted) as identity scale (1,1,1) rather than collapsing the
// mesh to a point.
func defaultUnitScale(s [3]float64) core.Vec3 {
	if s[0] == 0 && s[1] == 0 && s[2] == 0 {
		return core.NewVec3(1, 1, 1)
	}
	return vec3From(s)
}
