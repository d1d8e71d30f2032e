// Package scene parses the external scene-description JSON (spec.md 6) into
// a built geometry.Hittable + renderer.CameraConfig pair. Parsing and mesh/texture
// loading are collaborators outside the rendering core; this package is the
// boundary where untrusted file contents become the core's typed data.
package scene

import "encoding/json"

// cameraJSON mirrors the "camera" object of the scene file.
type cameraJSON struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	FovDeg   float64    `json:"fov"`
	LookFrom [3]float64 `json:"lookFrom"`
	LookAt   [3]float64 `json:"lookAt"`
	Up       [3]float64 `json:"up"`
}

// materialJSON mirrors a "material" object, tagged by Type.
type materialJSON struct {
	Type string `json:"type"`

	Albedo    [3]float64 `json:"albedo"`
	Fuzz      float64    `json:"fuzz"`
	Index     float64    `json:"index"`
	Color     [3]float64 `json:"color"`
	Intensity float64    `json:"intensity"`
	Texture   string     `json:"texture"`
}

// primitiveJSON mirrors one entry of the "scene" array, tagged by Type.
// sphere uses Center/Radius; the supplemented triangle primitive uses
// V0/V1/V2 (+ optional per-vertex UV0/UV1/UV2; no per-vertex normals, the
// flat face normal is used); the supplemented mesh
// primitive references an external OBJ file plus a TRS transform.
type primitiveJSON struct {
	Type string `json:"type"`

	// sphere
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`

	// triangle (supplemented, spec.md 6 / original_source/apps/renderer/scene_parser.cpp)
	V0 [3]float64 `json:"v0"`
	V1 [3]float64 `json:"v1"`
	V2 [3]float64 `json:"v2"`
	UV0 [2]float64 `json:"uv0"`
	UV1 [2]float64 `json:"uv1"`
	UV2 [2]float64 `json:"uv2"`

	// mesh (supplemented)
	File      string     `json:"file"`
	Translate [3]float64 `json:"translate"`
	Scale     [3]float64 `json:"scale"`
	Rotate    [3]float64 `json:"rotate"`

	Material materialJSON `json:"material"`
}

// sceneJSON is the top-level scene file shape.
type sceneJSON struct {
	Camera cameraJSON       `json:"camera"`
	Scene  []primitiveJSON  `json:"scene"`
}

// unmarshalSceneJSON is a thin wrapper kept separate from Parse so tests can
// exercise malformed-JSON rejection without touching the filesystem.
func unmarshalSceneJSON(data []byte) (sceneJSON, error) {
	var doc sceneJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return sceneJSON{}, err
	}
	return doc, nil
}
