// Package loaders reads scene descriptions into renderable scenes.
package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ejharv/boxtracer/pkg/core"
	"github.com/ejharv/boxtracer/pkg/geometry"
	"github.com/ejharv/boxtracer/pkg/lights"
	"github.com/ejharv/boxtracer/pkg/scene"
)

// sceneFile is the on-disk JSON scene description
type sceneFile struct {
	Boxes []struct {
		Center [3]float64 `json:"center"`
		Side   float64    `json:"side"`
		Color  [3]float64 `json:"color"`
	} `json:"boxes"`
	Light struct {
		Position  [3]float64 `json:"position"`
		Intensity float64    `json:"intensity"`
	} `json:"light"`
	Camera struct {
		Position [3]float64 `json:"position"`
		FOV      float64    `json:"fov"`
	} `json:"camera"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LoadScene reads a JSON scene description from disk
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene builds a scene from a JSON scene description. Geometry errors
// (such as a non-positive box side) surface immediately; camera and image
// parameters are validated later at render entry.
func ParseScene(data []byte) (*scene.Scene, error) {
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene description: %w", err)
	}

	objects := make([]core.Hittable, 0, len(sf.Boxes))
	for i, b := range sf.Boxes {
		box, err := geometry.NewBox(toVec3(b.Center), b.Side, toVec3(b.Color))
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		objects = append(objects, box)
	}

	return &scene.Scene{
		Objects:        objects,
		Light:          lights.NewPointLight(toVec3(sf.Light.Position), sf.Light.Intensity),
		CameraPosition: toVec3(sf.Camera.Position),
		FOV:            sf.Camera.FOV,
		Width:          sf.Width,
		Height:         sf.Height,
	}, nil
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
