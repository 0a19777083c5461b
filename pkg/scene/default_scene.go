package scene

import (
	"github.com/ejharv/boxtracer/pkg/core"
	"github.com/ejharv/boxtracer/pkg/lights"
)

// NewDefaultScene creates the reference scene: a single green cube viewed
// from far off to the side, so most of the frame stays background.
func NewDefaultScene() *Scene {
	return &Scene{
		Objects: []core.Hittable{
			mustBox(core.NewVec3(0, 0, -5), 2, core.NewVec3(0, 1, 0)),
		},
		Light:          lights.NewPointLight(core.NewVec3(-3, -4, -10), 1.5),
		CameraPosition: core.NewVec3(22, -2, 0),
		FOV:            90,
		Width:          800,
		Height:         600,
	}
}

// NewFacingScene creates a scene with the camera at the origin looking
// straight at the cube, lit from the camera position so brightness peaks
// where the view direction meets the front face head-on.
func NewFacingScene() *Scene {
	return &Scene{
		Objects: []core.Hittable{
			mustBox(core.NewVec3(0, 0, -5), 2, core.NewVec3(0, 1, 0)),
		},
		Light:          lights.NewPointLight(core.NewVec3(0, 0, 0), 0.9),
		CameraPosition: core.NewVec3(0, 0, 0),
		FOV:            90,
		Width:          100,
		Height:         100,
	}
}

// NewCubesScene creates a scene with three cubes at different depths to
// exercise nearest-hit resolution across multiple objects.
func NewCubesScene() *Scene {
	return &Scene{
		Objects: []core.Hittable{
			mustBox(core.NewVec3(-2.2, 0, -6), 1.5, core.NewVec3(0.9, 0.2, 0.2)),
			mustBox(core.NewVec3(0, 0, -5), 2, core.NewVec3(0, 1, 0)),
			mustBox(core.NewVec3(2.4, -0.5, -7), 2, core.NewVec3(0.2, 0.3, 0.9)),
		},
		Light:          lights.NewPointLight(core.NewVec3(1, 2, 2), 1.2),
		CameraPosition: core.NewVec3(0, 0, 1),
		FOV:            70,
		Width:          640,
		Height:         480,
	}
}
