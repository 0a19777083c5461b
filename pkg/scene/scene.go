package scene

import (
	"github.com/ejharv/boxtracer/pkg/core"
	"github.com/ejharv/boxtracer/pkg/geometry"
	"github.com/ejharv/boxtracer/pkg/lights"
)

// Scene contains all the elements needed for rendering: the objects, the
// light, and the camera configuration. Everything is constructed once and
// read-only while a render is in flight.
type Scene struct {
	Objects        []core.Hittable   // Objects in the scene, in resolution order
	Light          lights.PointLight // The single point light
	CameraPosition core.Vec3
	FOV            float64 // Vertical field of view in degrees
	Width          int     // Default image width
	Height         int     // Default image height
}

// GetObjects returns the objects in scene order
func (s *Scene) GetObjects() []core.Hittable {
	return s.Objects
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() lights.PointLight {
	return s.Light
}

// GetCameraPosition returns the camera position
func (s *Scene) GetCameraPosition() core.Vec3 {
	return s.CameraPosition
}

// GetFOV returns the vertical field of view in degrees
func (s *Scene) GetFOV() float64 {
	return s.FOV
}

// mustBox builds a box for a hardcoded scene, panicking on bad literals
func mustBox(center core.Vec3, side float64, color core.Vec3) *geometry.Box {
	box, err := geometry.NewBox(center, side, color)
	if err != nil {
		panic(err)
	}
	return box
}
