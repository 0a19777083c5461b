package renderer

import (
	"fmt"
	"math"

	"github.com/ejharv/boxtracer/pkg/core"
)

// Camera is a pinhole camera at a fixed position looking down the -Z axis.
type Camera struct {
	position core.Vec3
	width    int
	height   int
	aspect   float64
	scale    float64 // tan(fov/2)
}

// NewCamera creates a pinhole camera for a width x height image with the
// given vertical field of view in degrees.
func NewCamera(position core.Vec3, width, height int, fovDegrees float64) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d",
			core.ErrInvalidConfiguration, width, height)
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return nil, fmt.Errorf("%w: fov must be in (0, 180) degrees, got %g",
			core.ErrInvalidConfiguration, fovDegrees)
	}

	return &Camera{
		position: position,
		width:    width,
		height:   height,
		aspect:   float64(width) / float64(height),
		scale:    math.Tan(fovDegrees * 0.5 * math.Pi / 180),
	}, nil
}

// GetRay generates the ray through the center of pixel (x, y). Row 0 is the
// top of the image, so the vertical axis is flipped.
func (c *Camera) GetRay(x, y int) core.Ray {
	px := (2*(float64(x)+0.5)/float64(c.width) - 1) * c.aspect * c.scale
	py := (1 - 2*(float64(y)+0.5)/float64(c.height)) * c.scale

	direction := core.NewVec3(px, py, -1).Normalize()
	return core.NewRay(c.position, direction)
}
