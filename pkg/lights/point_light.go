package lights

import "github.com/ejharv/boxtracer/pkg/core"

// PointLight is a light source at a single position with a scalar intensity.
// Immutable after creation.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Illuminate returns the Lambertian intensity at a surface point with the
// given unit normal: the cosine between the normal and the direction to the
// light, clamped at zero, scaled by the light intensity. Occluders are
// ignored (no shadow rays).
func (l PointLight) Illuminate(point, normal core.Vec3) float64 {
	lightDir := l.Position.Subtract(point).Normalize()
	cosine := lightDir.Dot(normal)
	if cosine < 0 {
		return 0
	}
	return cosine * l.Intensity
}
