package geometry

import (
	"math"

	"github.com/ejharv/boxtracer/pkg/core"
)

// parallelEpsilon is the threshold below which a ray counts as parallel to a
// plane and is reported as a miss rather than dividing by a tiny denominator.
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and an outward normal.
// The color is used when the plane is the struck face of a solid.
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (unit length)
	Color  core.Vec3 // Color of the surface, RGB in [0,1]
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(point, normal, color core.Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize(), Color: color}
}

// Intersect tests if a ray intersects the plane. Rays parallel to the plane
// and intersections behind the ray origin are misses.
func (p Plane) Intersect(ray core.Ray) (core.HitRecord, bool) {
	// Denominator: dot product of ray direction and plane normal
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < parallelEpsilon {
		return core.HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
		Color:  p.Color,
	}, true
}
