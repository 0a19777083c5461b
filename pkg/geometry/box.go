package geometry

import (
	"fmt"
	"math"

	"github.com/ejharv/boxtracer/pkg/core"
)

// Box is an axis-aligned box built from six exclusively owned face planes,
// one per face, each carrying the outward face normal and the box color.
type Box struct {
	Center core.Vec3 // Center point of the box
	Side   float64   // Uniform extent along all three axes
	Color  core.Vec3 // Color of all faces, RGB in [0,1]
	planes [6]Plane  // The 6 face planes, created once at construction
}

// NewBox creates a box centered at center with the given uniform side length.
func NewBox(center core.Vec3, side float64, color core.Vec3) (*Box, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: box side must be positive, got %g", core.ErrInvalidGeometry, side)
	}

	b := &Box{Center: center, Side: side, Color: color}

	half := side / 2
	normals := [6]core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
	}
	for i, n := range normals {
		b.planes[i] = NewPlane(center.Add(n.Multiply(half)), n, color)
	}

	return b, nil
}

// Intersect tests the ray against all six faces and returns the nearest face
// hit that lies within the bounds of its face.
func (b *Box) Intersect(ray core.Ray) (core.HitRecord, bool) {
	closest := core.HitRecord{T: math.Inf(1)}
	found := false

	for _, face := range b.planes {
		hit, ok := face.Intersect(ray)
		if !ok || !b.onFace(hit) {
			continue
		}
		if hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	if !found {
		return core.HitRecord{}, false
	}
	return closest, true
}

// onFace reports whether a plane hit lies on the bounded face owned by that
// plane. The reference point sits half a side out along the face normal; the
// hit is accepted when every component is within half a side of it.
func (b *Box) onFace(hit core.HitRecord) bool {
	half := b.Side / 2
	reference := b.Center.Add(hit.Normal.Multiply(half))
	d := hit.Point.Subtract(reference)
	return math.Abs(d.X) <= half && math.Abs(d.Y) <= half && math.Abs(d.Z) <= half
}
