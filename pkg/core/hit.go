package core

// HitRecord records a ray/primitive intersection: the parametric distance
// along the ray, the point struck, the outward surface normal there, and the
// color of the struck surface.
type HitRecord struct {
	T      float64
	Point  Vec3
	Normal Vec3
	Color  Vec3
}

// Hittable is implemented by any primitive that can report its nearest
// intersection with a ray.
type Hittable interface {
	Intersect(ray Ray) (HitRecord, bool)
}
