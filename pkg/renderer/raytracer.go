package renderer

import (
	"math"

	"github.com/ejharv/boxtracer/pkg/core"
	"github.com/ejharv/boxtracer/pkg/lights"
)

// ambientLight is the constant minimum illumination applied to every struck
// surface, approximating indirect light.
const ambientLight = 0.1

// Scene interface to avoid a circular import with the scene package
type Scene interface {
	GetObjects() []core.Hittable
	GetLight() lights.PointLight
	GetCameraPosition() core.Vec3
	GetFOV() float64
}

// Raytracer renders a scene into a framebuffer, casting one ray per pixel.
type Raytracer struct {
	scene  Scene
	camera *Camera
	width  int
	height int
}

// NewRaytracer creates a raytracer for the given output size. Invalid
// dimensions or field of view fail fast here, before any pixel is traced.
func NewRaytracer(scene Scene, width, height int) (*Raytracer, error) {
	camera, err := NewCamera(scene.GetCameraPosition(), width, height, scene.GetFOV())
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:  scene,
		camera: camera,
		width:  width,
		height: height,
	}, nil
}

// hitScene finds the nearest intersection along the ray across all objects.
// Distances compare with strict <, so of two equally near objects the one
// earlier in scene order wins.
func (rt *Raytracer) hitScene(ray core.Ray) (core.HitRecord, bool) {
	closest := core.HitRecord{T: math.Inf(1)}
	found := false

	for _, obj := range rt.scene.GetObjects() {
		if hit, ok := obj.Intersect(ray); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// renderPixel traces the ray for pixel (x, y) and returns its shaded color
// and whether anything was struck. Misses keep the background color.
func (rt *Raytracer) renderPixel(x, y int) (core.Vec3, bool) {
	ray := rt.camera.GetRay(x, y)

	hit, ok := rt.hitScene(ray)
	if !ok {
		return core.Vec3{}, false
	}

	intensity := rt.scene.GetLight().Illuminate(hit.Point, hit.Normal) + ambientLight
	return hit.Color.Multiply(intensity).Clamp(0.0, 1.0), true
}

// renderRows renders rows [yMin, yMax) into the framebuffer and returns
// statistics for the band. Bands never overlap, so concurrent calls on
// disjoint bands are safe without locking.
func (rt *Raytracer) renderRows(fb *Framebuffer, yMin, yMax int) RenderStats {
	var stats RenderStats

	for y := yMin; y < yMax; y++ {
		for x := 0; x < rt.width; x++ {
			stats.TotalPixels++
			pixel, ok := rt.renderPixel(x, y)
			if !ok {
				stats.MissCount++
				continue
			}
			stats.HitCount++
			fb.Set(x, y, pixel)
		}
	}

	return stats
}

// Render renders the full image sequentially
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	fb, err := NewFramebuffer(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := rt.renderRows(fb, 0, rt.height)
	return fb, stats, nil
}
