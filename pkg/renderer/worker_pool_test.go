package renderer

import (
	"runtime"
	"testing"

	"github.com/ejharv/boxtracer/pkg/scene"
)

func TestNewWorkerPool_DefaultWorkerCount(t *testing.T) {
	s := scene.NewFacingScene()
	rt, err := NewRaytracer(s, 10, 10)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}

	pool := NewWorkerPool(rt, 0)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}

	pool = NewWorkerPool(rt, 3)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_Render_MatchesSequential(t *testing.T) {
	s := scene.NewFacingScene()

	rt, err := NewRaytracer(s, 64, 64)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}

	sequential, seqStats, err := rt.Render()
	if err != nil {
		t.Fatalf("Sequential render failed: %v", err)
	}

	// Uneven band split on purpose
	parallel, parStats, err := NewWorkerPool(rt, 5).Render()
	if err != nil {
		t.Fatalf("Parallel render failed: %v", err)
	}

	if seqStats != parStats {
		t.Errorf("Expected identical stats, got %+v and %+v", seqStats, parStats)
	}

	for y := 0; y < sequential.Height; y++ {
		for x := 0; x < sequential.Width; x++ {
			if sequential.At(x, y) != parallel.At(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: sequential %v, parallel %v",
					x, y, sequential.At(x, y), parallel.At(x, y))
			}
		}
	}
}

func TestWorkerPool_Render_MoreWorkersThanRows(t *testing.T) {
	s := scene.NewFacingScene()

	rt, err := NewRaytracer(s, 4, 3)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}

	fb, stats, err := NewWorkerPool(rt, 8).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if fb.Width != 4 || fb.Height != 3 {
		t.Errorf("Expected 4x3 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	if stats.TotalPixels != 12 {
		t.Errorf("Expected 12 pixels rendered, got %d", stats.TotalPixels)
	}
}
