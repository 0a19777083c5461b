package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/ejharv/boxtracer/pkg/core"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()
	box, err := NewBox(core.NewVec3(0, 0, -5), 2, core.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatalf("Failed to create box: %v", err)
	}
	return box
}

func TestNewBox_InvalidSide(t *testing.T) {
	tests := []struct {
		name string
		side float64
	}{
		{"zero side", 0},
		{"negative side", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBox(core.NewVec3(0, 0, 0), tt.side, core.NewVec3(1, 1, 1))
			if !errors.Is(err, core.ErrInvalidGeometry) {
				t.Errorf("Expected ErrInvalidGeometry, got: %v", err)
			}
		})
	}
}

func TestBox_Intersect_FaceCenter(t *testing.T) {
	box := newTestBox(t)

	// Ray aimed at the center of the front face, along its inward normal
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := box.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Front face plane sits at z=-4, so the distance is exactly 4
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}

	if hit.Color != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected box color on hit, got %v", hit.Color)
	}
}

func TestBox_Intersect_NearestFaceWins(t *testing.T) {
	box := newTestBox(t)

	// The ray passes through both z faces; the front face (t=4) must win
	// over the back face (t=6)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := box.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest face at t=4, got t=%f", hit.T)
	}
}

func TestBox_Intersect_SideFace(t *testing.T) {
	box := newTestBox(t)

	// Ray from the right aimed at the +x face center
	ray := core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(-1, 0, 0))

	hit, isHit := box.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if hit.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected outward normal (1,0,0), got %v", hit.Normal)
	}
}

func TestBox_Intersect_RayPointingAway(t *testing.T) {
	box := newTestBox(t)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, isHit := box.Intersect(ray); isHit {
		t.Errorf("Expected miss for ray pointing away, but got hit at t=%f", hit.T)
	}
}

func TestBox_Intersect_RayFarOutside(t *testing.T) {
	box := newTestBox(t)

	// Origin far outside, direction entirely away from the box
	ray := core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(1, 0, 0))

	if hit, isHit := box.Intersect(ray); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

// The face bound test accepts hits up to and including half a side from the
// face reference point, so a ray grazing exactly along a face edge still hits.
func TestBox_Intersect_FaceEdgeAccepted(t *testing.T) {
	box := newTestBox(t)

	// Hits the front face at (0, 1, -4), exactly on the top edge
	edgeRay := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1))

	hit, isHit := box.Intersect(edgeRay)
	if !isHit {
		t.Fatal("Expected edge hit to be accepted, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	// Just outside the edge is rejected
	outsideRay := core.NewRay(core.NewVec3(0, 1.001, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := box.Intersect(outsideRay); isHit {
		t.Errorf("Expected miss just outside the face, but got hit at t=%f", hit.T)
	}
}

func TestBox_Intersect_OffCenterFaceBound(t *testing.T) {
	box := newTestBox(t)

	// An off-center ray through the front face: the bound check compares the
	// hit point against the face reference point componentwise
	ray := core.NewRay(core.NewVec3(0.5, -0.5, 0), core.NewVec3(0, 0, -1))

	hit, isHit := box.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected front face normal, got %v", hit.Normal)
	}

	expectedPoint := core.NewVec3(0.5, -0.5, -4)
	tolerance := 1e-9
	if math.Abs(hit.Point.X-expectedPoint.X) > tolerance ||
		math.Abs(hit.Point.Y-expectedPoint.Y) > tolerance ||
		math.Abs(hit.Point.Z-expectedPoint.Z) > tolerance {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}
