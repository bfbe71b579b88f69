package physics

import (
	"testing"

	"bolamiga/internal/entity"
)

func circleAt(x, y, r float64) *entity.Entity {
	return &entity.Entity{X: x, Y: y, Shape: entity.Circle(r), Alive: true}
}

func boxAt(x, y, hw, hh float64) *entity.Entity {
	return &entity.Entity{X: x, Y: y, Shape: entity.Box(hw, hh), Alive: true}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 2, 3, 0, 2) {
		t.Fatal("circles 3 apart with radii 2+2 should overlap")
	}
	// Exactly touching circles do not count as overlapping.
	if CirclesOverlap(0, 0, 2, 4, 0, 2) {
		t.Fatal("touching circles should not overlap")
	}
}

func TestOverlapCircleCircle(t *testing.T) {
	a := circleAt(0, 0, 2)
	b := circleAt(3, 0, 2)
	if !Overlap(a, b) {
		t.Fatal("circles within radius sum should overlap")
	}

	b.X = 4.001
	if Overlap(a, b) {
		t.Fatal("circles past radius sum should not overlap")
	}
}

func TestOverlapMixedShapesWidensCircles(t *testing.T) {
	c := circleAt(0, 0, 2)
	b := boxAt(3.4, 0, 1.5, 1.5)
	if !Overlap(c, b) {
		t.Fatal("circle widened to its box should overlap the box")
	}

	b.X = 3.6
	if Overlap(c, b) {
		t.Fatal("separated circle/box should not overlap")
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	c := circleAt(0, 0, 2)
	b := boxAt(3, 0.5, 1.5, 1.5)
	if Overlap(c, b) != Overlap(b, c) {
		t.Fatal("overlap must be symmetric")
	}
}

func TestGridFindsNeighborsWithoutWrapping(t *testing.T) {
	g := NewSpatialGrid(160, 96, 8.0)

	g.Insert(4, 4, 0)    // Left edge
	g.Insert(156, 92, 1) // Right edge

	// Query at the left edge must see index 0 only: the world does not
	// wrap, so the right-edge item stays out of reach.
	seen := map[int]bool{}
	g.QueryAround(2, 2, func(i int) bool {
		seen[i] = true
		return false
	})
	if !seen[0] || seen[1] {
		t.Fatalf("left-edge query saw %v, want only 0", seen)
	}
}

func TestGridQueryStopsEarly(t *testing.T) {
	g := NewSpatialGrid(160, 96, 8.0)
	g.Insert(50, 50, 0)
	g.Insert(50, 50, 1)

	calls := 0
	g.QueryAround(50, 50, func(i int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("query should stop on the first true, got %d calls", calls)
	}
}

func TestGridClampsOutOfRangePositions(t *testing.T) {
	g := NewSpatialGrid(160, 96, 8.0)
	g.Insert(-50, -50, 0)
	g.Insert(500, 500, 1)

	found := false
	g.QueryAround(0, 0, func(i int) bool {
		if i == 0 {
			found = true
		}
		return false
	})
	if !found {
		t.Fatal("out-of-range insert should clamp into the edge cell")
	}
}
