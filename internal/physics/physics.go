// Package physics advances entity positions and adjudicates collisions.
package physics

import (
	"math"

	"bolamiga/internal/entity"
)

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// BoxesOverlap checks if two axis-aligned boxes (center + half extents)
// overlap.
func BoxesOverlap(x1, y1, hw1, hh1, x2, y2, hw2, hh2 float64) bool {
	return math.Abs(x1-x2) < hw1+hw2 && math.Abs(y1-y2) < hh1+hh2
}

// Overlap tests two entities using their declared bounding shapes.
// Circle-circle pairs use the sum of radii; any pair involving a box is
// tested box-box, with circles widened to their bounding box.
// Symmetric: Overlap(a, b) == Overlap(b, a).
func Overlap(a, b *entity.Entity) bool {
	as, bs := a.Shape, b.Shape
	if as.Kind == entity.ShapeCircle && bs.Kind == entity.ShapeCircle {
		return CirclesOverlap(a.X, a.Y, as.Radius, b.X, b.Y, bs.Radius)
	}
	ahw, ahh := halfExtents(as)
	bhw, bhh := halfExtents(bs)
	return BoxesOverlap(a.X, a.Y, ahw, ahh, b.X, b.Y, bhw, bhh)
}

func halfExtents(s entity.Shape) (hw, hh float64) {
	if s.Kind == entity.ShapeCircle {
		return s.Radius, s.Radius
	}
	return s.HalfW, s.HalfH
}

// MaxReach returns the largest interaction distance of a shape, used to
// size spatial grid cells.
func MaxReach(s entity.Shape) float64 {
	if s.Kind == entity.ShapeCircle {
		return s.Radius
	}
	return math.Max(s.HalfW, s.HalfH)
}
