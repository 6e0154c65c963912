package clip

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D point. It aliases r2.Point so callers can use the golang/geo
// vector operations (Sub, Dot, Cross, Normalize) directly on polygon vertices.
type Point = r2.Point

// Segment is one edge of the original polygon boundary. The boundary segments
// are cached from the initial polygon and never change as vertices are
// clipped, so diagonal tests always run against the full original outline.
type Segment struct {
	Start Point
	End   Point
}

// Triangle references three original polygon vertex indices. B is the clipped
// ear tip; A and C were its ring neighbors at the moment it was clipped.
// Indices are stable identifiers into the input point slice, regardless of
// the order in which vertices were removed.
type Triangle struct {
	A, B, C int
}

// SignedArea is the shoelace area of the polygon. It is negative for
// clockwise winding, which is the order the triangulator works in.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		sum += p.Cross(points[(i+1)%len(points)])
	}
	return sum / 2
}

// Area is the absolute shoelace area, independent of winding.
func Area(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

func triangleArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}
