// An ear clipping triangulation package for Go.
//
// This package converts a simple, hole-free polygon into a set of triangles
// covering exactly its interior, with every triangle referencing three of the
// original vertex indices. Input must wind clockwise; run Clockwise first if
// the order is unknown.
package earclip

import "github.com/ComradeVanti/earclip/clip"

type Point = clip.Point
type Segment = clip.Segment
type Triangle = clip.Triangle
type Triangulation = clip.Triangulation
type Triangulator = clip.Triangulator

var (
	ErrInput      = clip.ErrInput
	ErrGeometry   = clip.ErrGeometry
	ErrDegenerate = clip.ErrDegenerate
)

// Triangulate converts a simple clockwise polygon of n points into n-2
// triangles. Input is validated before any clipping starts; on numeric
// degeneracy the triangles produced so far are returned alongside an
// ErrDegenerate error.
func Triangulate(points []Point) (*Triangulation, error) {
	return clip.Triangulate(points)
}

// NewTriangulator returns a lazy triangulation session over points, yielding
// one triangle per call to Next. Stopping early is always safe, and separate
// sessions share no state.
func NewTriangulator(points []Point) (*Triangulator, error) {
	return clip.NewTriangulator(points)
}

// Clockwise reorders a point sequence into the clockwise winding the
// triangulator expects. It is idempotent.
func Clockwise(points []Point) []Point {
	return clip.Clockwise(points)
}

// SignedArea is the polygon's shoelace area, negative for clockwise winding.
func SignedArea(points []Point) float64 {
	return clip.SignedArea(points)
}

// Area is the polygon's absolute area, independent of winding.
func Area(points []Point) float64 {
	return clip.Area(points)
}

// CheckSimple reports whether any two non-adjacent polygon edges intersect.
// Triangulate does not run this check; callers that cannot trust their input
// can.
func CheckSimple(points []Point) error {
	return clip.CheckSimple(points)
}
