package clip

import (
	"math"

	"github.com/pkg/errors"
)

// Validation is eager: because the output is a lazy sequence, partial output
// already observed by a caller cannot be retracted, so every check that can
// fail runs before the first triangle is produced.

var (
	// ErrInput means the input cannot be a polygon at all: fewer than three
	// points, or a non-finite coordinate.
	ErrInput = errors.New("invalid input polygon")

	// ErrGeometry means the input is not a simple polygon. Only CheckSimple
	// reports it; the triangulator itself assumes simplicity.
	ErrGeometry = errors.New("polygon is not simple")

	// ErrDegenerate means floating point precision got in the way: the
	// polygon has zero area, or the ear set emptied out before the full
	// triangle count was reached. In the latter case the triangles produced
	// so far are still valid.
	ErrDegenerate = errors.New("numeric degeneracy")
)

func validateInput(points []Point) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInput, "need at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return errors.Wrapf(ErrInput, "point %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckSimple verifies that no two non-adjacent boundary edges intersect,
// using the same segment test the triangulator runs against candidate
// diagonals. This is an optional strictness pass; the triangulator does not
// run it. Adjacent edges are skipped, so an edge doubling back over its
// collinear neighbor is not caught.
func CheckSimple(points []Point) error {
	if err := validateInput(points); err != nil {
		return err
	}
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent around the wrap
			}
			if Intersects(points[i], points[(i+1)%n], points[j], points[(j+1)%n]) {
				return errors.Wrapf(ErrGeometry, "edge %d-%d crosses edge %d-%d",
					i, (i+1)%n, j, (j+1)%n)
			}
		}
	}
	return nil
}
