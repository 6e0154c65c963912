package clip

// This contains no actual tests. It is just a helper for checking
// triangulation validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const areaTolerance = 1e-6

// Helper to check that a triangulation of a simple clockwise polygon is
// valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. Every triangle has three pairwise-distinct indices in [0, n).
// 3. Every original vertex index appears in at least one triangle.
// 4. Every boundary edge of the polygon is an edge of some triangle.
// 5. The signed areas of the triangles sum to the polygon's signed area,
//    so there are no gaps, overlaps or double coverage.
func AssertValidTriangulation(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()
	n := len(points)
	require.Len(t, triangles, n-2, "a simple polygon of %d points must yield %d triangles", n, n-2)

	seen := make([]bool, n)
	edges := make(map[[2]int]struct{})
	var triArea float64
	for _, tri := range triangles {
		require.True(t, tri.A != tri.B && tri.B != tri.C && tri.A != tri.C,
			"triangle %v has repeated indices", tri)
		for _, i := range []int{tri.A, tri.B, tri.C} {
			require.GreaterOrEqual(t, i, 0, "triangle %v has an out of range index", tri)
			require.Less(t, i, n, "triangle %v has an out of range index", tri)
			seen[i] = true
		}
		edges[normalizedEdge(tri.A, tri.B)] = struct{}{}
		edges[normalizedEdge(tri.B, tri.C)] = struct{}{}
		edges[normalizedEdge(tri.C, tri.A)] = struct{}{}
		triArea += triangleArea(points[tri.A], points[tri.B], points[tri.C])
	}

	for i, used := range seen {
		require.True(t, used, "vertex %d appears in no triangle", i)
	}

	for i := range points {
		j := (i + 1) % n
		_, ok := edges[normalizedEdge(i, j)]
		require.True(t, ok, "boundary edge %d-%d is not an edge of any triangle", i, j)
	}

	require.InDelta(t, SignedArea(points), triArea, areaTolerance,
		"triangle areas must sum to the polygon area")
}

// An edge with its endpoints in a canonical order, so the same edge hashes
// the same both ways.
func normalizedEdge(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}
