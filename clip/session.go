package clip

import (
	"math"

	"github.com/pkg/errors"
)

// Triangulator is one triangulation session: it owns the vertex ring, the
// convex/reflex/ear sets and the boundary segment cache, and yields one
// triangle per call to Next. All state is private to the session, so separate
// sessions may run concurrently without coordination. Abandoning a session
// early is always safe; there is nothing to clean up.
type Triangulator struct {
	points   []Point
	boundary []Segment
	maxX     float64

	ring   *ring
	convex *indexSet
	reflex *indexSet
	ear    *indexSet

	produced int
	expected int
	trivial  bool
	done     bool
	err      error
}

// NewTriangulator validates points eagerly and prepares a session over them.
// The input must already be a simple polygon in clockwise winding (see
// Clockwise); that assumption is not checked here, but CheckSimple can be run
// beforehand by callers that want it verified.
//
// The points are copied: the boundary cache has to outlive any later mutation
// of the caller's slice.
func NewTriangulator(points []Point) (*Triangulator, error) {
	if err := validateInput(points); err != nil {
		return nil, err
	}
	if SignedArea(points) == 0 {
		return nil, errors.Wrap(ErrDegenerate, "polygon has zero area")
	}

	n := len(points)
	t := &Triangulator{
		points:   append([]Point(nil), points...),
		expected: n - 2,
	}

	// A triangle needs no classification at all.
	if n == 3 {
		t.trivial = true
		return t, nil
	}

	t.boundary = make([]Segment, n)
	t.maxX = math.Inf(-1)
	for i, p := range t.points {
		t.boundary[i] = Segment{Start: p, End: t.points[(i+1)%n]}
		t.maxX = math.Max(t.maxX, p.X)
	}

	t.ring = newRing(n)
	t.convex = newIndexSet(n)
	t.reflex = newIndexSet(n)
	t.ear = newIndexSet(n)

	// Initial classification, in two passes: the ear test walks the reflex
	// set, so that set must be complete first.
	for i := 0; i < n; i++ {
		if t.convexAt(i) {
			t.convex.Add(i)
		} else {
			t.reflex.Add(i)
		}
	}
	t.convex.Each(func(i int) bool {
		if t.earAt(i) {
			t.ear.Add(i)
		}
		return true
	})

	return t, nil
}

// Next clips one ear and returns its triangle. It returns false once the
// polygon is exhausted; check Err afterwards to distinguish a complete
// triangulation from one cut short by numeric degeneracy.
func (t *Triangulator) Next() (Triangle, bool) {
	if t.done {
		return Triangle{}, false
	}

	if t.trivial {
		t.produced++
		t.done = true
		return Triangle{A: 0, B: 1, C: 2}, true
	}

	if t.ear.Empty() {
		// Under exact arithmetic a simple polygon always has an ear; an empty
		// ear set mid-run means floating point error broke the guarantee.
		t.done = true
		t.err = errors.Wrapf(ErrDegenerate,
			"ear set exhausted after %d of %d triangles", t.produced, t.expected)
		return Triangle{}, false
	}

	tip := t.ear.PopFront()
	prev, next := t.ring.Prev(tip), t.ring.Next(tip)
	t.ring.Remove(tip)
	t.convex.Remove(tip)
	t.produced++

	if t.ring.Len() < 3 {
		t.done = true
	} else {
		t.reclassify(prev)
		t.reclassify(next)
	}

	return Triangle{A: prev, B: tip, C: next}, true
}

// reclassify moves a clipped ear's neighbor between the classification sets.
// Dispatch is on the vertex's current membership, checked ear before convex
// before reflex since an ear is always also convex.
func (t *Triangulator) reclassify(i int) {
	switch {
	case t.ear.Contains(i):
		if !t.earAt(i) {
			t.ear.Remove(i)
			if !t.convexAt(i) {
				t.convex.Remove(i)
				t.reflex.Add(i)
			}
		}
	case t.convex.Contains(i):
		if !t.convexAt(i) {
			t.convex.Remove(i)
			t.reflex.Add(i)
		} else if t.earAt(i) {
			t.ear.Add(i)
		}
	default:
		if t.convexAt(i) {
			t.reflex.Remove(i)
			t.convex.Add(i)
			if t.earAt(i) {
				t.ear.Add(i)
			}
		}
	}
}

// Err returns nil after a complete run, or an ErrDegenerate-wrapped error if
// the session stopped before producing all expected triangles. It is only
// meaningful once Next has returned false.
func (t *Triangulator) Err() error {
	return t.err
}

// Produced returns how many triangles the session has emitted so far. A full
// triangulation of n points emits n-2.
func (t *Triangulator) Produced() int {
	return t.produced
}

// Remaining returns how many triangles the session has yet to emit, assuming
// it runs to completion.
func (t *Triangulator) Remaining() int {
	return t.expected - t.produced
}

// Triangulation is the eager result of a triangulate call.
type Triangulation struct {
	Points    []Point
	Triangles []Triangle
}

// Triangulate runs a session to completion. On numeric degeneracy the
// triangles produced so far are returned together with an ErrDegenerate
// error; any other error means no triangles were produced.
func Triangulate(points []Point) (*Triangulation, error) {
	t, err := NewTriangulator(points)
	if err != nil {
		return nil, err
	}
	triangles := make([]Triangle, 0, t.expected)
	for {
		tri, ok := t.Next()
		if !ok {
			break
		}
		triangles = append(triangles, tri)
	}
	return &Triangulation{Points: t.points, Triangles: triangles}, t.Err()
}

// Indices flattens the triangulation into consecutive runs of three original
// vertex indices, 3(n-2) in total for a complete run.
func (tr *Triangulation) Indices() []int {
	indices := make([]int, 0, 3*len(tr.Triangles))
	for _, tri := range tr.Triangles {
		indices = append(indices, tri.A, tri.B, tri.C)
	}
	return indices
}

// Corners resolves a triangle's indices to its vertex coordinates.
func (tr *Triangulation) Corners(tri Triangle) (Point, Point, Point) {
	return tr.Points[tri.A], tr.Points[tri.B], tr.Points[tri.C]
}

// SignedArea sums the signed areas of the emitted triangles. For a complete
// triangulation it matches the polygon's own signed area: no gaps, no double
// coverage.
func (tr *Triangulation) SignedArea() float64 {
	var sum float64
	for _, tri := range tr.Triangles {
		sum += triangleArea(tr.Points[tri.A], tr.Points[tri.B], tr.Points[tri.C])
	}
	return sum
}
