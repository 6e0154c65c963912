package clip

import "math"

// Intersects reports whether the segments a1-b1 and a2-b2 intersect, by the
// standard parametric cross product test.
//
// If the connecting vector between the segments is collinear with the first
// segment's direction, the segments intersect iff their coordinate ranges
// overlap. The ranges must overlap on both axes: for collinear segments that
// is exactly 1D overlap, since the axis the segments don't extend along
// overlaps trivially. Parallel but non-collinear segments never intersect. In
// the general case the crossing must lie strictly inside both segments, so
// segments that merely share an endpoint do not count.
func Intersects(a1, b1, a2, b2 Point) bool {
	r := b1.Sub(a1)
	s := b2.Sub(a2)
	q := a2.Sub(a1)

	if q.Cross(r) == 0 {
		return rangesOverlap(a1.X, b1.X, a2.X, b2.X) &&
			rangesOverlap(a1.Y, b1.Y, a2.Y, b2.Y)
	}

	denom := r.Cross(s)
	if denom == 0 {
		return false
	}

	t := q.Cross(s) / denom
	u := q.Cross(r) / denom
	return t > 0 && t < 1 && u > 0 && u < 1
}

func rangesOverlap(a, b, c, d float64) bool {
	lo1, hi1 := math.Min(a, b), math.Max(a, b)
	lo2, hi2 := math.Min(c, d), math.Max(c, d)
	return lo1 <= hi2 && lo2 <= hi1
}
