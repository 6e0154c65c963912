package clip

import "math"

// Classification of active vertices. A vertex is "convex" here in a stronger
// sense than pure angle convexity: its interior angle must be under 180° and
// the segment joining its two current neighbors must be a valid diagonal of
// the polygon. Only convex vertices are candidates for ears.

// angleAt is the signed turn at vertex i, measured between the normalized
// edges pointing from i toward its ring predecessor and successor. With
// clockwise winding, convex interior angles land in (0, π) and reflex ones
// in (-π, 0).
func (t *Triangulator) angleAt(i int) float64 {
	p := t.points[i]
	in := t.points[t.ring.Prev(i)].Sub(p).Normalize()
	out := t.points[t.ring.Next(i)].Sub(p).Normalize()
	return math.Atan2(in.Cross(out), in.Dot(out))
}

// reflexAt reports whether the interior angle at i exceeds 180°. Exact
// boundary turns are ties and resolve to convex: a turn of 0, and a turn of
// ±π (three collinear vertices, interior angle of exactly 180°), are both
// convex.
func (t *Triangulator) reflexAt(i int) bool {
	a := t.angleAt(i)
	return a < 0 && a != -math.Pi
}

// diagonal reports whether the segment a-b lies entirely inside the polygon.
// It must not properly cross any cached boundary segment it doesn't share an
// endpoint with, and its midpoint must be interior by the even-odd rule: a
// horizontal ray cast past the polygon's maximum x must cross the boundary an
// odd number of times. The crossing check runs first and short-circuits.
func (t *Triangulator) diagonal(a, b Point) bool {
	for _, s := range t.boundary {
		if s.Start == a || s.Start == b || s.End == a || s.End == b {
			continue
		}
		if Intersects(a, b, s.Start, s.End) {
			return false
		}
	}

	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	far := Point{X: t.maxX + 1, Y: mid.Y}
	crossings := 0
	for _, s := range t.boundary {
		if Intersects(mid, far, s.Start, s.End) {
			crossings++
		}
	}
	return crossings%2 == 1
}

func (t *Triangulator) convexAt(i int) bool {
	if t.reflexAt(i) {
		return false
	}
	return t.diagonal(t.points[t.ring.Prev(i)], t.points[t.ring.Next(i)])
}

// earAt reports whether clipping i would be safe: no currently-reflex vertex,
// other than the candidate triangle's own corners, may lie inside or on the
// triangle formed by i and its ring neighbors.
func (t *Triangulator) earAt(i int) bool {
	p, n := t.ring.Prev(i), t.ring.Next(i)
	a, b, c := t.points[p], t.points[i], t.points[n]
	ok := true
	t.reflex.Each(func(j int) bool {
		if j == p || j == i || j == n {
			return true
		}
		if inTriangle(t.points[j], a, b, c) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// inTriangle is a barycentric containment test with inclusive bounds, so
// points on the triangle's boundary count as inside.
func inTriangle(p, a, b, c Point) bool {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	alpha := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / denom
	beta := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / denom
	gamma := 1 - alpha - beta
	return alpha >= 0 && alpha <= 1 &&
		beta >= 0 && beta <= 1 &&
		gamma >= 0 && gamma <= 1
}
