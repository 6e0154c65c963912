package clip

// Clockwise returns points in clockwise winding order, the order the
// triangulator expects. The orientation is judged by the signed turn of the
// first three points only: if that turn is clockwise (or the three points are
// collinear) the input is returned as is, otherwise a reversed copy is
// returned.
//
// Judging by the first three points is a known limitation: if the second
// point is a reflex vertex, the local turn disagrees with the global winding.
// Callers with arbitrary input should start their point list at a convex
// vertex, or orient by signed area themselves.
func Clockwise(points []Point) []Point {
	if len(points) < 3 || firstTurn(points) >= 0 {
		return points
	}
	reversed := make([]Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

func firstTurn(points []Point) float64 {
	p1, p2, p3 := points[0], points[1], points[2]
	return (p2.Y-p1.Y)*(p3.X-p2.X) - (p3.Y-p2.Y)*(p2.X-p1.X)
}
