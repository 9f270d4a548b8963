package gml

// SelfIntersectionCount returns the number of crossings between
// non-adjacent segments of the stroke's polyline.
//
// The count is a best-effort heuristic built on the orientation test:
// collinear overlapping segments, segments that share an endpoint and
// endpoints lying exactly on another segment are not reliably detected.
// Each pair of segments is tested in both orders and the total is halved.
// The cost is quadratic in the number of points.
func (s Stroke) SelfIntersectionCount() int {
	n := len(s.points) - 1
	if n < 3 {
		return 0
	}
	count := 0
	for i := 0; i < n; i++ {
		a, b := s.points[i].XY(), s.points[i+1].XY()
		for j := 0; j < n; j++ {
			if j >= i-1 && j <= i+1 {
				continue
			}
			if segmentsCross(a, b, s.points[j].XY(), s.points[j+1].XY()) {
				count++
			}
		}
	}
	return count / 2
}

// ccw reports whether a, b, c are in strictly counter-clockwise order.
func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// segmentsCross reports whether segment ab crosses segment cd.
func segmentsCross(a, b, c, d Point) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}
