package gml

import (
	"cmp"
	"math"
	"slices"
)

// ConvexHull returns the vertices of the smallest convex polygon containing
// every point of the stroke, using Andrew's monotone chain.
//
// Points are deduplicated by position and sorted by (x, y). Vertices are
// listed counter-clockwise in y-up coordinates, starting from the smallest
// point. Points lying on a hull edge are not vertices. Input with fewer than
// two distinct positions returns those positions; collinear input returns
// its two extreme points. Each vertex keeps the timestamp of the first point
// found at its position after sorting.
func (s Stroke) ConvexHull() Stroke {
	pts := slices.Clone(s.points)
	slices.SortStableFunc(pts, func(a, b TimedPoint) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.CompactFunc(pts, func(a, b TimedPoint) bool {
		return a.X == b.X && a.Y == b.Y
	})
	if len(pts) <= 1 {
		return Stroke{points: pts}
	}

	lower := make([]TimedPoint, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]TimedPoint, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := slices.Concat(lower[:len(lower)-1], upper[:len(upper)-1])
	return Stroke{points: hull}
}

// turn returns the cross product of (a→b) and (a→c): positive for a
// left turn, negative for a right turn, zero when collinear.
func turn(a, b, c TimedPoint) float64 {
	return b.XY().Sub(a.XY()).Cross(c.XY().Sub(a.XY()))
}

// HullArea returns the area of the convex hull, or 0 when the hull has fewer
// than three vertices.
func (s Stroke) HullArea() float64 {
	return polygonArea(s.ConvexHull().points)
}

// polygonArea returns the absolute shoelace area of a closed polygon.
func polygonArea(pts []TimedPoint) float64 {
	if len(pts) < 3 {
		return 0
	}
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - p.Y*q.X
	}
	return math.Abs(area) / 2
}
