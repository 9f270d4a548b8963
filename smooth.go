package gml

import "slices"

const (
	// SmoothingMinPoints is the smallest stroke Smoothed will modify.
	SmoothingMinPoints = 7

	// SmoothingIterations is the fixed number of averaging passes.
	SmoothingIterations = 10
)

// Smoothed returns a copy of the stroke with its path smoothed by
// SmoothingIterations passes of a 3-point moving average.
//
// Each interior point moves to the mean position of itself and its two
// neighbours and keeps its own timestamp. The first and last points are
// pinned to their original values. Strokes with fewer than
// SmoothingMinPoints points are returned unchanged.
func (s Stroke) Smoothed() Stroke {
	cur := slices.Clone(s.points)
	if len(cur) < SmoothingMinPoints {
		return Stroke{points: cur}
	}

	next := make([]TimedPoint, len(cur))
	last := len(cur) - 1
	for range SmoothingIterations {
		next[0] = s.points[0]
		next[last] = s.points[last]
		for i := 1; i < last; i++ {
			avg := cur[i-1].XY().Add(cur[i].XY()).Add(cur[i+1].XY()).Div(3)
			next[i] = cur[i].WithXY(avg)
		}
		cur, next = next, cur
	}
	return Stroke{points: cur}
}
