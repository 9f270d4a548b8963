package gml

import "math"

// Stroke measures: bounds, centroid, duration and path length.

// Centroid returns the mean position of the stroke's points.
// It returns ErrEmptyGeometry for an empty stroke.
func (s Stroke) Centroid() (Point, error) {
	if len(s.points) == 0 {
		return Point{}, ErrEmptyGeometry
	}
	c := Zero
	for _, p := range s.points {
		c = c.Add(p.XY())
	}
	return c.Div(float64(len(s.points))), nil
}

// Bounds returns the minimum and maximum corners of the axis-aligned
// bounding box. An empty stroke has bounds (Zero, Zero).
func (s Stroke) Bounds() (minPt, maxPt Point) {
	if len(s.points) == 0 {
		return Zero, Zero
	}
	minPt = Point{X: math.Inf(1), Y: math.Inf(1)}
	maxPt = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range s.points {
		minPt = minPt.Min(p.XY())
		maxPt = maxPt.Max(p.XY())
	}
	return minPt, maxPt
}

// Dimensions returns the width and height of the bounding box.
func (s Stroke) Dimensions() (width, height float64) {
	minPt, maxPt := s.Bounds()
	d := maxPt.Sub(minPt)
	return d.X, d.Y
}

// AspectRatio returns height / width, or NaN when the width is zero
// (which includes the empty stroke).
func (s Stroke) AspectRatio() float64 {
	width, height := s.Dimensions()
	if width > 0 {
		return height / width
	}
	return math.NaN()
}

// Duration returns the largest timestamp in the stroke, or 0 when it is
// empty. It is not a delta: the first timestamp is not subtracted.
func (s Stroke) Duration() float64 {
	if len(s.points) == 0 {
		return 0
	}
	d := s.points[0].T
	for _, p := range s.points[1:] {
		d = max(d, p.T)
	}
	return d
}

// ArcLength returns the length of the polyline through the stroke's points.
func (s Stroke) ArcLength() float64 {
	var length float64
	for i := 1; i < len(s.points); i++ {
		length += s.points[i-1].XY().Distance(s.points[i].XY())
	}
	return length
}

// distancesFromCentroid returns each point's distance to the centroid.
func (s Stroke) distancesFromCentroid() ([]float64, error) {
	c, err := s.Centroid()
	if err != nil {
		return nil, err
	}
	d := make([]float64, len(s.points))
	for i, p := range s.points {
		d[i] = p.XY().Distance(c)
	}
	return d, nil
}

// MeanDistanceFromCentroid returns the mean distance of the points from the
// centroid. It returns ErrEmptyGeometry for an empty stroke.
func (s Stroke) MeanDistanceFromCentroid() (float64, error) {
	d, err := s.distancesFromCentroid()
	if err != nil {
		return 0, err
	}
	return mean(d), nil
}

// StdDistanceFromCentroid returns the population standard deviation of the
// points' distances from the centroid. It returns ErrEmptyGeometry for an
// empty stroke.
func (s Stroke) StdDistanceFromCentroid() (float64, error) {
	d, err := s.distancesFromCentroid()
	if err != nil {
		return 0, err
	}
	return stddev(d), nil
}
