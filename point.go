package gml

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
// Division by zero follows IEEE-754: the components become ±Inf or NaN.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Min returns a point holding the smaller of each component.
func (p Point) Min(q Point) Point {
	if q.X < p.X {
		p.X = q.X
	}
	if q.Y < p.Y {
		p.Y = q.Y
	}
	return p
}

// Max returns a point holding the larger of each component.
func (p Point) Max(q Point) Point {
	if q.X > p.X {
		p.X = q.X
	}
	if q.Y > p.Y {
		p.Y = q.Y
	}
	return p
}

// Approx returns true if two points are equal within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Angle returns the unsigned angle between vectors a and b in radians,
// in the range [0, π]. The result is NaN when either vector has zero length
// so callers can filter degenerate input instead of handling an error.
func Angle(a, b Point) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return math.NaN()
	}
	return math.Acos(clampUnit(a.Dot(b) / (la * lb)))
}

// JointAngle returns the signed turning angle at vertex c of the path a→c→b.
//
// The magnitude comes from the law of cosines on triangle (a, c, b): a
// straight continuation yields 0 and a path folding back on itself yields π.
// The sign is the sign of the triangle's signed area, so in y-down screen
// coordinates a clockwise turn is positive.
//
// If either segment adjacent to c has zero length the angle is 0, which keeps
// repeated points from poisoning sums and means.
func JointAngle(a, c, b Point) float64 {
	la := c.Distance(b)
	lb := a.Distance(c)
	if la == 0 || lb == 0 {
		return 0
	}
	lc := b.Distance(a)

	cos := (la*la + lb*lb - lc*lc) / (2 * la * lb)
	angle := math.Pi - math.Acos(clampUnit(cos))

	area := b.Sub(a).Cross(c.Sub(a))
	return math.Copysign(angle, area)
}

// clampUnit clamps v to [-1, 1]; rounding on nearly collinear input can push
// a cosine just outside the domain of Acos. NaN passes through.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// TimedPoint is a Point sampled at time T.
//
// Vector arithmetic is defined on Point only. Code that transforms timed
// points projects them with XY, computes, and re-attaches the timestamp with
// WithXY, so a timestamp is never summed or divided by accident.
type TimedPoint struct {
	X, Y, T float64
}

// TPt is a convenience function to create a TimedPoint.
func TPt(x, y, t float64) TimedPoint {
	return TimedPoint{X: x, Y: y, T: t}
}

// XY returns the spatial part of the point.
func (p TimedPoint) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

// WithXY returns a copy of p with its spatial part replaced by q.
func (p TimedPoint) WithXY(q Point) TimedPoint {
	return TimedPoint{X: q.X, Y: q.Y, T: p.T}
}
