package gml

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"slices"
)

// Stroke is one continuous pen-down to pen-up path: an ordered sequence of
// timed points in drawing order.
//
// A Stroke is a value. Every derived measure and every transforming method
// (Smoothed, ConvexHull, Concat) leaves the receiver untouched; the only
// mutating method is Append. The zero Stroke is the empty stroke.
type Stroke struct {
	points []TimedPoint
}

// NewStroke returns a Stroke holding a copy of points.
func NewStroke(points ...TimedPoint) Stroke {
	return Stroke{points: slices.Clone(points)}
}

// StrokeFromTriples builds a Stroke from raw (x, y) or (x, y, t) tuples as
// produced by a parser. A missing time defaults to 0. Any other tuple length
// is rejected with a *PointArityError.
func StrokeFromTriples(triples [][]float64) (Stroke, error) {
	points := make([]TimedPoint, 0, len(triples))
	for i, tr := range triples {
		switch len(tr) {
		case 2:
			points = append(points, TimedPoint{X: tr[0], Y: tr[1]})
		case 3:
			points = append(points, TimedPoint{X: tr[0], Y: tr[1], T: tr[2]})
		default:
			return Stroke{}, &PointArityError{Index: i, Arity: len(tr)}
		}
	}
	return Stroke{points: points}, nil
}

// Points returns a copy of the stroke's points.
func (s Stroke) Points() []TimedPoint {
	return slices.Clone(s.points)
}

// Len returns the number of points.
func (s Stroke) Len() int {
	return len(s.points)
}

// At returns the i-th point. It panics if i is out of range.
func (s Stroke) At(i int) TimedPoint {
	return s.points[i]
}

// IsEmpty reports whether the stroke has no points.
func (s Stroke) IsEmpty() bool {
	return len(s.points) == 0
}

// Equal reports whether both strokes hold the same points in the same order.
func (s Stroke) Equal(o Stroke) bool {
	return slices.Equal(s.points, o.points)
}

// Hash returns a structural hash of the point sequence. Strokes that are
// Equal have the same hash; the hash depends on point order.
func (s Stroke) Hash() uint64 {
	h := fnv.New64a()
	s.writeHash(h)
	return h.Sum64()
}

func (s Stroke) writeHash(h hash.Hash64) {
	buf := make([]byte, 0, 8+24*len(s.points))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.points)))
	for _, p := range s.points {
		buf = appendFloat(buf, p.X)
		buf = appendFloat(buf, p.Y)
		buf = appendFloat(buf, p.T)
	}
	h.Write(buf)
}

// appendFloat appends the bits of v, folding -0 into +0 so values that
// compare equal hash equally.
func appendFloat(buf []byte, v float64) []byte {
	if v == 0 {
		v = 0
	}
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

// Concat returns a new stroke with the points of s followed by those of o.
func (s Stroke) Concat(o Stroke) Stroke {
	return Stroke{points: slices.Concat(s.points, o.points)}
}

// Append appends the points of o to s in place.
// The result never shares storage with o or with earlier copies of s.
func (s *Stroke) Append(o Stroke) {
	s.points = slices.Concat(s.points, o.points)
}
