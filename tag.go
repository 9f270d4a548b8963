package gml

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
)

// Tag is a complete drawn mark: an ordered sequence of strokes, one per pen
// lift. Tag-level measures are computed on the flattened stroke, so a tag
// behaves as a single path through all of its points in drawing order.
//
// The zero Tag has no strokes.
type Tag struct {
	strokes []Stroke
}

// NewTag returns a Tag holding a copy of strokes.
func NewTag(strokes ...Stroke) Tag {
	return Tag{strokes: slices.Clone(strokes)}
}

// Strokes returns a copy of the tag's strokes.
func (t Tag) Strokes() []Stroke {
	return slices.Clone(t.strokes)
}

// StrokeCount returns the number of strokes.
func (t Tag) StrokeCount() int {
	return len(t.strokes)
}

// PointCount returns the total number of points over all strokes.
func (t Tag) PointCount() int {
	n := 0
	for _, s := range t.strokes {
		n += s.Len()
	}
	return n
}

// Flattened returns all strokes concatenated in order into one stroke.
// A tag without strokes flattens to the empty stroke.
func (t Tag) Flattened() Stroke {
	var flat Stroke
	for _, s := range t.strokes {
		flat.Append(s)
	}
	return flat
}

// Centroid returns the centroid of the flattened stroke.
// It returns ErrEmptyGeometry when the tag has no points.
func (t Tag) Centroid() (Point, error) {
	return t.Flattened().Centroid()
}

// Bounds returns the bounding box of the flattened stroke.
func (t Tag) Bounds() (minPt, maxPt Point) {
	return t.Flattened().Bounds()
}

// Dimensions returns the width and height of the flattened stroke.
func (t Tag) Dimensions() (width, height float64) {
	return t.Flattened().Dimensions()
}

// AspectRatio returns the aspect ratio of the flattened stroke.
func (t Tag) AspectRatio() float64 {
	return t.Flattened().AspectRatio()
}

// Duration returns the largest timestamp of any point in the tag.
func (t Tag) Duration() float64 {
	return t.Flattened().Duration()
}

// ArcLength returns the arc length of the flattened stroke, which includes
// the pen-up jumps between consecutive strokes.
func (t Tag) ArcLength() float64 {
	return t.Flattened().ArcLength()
}

// MeanDistanceFromCentroid returns the mean distance of all points from the
// tag centroid.
func (t Tag) MeanDistanceFromCentroid() (float64, error) {
	return t.Flattened().MeanDistanceFromCentroid()
}

// StdDistanceFromCentroid returns the standard deviation of all points'
// distances from the tag centroid.
func (t Tag) StdDistanceFromCentroid() (float64, error) {
	return t.Flattened().StdDistanceFromCentroid()
}

// Normalized returns a copy of the tag translated so its bounding box starts
// at the origin and scaled so the longer side has length 1. Both axes use
// the same divisor, so the aspect ratio is preserved. Timestamps are not
// changed.
//
// A tag whose points all coincide has zero extent; its coordinates then
// become NaN or ±Inf by IEEE division.
func (t Tag) Normalized() Tag {
	minPt, maxPt := t.Bounds()
	extent := maxPt.Sub(minPt)
	scale := max(extent.X, extent.Y)
	if scale == 0 && t.PointCount() > 0 {
		Logger().Debug("gml: normalizing tag with zero extent",
			"strokes", len(t.strokes), "points", t.PointCount())
	}

	out := Tag{strokes: make([]Stroke, len(t.strokes))}
	for i, s := range t.strokes {
		pts := make([]TimedPoint, len(s.points))
		for j, p := range s.points {
			pts[j] = p.WithXY(p.XY().Sub(minPt).Div(scale))
		}
		out.strokes[i] = Stroke{points: pts}
	}
	return out
}

// Smoothed returns a copy of the tag with every stroke smoothed on its own,
// so smoothing never bridges a pen lift.
func (t Tag) Smoothed() Tag {
	out := Tag{strokes: make([]Stroke, len(t.strokes))}
	for i, s := range t.strokes {
		out.strokes[i] = s.Smoothed()
	}
	return out
}

// Equal reports whether both tags hold equal strokes in the same order.
func (t Tag) Equal(o Tag) bool {
	return slices.EqualFunc(t.strokes, o.strokes, Stroke.Equal)
}

// Hash returns a structural hash of the stroke sequence. Equal tags have the
// same hash, and stroke boundaries are part of the hash.
func (t Tag) Hash() uint64 {
	h := fnv.New64a()
	h.Write(binary.LittleEndian.AppendUint64(nil, uint64(len(t.strokes))))
	for _, s := range t.strokes {
		s.writeHash(h)
	}
	return h.Sum64()
}
