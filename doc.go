// Package gml extracts geometric and kinematic features from hand-drawn pen
// strokes.
//
// # Overview
//
// A [Stroke] is one pen-down to pen-up path: an ordered sequence of
// [TimedPoint] values in drawing order. A [Tag] is a complete mark made of
// one or more strokes, as recorded in Graffiti Markup Language (GML) files.
// Both are immutable values; methods that transform them return new values.
//
// # Quick Start
//
//	s := gml.NewStroke(
//	    gml.TPt(0, 0, 0),
//	    gml.TPt(0, 1, 0.1),
//	    gml.TPt(1, 1, 0.2),
//	    gml.TPt(1, 0, 0.3),
//	)
//
//	s.ArcLength()    // 3
//	s.HullArea()     // 1
//	s.TotalCorners() // 2
//
//	c, err := s.Centroid() // ErrEmptyGeometry only for an empty stroke
//
// # Measures
//
// Stroke measures cover the bounding box, centroid, duration, arc length,
// joint angle statistics, corner count, convex hull and hull area,
// self-intersection count and iterative smoothing. Tag measures are taken on
// the flattened stroke (all strokes concatenated in order).
//
// # Degenerate Input
//
// Only centroid-based measures fail, returning [ErrEmptyGeometry] when there
// are no points. Everything else returns a defined fallback: empty bounds are
// (Zero, Zero), a zero-width aspect ratio is NaN, a joint with a zero-length
// segment has angle 0, and normalizing a tag with zero extent produces NaN or
// Inf coordinates by IEEE division.
//
// # Coordinate System
//
// GML uses screen coordinates with y increasing down. Joint angles are
// positive for clockwise turns in that system.
//
// # Concurrency
//
// Strokes and tags are never mutated by their measures, so any number of
// goroutines may read them concurrently. The features package builds a
// parallel extractor on top of this.
package gml
