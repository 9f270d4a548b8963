package gml

import (
	"errors"
	"fmt"
)

// Sentinel errors for gml package.
var (
	// ErrEmptyGeometry is returned by centroid-based measures of a stroke
	// or tag that has no points.
	ErrEmptyGeometry = errors.New("gml: centroid of empty geometry")

	// ErrMalformedPoint is returned when a point is built from a tuple that
	// is neither (x, y) nor (x, y, t).
	ErrMalformedPoint = errors.New("gml: point must have 2 or 3 components")
)

// PointArityError reports the offending tuple passed to StrokeFromTriples.
type PointArityError struct {
	Index int
	Arity int
}

func (e *PointArityError) Error() string {
	return fmt.Sprintf("gml: point %d has %d components, want 2 or 3", e.Index, e.Arity)
}

// Unwrap returns ErrMalformedPoint.
func (e *PointArityError) Unwrap() error {
	return ErrMalformedPoint
}
