// Package features computes the feature vector of GML tags, one Set per
// tag, sequentially or on a worker pool.
package features

import (
	"errors"
	"math"

	"github.com/gmltools/gml"
)

// Names of features that depend on the centroid. They are listed in
// Set.Missing when the tag has no points.
const (
	FeatureCentroid                 = "centroid"
	FeatureMeanDistanceFromCentroid = "mean_distance_from_centroid"
	FeatureStdDistanceFromCentroid  = "std_distance_from_centroid"
)

// Set holds the features of one tag. Measures are taken on the tag's
// flattened stroke after the configured normalization and smoothing.
type Set struct {
	Name        string
	StrokeCount int
	PointCount  int

	Duration    float64
	ArcLength   float64
	Width       float64
	Height      float64
	AspectRatio float64

	CentroidX                float64
	CentroidY                float64
	MeanDistanceFromCentroid float64
	StdDistanceFromCentroid  float64

	TotalJointAngle         float64
	TotalAbsoluteJointAngle float64
	MeanJointAngle          float64
	MeanAbsoluteJointAngle  float64
	StdJointAngle           float64
	StdAbsoluteJointAngle   float64
	TotalCorners            int

	HullArea          float64
	SelfIntersections int

	// Missing lists features that could not be computed; their values
	// are NaN.
	Missing []string
}

// Extract computes the features of tag.
//
// Features that cannot be computed are recorded in Set.Missing rather than
// returned as an error, so one empty tag never aborts a batch.
func Extract(name string, tag gml.Tag, opts ...Option) Set {
	return extract(name, tag, buildOptions(opts))
}

func extract(name string, tag gml.Tag, o options) Set {
	if o.normalize {
		tag = tag.Normalized()
	}
	if o.smooth {
		tag = tag.Smoothed()
	}
	flat := tag.Flattened()

	set := Set{
		Name:        name,
		StrokeCount: tag.StrokeCount(),
		PointCount:  flat.Len(),
		Duration:    flat.Duration(),
		ArcLength:   flat.ArcLength(),
		AspectRatio: flat.AspectRatio(),

		TotalJointAngle:         flat.TotalJointAngle(),
		TotalAbsoluteJointAngle: flat.TotalAbsoluteJointAngle(),
		MeanJointAngle:          flat.MeanJointAngle(),
		MeanAbsoluteJointAngle:  flat.MeanAbsoluteJointAngle(),
		StdJointAngle:           flat.StdJointAngle(),
		StdAbsoluteJointAngle:   flat.StdAbsoluteJointAngle(),
		TotalCorners:            flat.TotalCorners(),

		HullArea:          flat.HullArea(),
		SelfIntersections: flat.SelfIntersectionCount(),
	}
	set.Width, set.Height = flat.Dimensions()

	if c, err := flat.Centroid(); err == nil {
		set.CentroidX, set.CentroidY = c.X, c.Y
	} else {
		set.CentroidX, set.CentroidY = math.NaN(), math.NaN()
		set.miss(FeatureCentroid, err)
	}
	if v, err := flat.MeanDistanceFromCentroid(); err == nil {
		set.MeanDistanceFromCentroid = v
	} else {
		set.MeanDistanceFromCentroid = math.NaN()
		set.miss(FeatureMeanDistanceFromCentroid, err)
	}
	if v, err := flat.StdDistanceFromCentroid(); err == nil {
		set.StdDistanceFromCentroid = v
	} else {
		set.StdDistanceFromCentroid = math.NaN()
		set.miss(FeatureStdDistanceFromCentroid, err)
	}

	if len(set.Missing) > 0 {
		gml.Logger().Warn("features: missing features", "tag", name, "missing", set.Missing)
	}
	return set
}

func (s *Set) miss(feature string, err error) {
	if !errors.Is(err, gml.ErrEmptyGeometry) {
		gml.Logger().Error("features: unexpected error", "tag", s.Name, "feature", feature, "err", err)
	}
	s.Missing = append(s.Missing, feature)
}
