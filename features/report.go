package features

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Header is the CSV header written by WriteCSV.
var Header = []string{
	"name", "stroke_count", "point_count",
	"duration", "arc_length", "width", "height", "aspect_ratio",
	"centroid_x", "centroid_y",
	"mean_distance_from_centroid", "std_distance_from_centroid",
	"total_joint_angle", "total_absolute_joint_angle",
	"mean_joint_angle", "mean_absolute_joint_angle",
	"std_joint_angle", "std_absolute_joint_angle",
	"total_corners", "hull_area", "self_intersections",
	"missing",
}

// Record returns the set as a CSV row matching Header. NaN and infinities
// are written as "NaN", "+Inf" and "-Inf".
func (s Set) Record() []string {
	return []string{
		s.Name,
		strconv.Itoa(s.StrokeCount),
		strconv.Itoa(s.PointCount),
		formatFloat(s.Duration),
		formatFloat(s.ArcLength),
		formatFloat(s.Width),
		formatFloat(s.Height),
		formatFloat(s.AspectRatio),
		formatFloat(s.CentroidX),
		formatFloat(s.CentroidY),
		formatFloat(s.MeanDistanceFromCentroid),
		formatFloat(s.StdDistanceFromCentroid),
		formatFloat(s.TotalJointAngle),
		formatFloat(s.TotalAbsoluteJointAngle),
		formatFloat(s.MeanJointAngle),
		formatFloat(s.MeanAbsoluteJointAngle),
		formatFloat(s.StdJointAngle),
		formatFloat(s.StdAbsoluteJointAngle),
		strconv.Itoa(s.TotalCorners),
		formatFloat(s.HullArea),
		strconv.Itoa(s.SelfIntersections),
		strings.Join(s.Missing, ";"),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes Header followed by one row per set.
func WriteCSV(w io.Writer, sets []Set) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "features: write header")
	}
	for _, s := range sets {
		if err := cw.Write(s.Record()); err != nil {
			return errors.Wrapf(err, "features: write %s", s.Name)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "features: flush")
}
