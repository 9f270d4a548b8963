package gml

import "math"

// CornerThreshold is the absolute joint angle above which an interior
// vertex counts as a corner (30 degrees).
const CornerThreshold = math.Pi / 6

// JointAngles returns the signed joint angle at every interior point, in
// order. Strokes with fewer than 3 points have no interior points and
// return nil.
func (s Stroke) JointAngles() []float64 {
	if len(s.points) < 3 {
		return nil
	}
	angles := make([]float64, 0, len(s.points)-2)
	for i := 1; i < len(s.points)-1; i++ {
		angles = append(angles, JointAngle(
			s.points[i-1].XY(),
			s.points[i].XY(),
			s.points[i+1].XY(),
		))
	}
	return angles
}

func (s Stroke) absoluteJointAngles() []float64 {
	angles := s.JointAngles()
	for i, a := range angles {
		angles[i] = math.Abs(a)
	}
	return angles
}

// TotalJointAngle returns the sum of the signed joint angles.
func (s Stroke) TotalJointAngle() float64 {
	return sum(s.JointAngles())
}

// TotalAbsoluteJointAngle returns the sum of the absolute joint angles.
func (s Stroke) TotalAbsoluteJointAngle() float64 {
	return sum(s.absoluteJointAngles())
}

// MeanJointAngle returns the mean signed joint angle, or 0 without interior
// points.
func (s Stroke) MeanJointAngle() float64 {
	return mean(s.JointAngles())
}

// MeanAbsoluteJointAngle returns the mean absolute joint angle, or 0 without
// interior points.
func (s Stroke) MeanAbsoluteJointAngle() float64 {
	return mean(s.absoluteJointAngles())
}

// StdJointAngle returns the population standard deviation of the signed
// joint angles.
func (s Stroke) StdJointAngle() float64 {
	return stddev(s.JointAngles())
}

// StdAbsoluteJointAngle returns the population standard deviation of the
// absolute joint angles.
func (s Stroke) StdAbsoluteJointAngle() float64 {
	return stddev(s.absoluteJointAngles())
}

// TotalCorners returns the number of interior vertices whose absolute joint
// angle exceeds CornerThreshold.
func (s Stroke) TotalCorners() int {
	n := 0
	for _, a := range s.JointAngles() {
		if math.Abs(a) > CornerThreshold {
			n++
		}
	}
	return n
}
