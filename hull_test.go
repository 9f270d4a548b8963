package gml

import (
	"math/rand/v2"
	"testing"
)

func TestStroke_ConvexHull(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   []Point
	}{
		{"empty", Stroke{}, nil},
		{"single", NewStroke(TPt(1, 2, 0)), []Point{Pt(1, 2)}},
		{"duplicates", NewStroke(TPt(1, 1, 0), TPt(1, 1, 1), TPt(1, 1, 2)), []Point{Pt(1, 1)}},
		{"two points", NewStroke(TPt(3, 3, 0), TPt(0, 0, 0)), []Point{Pt(0, 0), Pt(3, 3)}},
		{"collinear", NewStroke(TPt(0, 0, 0), TPt(1, 1, 0), TPt(2, 2, 0), TPt(3, 3, 0)), []Point{Pt(0, 0), Pt(3, 3)}},
		{
			"square",
			NewStroke(TPt(0, 0, 0), TPt(0, 1, 0), TPt(1, 1, 0), TPt(1, 0, 0)),
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
		},
		{
			"square with edge midpoints and interior",
			NewStroke(TPt(0, 0, 0), TPt(1, 0, 0), TPt(2, 0, 0), TPt(2, 2, 0), TPt(1, 1, 0), TPt(0, 2, 0), TPt(0, 1, 0)),
			[]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull := tt.stroke.ConvexHull()
			if hull.Len() != len(tt.want) {
				t.Fatalf("hull has %d points %v, want %v", hull.Len(), hull.Points(), tt.want)
			}
			for i, w := range tt.want {
				if got := hull.At(i).XY(); got != w {
					t.Errorf("hull[%d] = %v, want %v", i, got, w)
				}
			}
		})
	}
}

func TestStroke_ConvexHullKeepsTimestamp(t *testing.T) {
	s := NewStroke(TPt(0, 0, 5), TPt(4, 0, 6), TPt(2, 3, 7), TPt(0, 0, 8))
	hull := s.ConvexHull()
	if hull.Len() != 3 {
		t.Fatalf("hull has %d points, want 3", hull.Len())
	}
	if got := hull.At(0); got != TPt(0, 0, 5) {
		t.Errorf("hull[0] = %v, want first occurrence (0, 0, 5)", got)
	}
}

func TestStroke_HullArea(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   float64
	}{
		{"empty", Stroke{}, 0},
		{"segment", NewStroke(TPt(0, 0, 0), TPt(5, 5, 0)), 0},
		{"unit square", NewStroke(TPt(0, 0, 0), TPt(0, 1, 0), TPt(1, 1, 0), TPt(1, 0, 0)), 1},
		{"triangle", NewStroke(TPt(0, 0, 0), TPt(4, 0, 0), TPt(2, 3, 0)), 6},
		{"bowtie", NewStroke(TPt(0, 0, 0), TPt(1, 1, 0), TPt(1, 0, 0), TPt(0, 1, 0)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stroke.HullArea(); !approxEqual(got, tt.want) {
				t.Errorf("HullArea = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStroke_ConvexHullContainsAllPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := range 20 {
		pts := make([]TimedPoint, 50)
		for i := range pts {
			pts[i] = TPt(rng.Float64()*100-50, rng.Float64()*100-50, float64(i))
		}
		s := NewStroke(pts...)
		hull := s.ConvexHull()
		n := hull.Len()
		if n < 3 {
			t.Fatalf("trial %d: hull has %d points", trial, n)
		}

		for i := range n {
			a, b := hull.At(i), hull.At((i+1)%n)
			for _, p := range pts {
				if turn(a, b, p) < -1e-9 {
					t.Fatalf("trial %d: point %v outside hull edge %v-%v", trial, p, a, b)
				}
			}
		}

		area := s.HullArea()
		w, h := s.Dimensions()
		if area < 0 || area > w*h {
			t.Errorf("trial %d: HullArea = %v, want within [0, %v]", trial, area, w*h)
		}
	}
}
