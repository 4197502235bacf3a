package warp

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	diff(t, 5.0, Line{Pt(1, 1), Pt(4, 5)}.Length())
	diff(t, Pt(2.5, 3), Line{Pt(1, 1), Pt(4, 5)}.Eval(0.5))
}

func TestRayCrossing(t *testing.T) {
	l := Line{Pt(10, -10), Pt(10, 10)}
	tests := []struct {
		origin Point
		dir    Vec2
		s      float64
		ok     bool
	}{
		{Pt(0, 0), Vec(1, 0), 10, true},
		{Pt(0, 5), Vec(-1, 0), -10, true},
		{Pt(0, 5), Vec(2, 0), 5, true},
		{Pt(0, 10), Vec(1, 0), 10, true},
		{Pt(0, 11), Vec(1, 0), 0, false},
		{Pt(0, 0), Vec(0, 1), 0, false},
		{Pt(0, 0), Vec(1, 1), 10, true},
	}
	for _, tt := range tests {
		s, ok := l.RayCrossing(tt.origin, tt.dir)
		if ok != tt.ok {
			t.Errorf("ray from %v along %v: got ok = %t, want %t", tt.origin, tt.dir, ok, tt.ok)
			continue
		}
		if ok && math.Abs(s-tt.s) > 1e-12 {
			t.Errorf("ray from %v along %v: got %g, want %g", tt.origin, tt.dir, s, tt.s)
		}
	}
}
