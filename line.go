package warp

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t ∈ [0, 1] spanning the segment.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// RayCrossing intersects the segment with the infinite line through origin
// along dir. It returns the signed distance along dir (in units of |dir|)
// and false if the two are parallel or the crossing lies outside the
// segment.
func (l Line) RayCrossing(origin Point, dir Vec2) (float64, bool) {
	seg := l.P1.Sub(l.P0)
	den := dir.Cross(seg)
	if den == 0 {
		return 0, false
	}
	rel := l.P0.Sub(origin)
	// origin + dir·s = P0 + seg·u
	s := rel.Cross(seg) / den
	u := rel.Cross(dir) / den
	if u < 0 || u > 1 {
		return 0, false
	}
	return s, true
}
