package warp

import "math"

// radialOffset computes the slew of a joining segment from p1 (tangent t1) to
// p4 (tangent t4). The segment is represented as two concentric circular arcs,
// one through each end point and tangent there; the result is the radial
// distance between them, measured along the left normals.
//
// A chord c joins the ends of a circular arc exactly when it is parallel to
// t1+t4. Moving p4 along its normal n4 by −r until that holds gives
//
//	r = (c·n1 + c·n4) / (1 + t1·t4)
//
// which blows up as the tangents approach antiparallel. Below cutoff the
// representation is abandoned and ok is false.
func radialOffset(p1 Point, t1 Vec2, p4 Point, t4 Vec2, cutoff float64) (r float64, ok bool) {
	dot := t1.Dot(t4)
	if dot < cutoff {
		return 0, false
	}
	c := p4.Sub(p1)
	return (c.Dot(t1.Perp()) + c.Dot(t4.Perp())) / (1 + dot), true
}

// buildSegment returns the reference cubic from p0 to p3 with the given unit
// end tangents. If both tangents run along the chord the result is an exact
// line and straight is true.
//
// Otherwise each control arm has the length
//
//	L/3 + correction·(L − c·t)
//
// for chord c of length L. With correction = 0.193 this tracks a circular
// arc to within 0.1% of its radius up to 90° of turn, and 5% at 135°, and
// keeps the parametric speed close to uniform.
func buildSegment(p0 Point, t0 Vec2, p3 Point, t3 Vec2, correction float64) (seg CubicBez, straight bool) {
	const colinear = 1e-9

	c := p3.Sub(p0)
	l := c.Hypot()
	if l == 0 {
		return lineBez(p0, p3), true
	}
	u := c.Mul(1 / l)
	if math.Abs(t0.Cross(u)) < colinear && math.Abs(t3.Cross(u)) < colinear && t0.Dot(u) > 0 && t3.Dot(u) > 0 {
		return lineBez(p0, p3), true
	}
	h0 := l/3 + correction*(l-c.Dot(t0))
	h3 := l/3 + correction*(l-c.Dot(t3))
	return CubicBez{
		P0: p0,
		P1: p0.Translate(t0.Mul(h0)),
		P2: p3.Translate(t3.Mul(-h3)),
		P3: p3,
	}, false
}
