package warp

import "math"

// CubicBez is a cubic Bézier segment of the smoothed reference curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// lineBez returns the cubic that traverses the straight line from p0 to p3 at
// uniform speed.
func lineBez(p0, p3 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p3, 1.0/3.0), p0.Lerp(p3, 2.0/3.0), p3}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3.0 * mt * mt * t
	d := 3.0 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Deriv returns the first derivative at t, using the quadratic Bernstein form
// of the hodograph.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	a := 3.0 * mt * mt
	b := 6.0 * mt * t
	e := 3.0 * t * t
	return Vec2{
		X: a*d01.X + b*d12.X + e*d23.X,
		Y: a*d01.Y + b*d12.Y + e*d23.Y,
	}
}

// Deriv2 returns the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	dd0 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd1 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return dd0.Mul(6.0 * (1.0 - t)).Add(dd1.Mul(6.0 * t))
}

// Curvature returns the signed curvature at t. Positive values turn
// counter-clockwise. A stationary point has zero curvature.
func (c CubicBez) Curvature(t float64) float64 {
	d1 := c.Deriv(t)
	h := d1.Hypot()
	if h == 0 {
		return 0
	}
	return d1.Cross(c.Deriv2(t)) / (h * h * h)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	pm := p012.Lerp(p123, 0.5)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
// The result is within accuracy of the true length.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 for a degenerate segment
		est = 0
	}

	if min(math.Pow(est, 3)*2.5e-6, 3e-2)*lplc < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	if min(math.Pow(est, 6)*1.5e-11, 9e-3)*lplc < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	if min(math.Pow(est, 9)*3.5e-16, 3.5e-3)*lplc < accuracy || depth >= 20 {
		return arclenQuadrature(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

// arclenQuadrature integrates the speed using symmetric half tables, so every
// abscissa is evaluated on both sides of the midpoint.
func arclenQuadrature(coeffs [][2]float64, dm, dm1, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}
