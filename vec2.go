package warp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultDirection is the direction used wherever a direction would
// otherwise be undefined, such as the chord of a zero-length segment.
var DefaultDirection = Vec2{X: 1, Y: 0}

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Perp returns the vector rotated by +90°, that is, counter-clockwise in a
// y-up coordinate system. Path normals are the perpendiculars of tangents.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Unit returns a vector of magnitude 1 with the same angle as v. Unlike a
// plain division, a zero or non-finite vector yields [DefaultDirection].
func (v Vec2) Unit() Vec2 {
	h := v.Hypot()
	if h == 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return DefaultDirection
	}
	return v.Mul(1 / h)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// The tangent solver treats directions as unit complex numbers, which turns
// reflections and inscribed-angle constructions into products and quotients.

func (v Vec2) complex() complex128 {
	return complex(v.X, v.Y)
}

func fromComplex(z complex128) Vec2 {
	return Vec2{X: real(z), Y: imag(z)}
}

// unitComplex normalizes z, falling back to [DefaultDirection].
func unitComplex(z complex128) Vec2 {
	a := cmplx.Abs(z)
	if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return DefaultDirection
	}
	return fromComplex(z / complex(a, 0))
}
