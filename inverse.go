package warp

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrNoRoot is returned by [Cursor.Inverse] when no lefting could be
// bracketed for a point, which happens for NaN input or when the search
// runs out of probes.
var ErrNoRoot = errors.New("warp: no root")

// Hint is a starting point for an inverse search, usually the nearest node.
type Hint struct {
	Node    int
	Lefting float64
}

// NodeLocator finds the node nearest to a point. Spatial indexes implement
// it; [Path] implements it by linear scan.
type NodeLocator interface {
	NearestNode(pt Point) (Hint, bool)
}

// Inversion is the result of an inverse search.
type Inversion struct {
	Lefting float64
	Downing float64
	// Probes is the number of forward evaluations the search needed.
	Probes int
}

// Inverse maps a world point back to (lefting, downing), starting the search
// at the hint lefting. The result forward-maps to within Epsilon·Scale of
// target along the path.
//
// The search first steps away from the hint, doubling the step, until the
// point's along-track error changes sign. It then narrows the bracket by
// interpolation, alternately clamping the interpolation fraction to the
// middle third and pushing it away from the bracket ends, which shrinks the
// bracket by at least a third every two probes no matter how the error
// behaves. It stops as soon as the error is within tolerance, the bracket is
// narrower than a pixel, or the bracket lies within one straight segment.
//
// Where no sign change is found the error wraps [ErrNoRoot].
func (c *Cursor) Inverse(target Point, hint float64) (Inversion, error) {
	cfg := c.path.cfg
	if target.IsNaN() || math.IsNaN(hint) {
		return Inversion{}, fmt.Errorf("inverting %v near lefting %g: %w", target, hint, ErrNoRoot)
	}
	eps := cfg.Epsilon * c.Scale
	pixel := c.Scale

	probes := 0
	probe := func(l float64) (Frame, float64) {
		probes++
		f := c.frame(l)
		return f, target.Sub(f.Base).Dot(f.Tangent)
	}
	result := func(f Frame, l float64) Inversion {
		return Inversion{
			Lefting: l,
			Downing: target.Sub(f.Base).Dot(f.Normal) + f.Slew,
			Probes:  probes,
		}
	}

	a := hint
	fa, ea := probe(a)
	if math.Abs(ea) <= eps {
		return result(fa, a), nil
	}

	dir := 1.0
	if ea < 0 {
		dir = -1.0
	}
	var (
		b       float64
		fb      Frame
		eb      float64
		step    float64
		bracket bool
	)
	for i := 0; i < cfg.MaxDoublings && probes < cfg.MaxProbes; i++ {
		step = max(2*step, math.Abs(ea)/errorSlope(fa, target))
		b = a + dir*step
		fb, eb = probe(b)
		if math.Abs(eb) <= eps {
			return result(fb, b), nil
		}
		if !math.IsNaN(eb) && (eb > 0) != (ea > 0) {
			bracket = true
			break
		}
		a, fa, ea = b, fb, eb
	}
	if !bracket {
		Logger().Debug("inverse search found no sign change",
			slog.Float64("x", target.X),
			slog.Float64("y", target.Y),
			slog.Float64("hint", hint),
			slog.Int("probes", probes))
		return Inversion{Probes: probes}, fmt.Errorf("inverting %v near lefting %g: %w", target, hint, ErrNoRoot)
	}

	clamp := true
	for probes < cfg.MaxProbes && math.Abs(b-a) >= pixel {
		if fa.Straight && fa.Segment == fb.Segment {
			// The error is linear along a single line, so interpolation
			// lands on the root.
			l := a + (b-a)*ea/(ea-eb)
			f, _ := probe(l)
			return result(f, l), nil
		}

		frac := ea / (ea - eb)
		if clamp {
			frac = min(max(frac, 1.0/3.0), 2.0/3.0)
		} else {
			frac += frac * (2*frac - 1) * (frac - 1)
		}
		clamp = !clamp

		l := a + frac*(b-a)
		f, e := probe(l)
		if math.Abs(e) <= eps {
			return result(f, l), nil
		}
		if (e > 0) == (ea > 0) {
			a, fa, ea = l, f, e
		} else {
			b, fb, eb = l, f, e
		}
	}

	if math.Abs(ea) <= math.Abs(eb) {
		return result(fa, a), nil
	}
	return result(fb, b), nil
}

// errorSlope estimates how fast the along-track error of target falls per
// unit of lefting. The foot point moves at unit speed, and curvature makes
// the error fall slower on the concave side and faster on the convex side.
func errorSlope(f Frame, target Point) float64 {
	off := target.Sub(f.Base).Dot(f.Normal)
	return max(math.Abs(1-f.Curvature*off), 0.1)
}

// Locate inverts target, taking the starting lefting from loc.
func (c *Cursor) Locate(target Point, loc NodeLocator) (Inversion, error) {
	var hint float64
	if h, ok := loc.NearestNode(target); ok {
		hint = h.Lefting
	}
	return c.Inverse(target, hint)
}
