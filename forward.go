package warp

// Frame is the local coordinate frame of a path at one lefting.
type Frame struct {
	// Base is the point of the reference curve.
	Base Point
	// Point is Base displaced along Normal by the downing minus Slew.
	Point Point
	// Tangent is the unit direction of travel and Normal the tangent rotated
	// by +90°. Positive downing lies on the left of the direction of travel.
	Tangent Vec2
	Normal  Vec2
	// Curvature is signed; positive values turn towards the normal.
	Curvature float64
	// Slew is the slew in force at this lefting.
	Slew float64
	// Segment is the index of the owning segment, -1 before the path and
	// NumSegments() after it.
	Segment int
	// Straight is set when the owning segment, or pseudo-segment, is an
	// exact line.
	Straight bool
}

// Forward maps (lefting, downing) to the world. Lefting is defined over all
// reals: before the first node and after the last one the path continues
// straight along its end tangents.
//
// Downing is measured from the physical track. Where the path carries slew
// the reference curve is offset from the track, and the offset is removed
// before downing is applied, so that downing 0 follows the track.
func (c *Cursor) Forward(lefting, downing float64) Frame {
	f := c.frame(lefting)
	f.Point = f.Base.Translate(f.Normal.Mul(downing - f.Slew))
	return f
}

// Curvature returns the signed curvature of the reference curve at lefting.
func (c *Cursor) Curvature(lefting float64) float64 {
	return c.frame(lefting).Curvature
}

// SingularDowning returns the downing at which the rectified coordinates
// fold through themselves at lefting: the centre of curvature, one radius
// from the reference curve. Downings at and beyond it do not map to valid
// points and should be masked. It returns false where the path is straight.
func (c *Cursor) SingularDowning(lefting float64) (float64, bool) {
	f := c.frame(lefting)
	if f.Curvature == 0 {
		return 0, false
	}
	return f.Slew + 1/f.Curvature, true
}

// frame evaluates the reference curve at lefting. Point is left unset.
func (c *Cursor) frame(lefting float64) Frame {
	c.seek(lefting)
	p := c.path
	seg := c.seg

	if len(p.pts) == 0 {
		t := DefaultDirection
		return Frame{
			Base:     Point{}.Translate(t.Mul(lefting)),
			Tangent:  t,
			Normal:   t.Perp(),
			Segment:  seg,
			Straight: true,
		}
	}

	if seg < 0 || seg >= len(p.segs) {
		node := 0
		if seg >= 0 {
			node = len(p.pts) - 1
		}
		t := p.tangents[node]
		return Frame{
			Base:     p.reference(node).Translate(t.Mul(lefting - p.lefting[node])),
			Tangent:  t,
			Normal:   t.Perp(),
			Slew:     p.nodeSlew[node],
			Segment:  seg,
			Straight: true,
		}
	}

	var u float64
	if span := c.to - c.from; span > 0 {
		u = (lefting - c.from) / span
	}
	cb := p.segs[seg]

	if d := p.lineDir[seg]; !d.IsZero() {
		return Frame{
			Base:     cb.P0.Lerp(cb.P3, u),
			Tangent:  d,
			Normal:   d.Perp(),
			Slew:     p.segSlew[seg],
			Segment:  seg,
			Straight: true,
		}
	}

	d1 := cb.Deriv(u)
	var t Vec2
	if d1.IsZero() {
		t = cb.P3.Sub(cb.P0).Unit()
	} else {
		t = d1.Unit()
	}
	return Frame{
		Base:      cb.Eval(u),
		Tangent:   t,
		Normal:    t.Perp(),
		Curvature: cb.Curvature(u),
		Slew:      p.segSlew[seg],
		Segment:   seg,
	}
}
