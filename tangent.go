package warp

// tangent is the direction of the path at a node while tangents are being
// resolved. A free tangent has no meaningful dir yet.
type tangent struct {
	dir   Vec2
	fixed bool
}

func fixedTangent(d Vec2) tangent {
	return tangent{dir: d.Unit(), fixed: true}
}

// resolveTangents returns a unit tangent for every node of c.
//
// Tangents are decided by kind, in passes: straight segments first, then
// runs of track, then magic joins, and finally slew and bound segments, which
// only ever inherit directions from their neighbours. Each pass treats the
// tangents fixed by earlier passes, and locked headings, as boundary
// conditions.
func resolveTangents(c *Chain) []Vec2 {
	n := c.Len()
	ts := make([]tangent, n)
	for i := range n {
		if nd := c.Node(i); nd.Locked() {
			ts[i] = fixedTangent(nd.Heading)
		}
	}

	if n >= 2 {
		joinersOnly := true
		for i := range n - 1 {
			if c.Kind(i).priority() < 3 {
				joinersOnly = false
				break
			}
		}
		if joinersOnly {
			d := chord(c.Node(0).Pt, c.Node(n-1).Pt)
			for i := range ts {
				if !ts[i].fixed {
					ts[i] = tangent{dir: d, fixed: true}
				}
			}
		} else {
			resolveStraights(c, ts)
			resolveRuns(c, ts, Track)
			resolveRuns(c, ts, Magic)
			resolveJoiners(c, ts)
		}
	}

	out := make([]Vec2, n)
	for i, t := range ts {
		if t.fixed {
			out[i] = t.dir
		} else {
			out[i] = DefaultDirection
		}
	}
	return out
}

// chord returns the unit direction from a to b.
func chord(a, b Point) Vec2 {
	return b.Sub(a).Unit()
}

func resolveStraights(c *Chain, ts []tangent) {
	for i := range c.Segments() {
		if c.Kind(i) != Straight {
			continue
		}
		d := chord(c.Node(i).Pt, c.Node(i+1).Pt)
		if !ts[i].fixed {
			ts[i] = tangent{dir: d, fixed: true}
		}
		if !ts[i+1].fixed {
			ts[i+1] = tangent{dir: d, fixed: true}
		}
	}
}

// resolveRuns handles every maximal run of segments of the given kind. Runs
// are cut at nodes that are already fixed, so that each subchain only has
// known tangents at its ends.
func resolveRuns(c *Chain, ts []tangent, kind SegmentKind) {
	nseg := c.Segments()
	for i := 0; i < nseg; {
		if c.Kind(i) != kind {
			i++
			continue
		}
		j := i
		for j < nseg && c.Kind(j) == kind {
			j++
		}
		start := i
		for k := i + 1; k <= j; k++ {
			if k == j || ts[k].fixed {
				resolveSubchain(c, ts, start, k)
				start = k
			}
		}
		i = j
	}
}

// resolveSubchain decides the tangents of nodes s through e, of which only s
// and e may already be fixed.
func resolveSubchain(c *Chain, ts []tangent, s, e int) {
	pt := func(i int) Point { return c.Node(i).Pt }

	if e-s == 1 {
		switch {
		case ts[s].fixed && ts[e].fixed:
		case ts[s].fixed:
			ts[e] = tangent{dir: mirrorTangent(ts[s].dir, pt(e).Sub(pt(s))), fixed: true}
		case ts[e].fixed:
			ts[s] = tangent{dir: mirrorTangent(ts[e].dir, pt(e).Sub(pt(s))), fixed: true}
		default:
			d := chord(pt(s), pt(e))
			ts[s] = tangent{dir: d, fixed: true}
			ts[e] = tangent{dir: d, fixed: true}
		}
		return
	}

	// Interior candidates only depend on points and the subchain's fixed
	// ends, so they are all computed before any of them is stored.
	interior := make([]Vec2, 0, e-s-1)
	var cands [3]Vec2
	for i := s + 1; i < e; i++ {
		n := 0
		if i-2 >= s {
			cands[n] = circleTangentLast(pt(i-2), pt(i-1), pt(i))
			n++
		} else if ts[s].fixed {
			cands[n] = mirrorTangent(ts[s].dir, pt(i).Sub(pt(s)))
			n++
		}
		cands[n] = circleTangentMiddle(pt(i-1), pt(i), pt(i+1))
		n++
		if i+2 <= e {
			cands[n] = circleTangentFirst(pt(i), pt(i+1), pt(i+2))
			n++
		} else if ts[e].fixed {
			cands[n] = mirrorTangent(ts[e].dir, pt(e).Sub(pt(i)))
			n++
		}
		interior = append(interior, combineCandidates(cands[:n]))
	}
	for k, d := range interior {
		ts[s+1+k] = tangent{dir: d, fixed: true}
	}

	if !ts[s].fixed {
		ts[s] = tangent{dir: circleTangentFirst(pt(s), pt(s+1), pt(s+2)), fixed: true}
	}
	if !ts[e].fixed {
		ts[e] = tangent{dir: circleTangentLast(pt(e-2), pt(e-1), pt(e)), fixed: true}
	}
}

// resolveJoiners gives slew and bound segments the directions of their fixed
// neighbours.
func resolveJoiners(c *Chain, ts []tangent) {
	nseg := c.Segments()
	for i := 0; i < nseg; {
		if c.Kind(i).priority() < 3 {
			i++
			continue
		}
		j := i
		for j < nseg && c.Kind(j).priority() >= 3 {
			j++
		}
		// nodes i through j
		for k := i + 1; k <= j; k++ {
			if !ts[k].fixed && ts[k-1].fixed {
				ts[k] = ts[k-1]
			}
		}
		for k := j - 1; k >= i; k-- {
			if !ts[k].fixed && ts[k+1].fixed {
				ts[k] = ts[k+1]
			}
		}
		if !ts[i].fixed {
			d := chord(c.Node(i).Pt, c.Node(j).Pt)
			for k := i; k <= j; k++ {
				ts[k] = tangent{dir: d, fixed: true}
			}
		}
		i = j
	}
}

// mirrorTangent returns the tangent at the other end of the circular arc that
// has the tangent known at one end and spans the given chord. As unit complex
// numbers, the two end tangents multiply to the square of the chord
// direction.
func mirrorTangent(known Vec2, ch Vec2) Vec2 {
	if ch.IsZero() {
		return known
	}
	u := ch.Unit().complex()
	return unitComplex(u * u / known.complex())
}

// The tangents of the circle through a, b and c, oriented from a towards c.
// By the inscribed angle theorem the tangent at b has the argument
// arg(b−a) + arg(c−b) − arg(c−a), and similarly for the end points.

func circleTangentMiddle(a, b, c Point) Vec2 {
	ab, bc, ac := b.Sub(a), c.Sub(b), c.Sub(a)
	if ab.IsZero() || bc.IsZero() || ac.IsZero() {
		return chord(a, c)
	}
	return unitComplex(ab.complex() * bc.complex() / ac.complex())
}

func circleTangentFirst(a, b, c Point) Vec2 {
	ab, bc, ac := b.Sub(a), c.Sub(b), c.Sub(a)
	if ab.IsZero() || bc.IsZero() || ac.IsZero() {
		return chord(a, b)
	}
	return unitComplex(ab.complex() * ac.complex() / bc.complex())
}

func circleTangentLast(a, b, c Point) Vec2 {
	ab, bc, ac := b.Sub(a), c.Sub(b), c.Sub(a)
	if ab.IsZero() || bc.IsZero() || ac.IsZero() {
		return chord(b, c)
	}
	return unitComplex(bc.complex() * ac.complex() / ab.complex())
}

// combineCandidates blends up to three tangent estimates. Each one is
// weighted by how much the other two disagree with each other, so that two
// estimates that agree outvote a third. Between two circular arcs this puts
// the joint cleanly on the arc that both neighbours agree on.
func combineCandidates(cands []Vec2) Vec2 {
	switch len(cands) {
	case 0:
		return DefaultDirection
	case 1:
		return cands[0]
	case 2:
		return cands[0].Add(cands[1]).Unit()
	}
	w0 := cands[1].Sub(cands[2]).Hypot()
	w1 := cands[0].Sub(cands[2]).Hypot()
	w2 := cands[0].Sub(cands[1]).Hypot()
	if w0+w1+w2 == 0 {
		return cands[0]
	}
	return cands[0].Mul(w0).Add(cands[1].Mul(w1)).Add(cands[2].Mul(w2)).Unit()
}
