package warp

import "log/slog"

// Smooth builds the smoothed path of c. It is a pure function of the chain's
// nodes and the configuration; see [Memo] for caching it per chain.
func Smooth(c *Chain, cfg Config) *Path {
	n := c.Len()
	p := &Path{
		chain:    c,
		cfg:      cfg,
		pts:      make([]Point, n),
		nodeSlew: make([]float64, n),
		lefting:  make([]float64, n),
	}
	for i := range n {
		p.pts[i] = c.Node(i).Pt
	}
	p.tangents = resolveTangents(c)
	if n < 2 {
		return p
	}

	nseg := n - 1
	p.segs = make([]CubicBez, nseg)
	p.lineDir = make([]Vec2, nseg)
	p.segSlew = make([]float64, nseg)
	p.fellBack = make([]bool, nseg)

	for i := range nseg {
		var r float64
		if c.Kind(i).carriesSlew() {
			var ok bool
			r, ok = radialOffset(p.pts[i], p.tangents[i], p.pts[i+1], p.tangents[i+1], cfg.SlewCutoff)
			if !ok {
				p.fellBack[i] = true
				Logger().Debug("slew abandoned for near-antiparallel tangents",
					slog.Uint64("chain", c.ID()),
					slog.Int("segment", i),
					slog.String("kind", c.Kind(i).String()))
			}
		}
		// half of the offset is taken up on either side of the segment
		p.nodeSlew[i+1] = p.nodeSlew[i] - r
		p.segSlew[i] = p.nodeSlew[i] - r/2
	}

	for i := range nseg {
		seg, straight := buildSegment(p.reference(i), p.tangents[i], p.reference(i+1), p.tangents[i+1], cfg.ControlCorrection)
		p.segs[i] = seg
		var l float64
		if straight {
			l = seg.P3.Distance(seg.P0)
			if l > 0 {
				p.lineDir[i] = seg.P3.Sub(seg.P0).Mul(1 / l)
			} else {
				p.lineDir[i] = p.tangents[i]
			}
		} else {
			l = seg.Arclen(cfg.ArclenAccuracy)
		}
		p.lefting[i+1] = p.lefting[i] + l
	}
	return p
}
