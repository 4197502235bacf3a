package warp

import "math"

// Path is the smoothed form of a [Chain]: one reference cubic per segment,
// the slews that relate the reference curve to the physical track, and the
// cumulative lefting of every node.
//
// A Path is immutable and may be shared between goroutines. Queries go
// through a [Cursor], which must not be shared.
type Path struct {
	chain *Chain
	cfg   Config

	pts      []Point // physical node positions
	tangents []Vec2
	nodeSlew []float64
	lefting  []float64

	segs     []CubicBez
	lineDir  []Vec2 // unit direction of straight segments, zero otherwise
	segSlew  []float64
	fellBack []bool // joining segments that lost their slew
}

// Chain returns the chain the path was built from.
func (p *Path) Chain() *Chain { return p.chain }

// Config returns the configuration the path was built with.
func (p *Path) Config() Config { return p.cfg }

// NumNodes returns the number of nodes.
func (p *Path) NumNodes() int { return len(p.pts) }

// NumSegments returns the number of segments.
func (p *Path) NumSegments() int { return len(p.segs) }

// TotalLength returns the lefting of the last node. Paths of fewer than two
// nodes have zero length.
func (p *Path) TotalLength() float64 {
	if len(p.lefting) == 0 {
		return 0
	}
	return p.lefting[len(p.lefting)-1]
}

// NodeLefting returns the lefting of node i.
func (p *Path) NodeLefting(i int) float64 { return p.lefting[i] }

// Tangent returns the resolved unit tangent at node i.
func (p *Path) Tangent(i int) Vec2 { return p.tangents[i] }

// NodeSlew returns the slew accumulated before node i. The reference curve
// passes through the node's position displaced along its normal by this
// amount.
func (p *Path) NodeSlew(i int) float64 { return p.nodeSlew[i] }

// SegmentSlew returns the slew in force strictly between node i and node
// i+1.
func (p *Path) SegmentSlew(i int) float64 { return p.segSlew[i] }

// Segment returns the reference cubic of segment i.
func (p *Path) Segment(i int) CubicBez { return p.segs[i] }

// IsStraight reports whether segment i is an exact line.
func (p *Path) IsStraight(i int) bool { return !p.lineDir[i].IsZero() }

// SlewAbandoned reports whether joining segment i had tangents too close to
// antiparallel for a slew, and was built as a plain cubic instead.
func (p *Path) SlewAbandoned(i int) bool { return p.fellBack[i] }

// NearestNode returns the node closest to pt and its lefting, by linear
// scan. It serves as a [NodeLocator] when no spatial index is available.
func (p *Path) NearestNode(pt Point) (Hint, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, q := range p.pts {
		if d := q.DistanceSquared(pt); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Hint{}, false
	}
	return Hint{Node: best, Lefting: p.lefting[best]}, true
}

// NodePoint returns the physical position of node i.
func (p *Path) NodePoint(i int) Point { return p.pts[i] }

// reference returns the start of the reference curve at node i.
func (p *Path) reference(i int) Point {
	return p.pts[i].Translate(p.tangents[i].Perp().Mul(p.nodeSlew[i]))
}

// Forward maps (lefting, downing) to the world using a temporary cursor.
// Callers that make many queries should hold a [Cursor] instead.
func (p *Path) Forward(lefting, downing float64) Frame {
	return p.NewCursor().Forward(lefting, downing)
}

// Curvature returns the signed curvature at lefting using a temporary
// cursor.
func (p *Path) Curvature(lefting float64) float64 {
	return p.NewCursor().Curvature(lefting)
}
