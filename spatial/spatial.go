// Package spatial provides R-tree backed implementations of the spatial
// lookups used by package warp: nearest node hints for inverse searches and
// the lefting interval index of boundary sources.
//
// Both indexes are built once and are then safe for concurrent queries.
package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/railwarp/warp"
)

// Branching factors of the R-trees.
const (
	minChildren = 8
	maxChildren = 32
)

// tolerance is the half width given to points, and the minimum width given
// to intervals, since R-tree rectangles must have positive extent.
const tolerance = 1e-9

type nodeEntry struct {
	rect rtreego.Rect
	hint warp.Hint
}

func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// NodeIndex answers nearest node queries over the nodes of a path. It
// implements [warp.NodeLocator].
type NodeIndex struct {
	tree *rtreego.Rtree
}

var _ warp.NodeLocator = (*NodeIndex)(nil)

// NewNodeIndex indexes the nodes of p.
func NewNodeIndex(p *warp.Path) *NodeIndex {
	entries := make([]rtreego.Spatial, 0, p.NumNodes())
	for i := range p.NumNodes() {
		pt := p.NodePoint(i)
		entries = append(entries, &nodeEntry{
			rect: rtreego.Point{pt.X, pt.Y}.ToRect(tolerance),
			hint: warp.Hint{Node: i, Lefting: p.NodeLefting(i)},
		})
	}
	return &NodeIndex{tree: rtreego.NewTree(2, minChildren, maxChildren, entries...)}
}

// NearestNode returns the node nearest to pt. It returns false for an empty
// index.
func (x *NodeIndex) NearestNode(pt warp.Point) (warp.Hint, bool) {
	if x.tree.Size() == 0 {
		return warp.Hint{}, false
	}
	e, ok := x.tree.NearestNeighbor(rtreego.Point{pt.X, pt.Y}).(*nodeEntry)
	if !ok {
		return warp.Hint{}, false
	}
	return e.hint, true
}

// Len returns the number of indexed nodes.
func (x *NodeIndex) Len() int { return x.tree.Size() }

type intervalEntry struct {
	rect rtreego.Rect
	src  warp.BoundarySource
}

func (e *intervalEntry) Bounds() rtreego.Rect { return e.rect }

// IntervalIndex stores boundary sources in a one-dimensional R-tree keyed by
// their lefting interval. It implements [warp.BoundaryIndex].
type IntervalIndex struct {
	tree *rtreego.Rtree
}

var _ warp.BoundaryIndex = (*IntervalIndex)(nil)

// NewIntervalIndex returns an empty index.
func NewIntervalIndex() *IntervalIndex {
	return &IntervalIndex{tree: rtreego.NewTree(1, minChildren, maxChildren)}
}

func interval(lo, hi float64) (rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{lo}, []float64{max(hi-lo, tolerance)})
}

// Insert adds src. Sources with a NaN interval are ignored.
func (x *IntervalIndex) Insert(src warp.BoundarySource) {
	if math.IsNaN(src.Min) || math.IsNaN(src.Max) {
		return
	}
	r, err := interval(src.Min, src.Max)
	if err != nil {
		return
	}
	x.tree.Insert(&intervalEntry{rect: r, src: src})
}

// Search returns the sources whose intervals overlap [lo, hi].
func (x *IntervalIndex) Search(lo, hi float64) []warp.BoundarySource {
	r, err := interval(lo-tolerance, hi+tolerance)
	if err != nil {
		return nil
	}
	hits := x.tree.SearchIntersect(r)
	out := make([]warp.BoundarySource, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*intervalEntry).src)
	}
	return out
}

// Len returns the number of indexed sources.
func (x *IntervalIndex) Len() int { return x.tree.Size() }
