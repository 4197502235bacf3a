package spatial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/railwarp/warp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func track() *warp.Path {
	return warp.Smooth(warp.NewChain(
		warp.Node{Pt: warp.Pt(0, 0), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(50, 10), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(100, 0), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(150, -20), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(200, 0), Kind: warp.Track},
	), warp.DefaultConfig())
}

func TestNodeIndexMatchesScan(t *testing.T) {
	p := track()
	idx := NewNodeIndex(p)
	diff(t, p.NumNodes(), idx.Len())
	for x := -50.0; x <= 250; x += 7 {
		for y := -60.0; y <= 60; y += 9 {
			pt := warp.Pt(x, y)
			got, ok := idx.NearestNode(pt)
			if !ok {
				t.Fatalf("no node near %v", pt)
			}
			// ties may resolve either way
			want, _ := p.NearestNode(pt)
			diff(t, pt.Distance(p.NodePoint(want.Node)), pt.Distance(p.NodePoint(got.Node)), cmpopts.EquateApprox(0, 1e-6))
			diff(t, p.NodeLefting(got.Node), got.Lefting)
		}
	}
}

func TestNodeIndexEmpty(t *testing.T) {
	idx := NewNodeIndex(warp.Smooth(warp.NewChain(), warp.DefaultConfig()))
	if _, ok := idx.NearestNode(warp.Pt(1, 2)); ok {
		t.Error("empty index found a node")
	}
}

func TestIntervalIndex(t *testing.T) {
	idx := NewIntervalIndex()
	srcs := []warp.BoundarySource{
		{Side: warp.Left, Min: 0, Max: 10},
		{Side: warp.Right, Min: 5, Max: 20},
		{Side: warp.Left, Min: 30, Max: 30},
	}
	for _, src := range srcs {
		idx.Insert(src)
	}
	idx.Insert(warp.BoundarySource{Min: 1, Max: math.NaN()})
	diff(t, 3, idx.Len())

	byMin := cmpopts.SortSlices(func(a, b warp.BoundarySource) bool { return a.Min < b.Min })
	diff(t, []warp.BoundarySource{srcs[0]}, idx.Search(2, 2))
	diff(t, []warp.BoundarySource{srcs[0], srcs[1]}, idx.Search(7, 8), byMin)
	diff(t, []warp.BoundarySource{srcs[2]}, idx.Search(30, 30))
	diff(t, []warp.BoundarySource{}, idx.Search(22, 28))
}

func TestMarginModelWithIndexes(t *testing.T) {
	p := warp.Smooth(warp.NewChain(
		warp.Node{Pt: warp.Pt(0, 0), Kind: warp.Straight},
		warp.Node{Pt: warp.Pt(100, 0)},
	), warp.DefaultConfig())
	bound := warp.NewChain(
		warp.Node{Pt: warp.Pt(20, 7), Kind: warp.Bound},
		warp.Node{Pt: warp.Pt(60, 7), Kind: warp.Bound},
		warp.Node{Pt: warp.Pt(80, -4), Kind: warp.Bound},
		warp.Node{Pt: warp.Pt(95, -4)},
	)
	m := warp.NewMarginModel(p, NewNodeIndex(p), NewIntervalIndex(), bound)
	// the middle segment crosses the track
	diff(t, 2, m.Len())

	cur := p.NewCursor()
	left, right := m.Margins(cur, 40)
	diff(t, [2]float64{7, 20}, [2]float64{left, right}, cmpopts.EquateApprox(0, 1e-9))
	left, right = m.Margins(cur, 90)
	diff(t, [2]float64{20, 4}, [2]float64{left, right}, cmpopts.EquateApprox(0, 1e-9))
}
