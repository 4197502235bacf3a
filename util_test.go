package warp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, to within an absolute
// tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Scale = 1e-3
	return cfg
}

func straightNode(x, y float64) Node { return Node{Pt: Pt(x, y), Kind: Straight} }
func trackNode(x, y float64) Node    { return Node{Pt: Pt(x, y), Kind: Track} }
