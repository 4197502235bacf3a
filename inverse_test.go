package warp

import (
	"errors"
	"math"
	"testing"
)

func TestInverseRoundTrip(t *testing.T) {
	p := Smooth(sCurve(), testConfig())
	cur := p.NewCursor()
	fwd := p.NewCursor()
	for i := range 60 {
		l := p.TotalLength() * float64(i) / 60
		for _, d := range []float64{-9, -3, 0, 4, 9} {
			pt := fwd.Forward(l, d).Point
			inv, err := cur.Locate(pt, p)
			if err != nil {
				t.Fatalf("inverting (%g, %g): %s", l, d, err)
			}
			diff(t, l, inv.Lefting, approx(2e-3))
			diff(t, d, inv.Downing, approx(1e-3))
			if inv.Probes > p.Config().MaxProbes {
				t.Errorf("inverting (%g, %g) took %d probes", l, d, inv.Probes)
			}
		}
	}
}

func TestInverseBeyondEnds(t *testing.T) {
	p := Smooth(sCurve(), testConfig())
	cur := p.NewCursor()
	for _, l := range []float64{-30, -1, p.TotalLength() + 1, p.TotalLength() + 50} {
		pt := p.Forward(l, 2).Point
		inv, err := cur.Locate(pt, p)
		if err != nil {
			t.Fatalf("inverting (%g, 2): %s", l, err)
		}
		diff(t, Inversion{Lefting: l, Downing: 2}, Inversion{Lefting: inv.Lefting, Downing: inv.Downing}, approx(1e-4))
	}
}

func TestInverseSlew(t *testing.T) {
	c := NewChain(
		straightNode(0, 0),
		Node{Pt: Pt(100, 0), Kind: Magic},
		straightNode(140, 5),
		straightNode(240, 5),
	)
	p := Smooth(c, testConfig())
	cur := p.NewCursor()
	tests := []struct {
		pt   Point
		want Inversion
	}{
		{Pt(50, 0), Inversion{Lefting: 50}},
		{Pt(50, 2), Inversion{Lefting: 50, Downing: 2}},
		{Pt(120, 2.5), Inversion{Lefting: 120}},
		{Pt(200, 5), Inversion{Lefting: 200}},
		{Pt(200, 1), Inversion{Lefting: 200, Downing: -4}},
	}
	for _, tt := range tests {
		inv, err := cur.Inverse(tt.pt, 0)
		if err != nil {
			t.Fatalf("inverting %v: %s", tt.pt, err)
		}
		inv.Probes = 0
		diff(t, tt.want, inv, approx(1e-4))
	}
}

func TestInverseFarHint(t *testing.T) {
	p := Smooth(NewChain(straightNode(0, 0), straightNode(1000, 0)), testConfig())
	inv, err := p.NewCursor().Inverse(Pt(990, -3), 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 990.0, inv.Lefting, approx(1e-4))
	diff(t, -3.0, inv.Downing, approx(1e-9))
}

func TestInverseNaN(t *testing.T) {
	p := Smooth(sCurve(), testConfig())
	cur := p.NewCursor()
	for _, pt := range []Point{Pt(math.NaN(), 0), Pt(0, math.NaN())} {
		if _, err := cur.Inverse(pt, 0); !errors.Is(err, ErrNoRoot) {
			t.Errorf("inverting %v: got error %v, want ErrNoRoot", pt, err)
		}
	}
	if _, err := cur.Inverse(Pt(1, 1), math.NaN()); !errors.Is(err, ErrNoRoot) {
		t.Errorf("inverting with a NaN hint: got error %v, want ErrNoRoot", err)
	}
}

func TestInverseProbeBound(t *testing.T) {
	var tight []Node
	for deg := 0.0; deg <= 300; deg += 30 {
		tight = append(tight, Node{Pt: onCircle(1, deg), Kind: Track})
	}
	chains := map[string]*Chain{
		"tight circle": NewChain(tight...),
		"hairpin": NewChain(
			straightNode(0, 0),
			Node{Pt: Pt(10, 0), Kind: Magic},
			straightNode(10, 0.5),
			straightNode(0, 0.5),
		),
		"near-coincident nodes": NewChain(
			trackNode(0, 0),
			trackNode(10, 1),
			trackNode(10, 1+1e-7),
			trackNode(20, 0),
		),
		"s-curve": sCurve(),
	}
	for _, maxProbes := range []int{200, 7} {
		cfg := testConfig()
		cfg.MaxProbes = maxProbes
		for name, c := range chains {
			p := Smooth(c, cfg)
			cur := p.NewCursor()
			for x := -15.0; x <= 25; x += 2.5 {
				for y := -15.0; y <= 15; y += 2.5 {
					inv, _ := cur.Locate(Pt(x, y), p)
					if inv.Probes > maxProbes {
						t.Errorf("%s: inverting (%g, %g) took %d probes, limit %d", name, x, y, inv.Probes, maxProbes)
					}
				}
			}
		}
	}
}
