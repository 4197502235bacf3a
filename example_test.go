package warp_test

import (
	"fmt"

	"github.com/railwarp/warp"
)

func Example() {
	// A straight approach, a right-hand curve, and a straight exit.
	c := warp.NewChain(
		warp.Node{Pt: warp.Pt(0, 0), Kind: warp.Straight},
		warp.Node{Pt: warp.Pt(100, 0), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(170, -30), Kind: warp.Track},
		warp.Node{Pt: warp.Pt(200, -100), Kind: warp.Straight},
		warp.Node{Pt: warp.Pt(200, -200)},
	)
	p := warp.Smooth(c, warp.DefaultConfig())
	cur := p.NewCursor()

	f := cur.Forward(50, 2)
	fmt.Printf("%.3f %.3f\n", f.Point.X, f.Point.Y)

	inv, err := cur.Inverse(f.Point, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f %.3f\n", inv.Lefting, inv.Downing)
	// Output:
	// 50.000 2.000
	// 50.000 2.000
}

func ExampleMemo() {
	m := warp.NewMemo(warp.DefaultConfig())
	c := warp.NewChain(
		warp.Node{Pt: warp.Pt(0, 0), Kind: warp.Straight},
		warp.Node{Pt: warp.Pt(30, 40)},
	)
	fmt.Println(m.Path(c) == m.Path(c), m.Path(c).TotalLength())

	// Edits produce new chains, which are smoothed separately.
	edited := c.WithNode(1, warp.Node{Pt: warp.Pt(60, 80)})
	fmt.Println(m.Path(edited).TotalLength(), m.Len())
	// Output:
	// true 50
	// 100 2
}
