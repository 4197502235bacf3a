package warp

import (
	"sync"
	"testing"
)

func TestMemo(t *testing.T) {
	m := NewMemo(testConfig())
	c := sCurve()
	p := m.Path(c)
	if m.Path(c) != p {
		t.Error("second lookup smoothed again")
	}
	diff(t, 1, m.Len())

	// equal nodes, different identity
	q := m.Path(sCurve())
	if q == p {
		t.Error("distinct chains share a path")
	}
	diff(t, p.TotalLength(), q.TotalLength())
	diff(t, 2, m.Len())

	m.Forget(c)
	diff(t, 1, m.Len())
	if m.Path(c) == p {
		t.Error("forgotten path returned")
	}
}

func TestMemoConcurrent(t *testing.T) {
	m := NewMemo(testConfig())
	chains := []*Chain{sCurve(), sCurve(), sCurve()}
	paths := make([][]*Path, len(chains))
	for i := range paths {
		paths[i] = make([]*Path, 16)
	}
	var wg sync.WaitGroup
	for i, c := range chains {
		for j := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p := m.Path(c)
				// each worker owns its cursor
				p.NewCursor().Forward(float64(j), 1)
				paths[i][j] = p
			}()
		}
	}
	wg.Wait()
	for i := range chains {
		for j := range paths[i] {
			if paths[i][j] != paths[i][0] {
				t.Errorf("chain %d: worker %d got a different path", i, j)
			}
		}
	}
	diff(t, len(chains), m.Len())
}
