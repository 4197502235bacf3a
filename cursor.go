package warp

import (
	"math"
	"sort"
)

// Cursor performs queries against a [Path]. It remembers the segment of the
// previous query, so that queries at nearby leftings skip the search.
//
// A Cursor must only be used by one goroutine at a time. Concurrent workers
// each create their own cursor for the same path.
type Cursor struct {
	path *Path

	seg      int // -1 before the first node, NumSegments() after the last
	from, to float64

	// Scale is the size of one rendering pixel in world units. It sets the
	// precision of [Cursor.Inverse].
	Scale float64
}

// NewCursor returns a cursor for p, with the scale taken from the path's
// configuration.
func (p *Path) NewCursor() *Cursor {
	c := &Cursor{path: p, Scale: p.cfg.Scale}
	c.reset()
	return c
}

// Path returns the path the cursor queries.
func (c *Cursor) Path() *Path { return c.path }

// reset invalidates the cached window. NaN bounds never contain a lefting.
func (c *Cursor) reset() {
	c.seg = math.MinInt
	c.from, c.to = math.NaN(), math.NaN()
}

// window returns the lefting range owned by segment seg. The pseudo-segments
// before the first and after the last node extend to infinity.
func (c *Cursor) window(seg int) (from, to float64) {
	p := c.path
	n := len(p.lefting)
	switch {
	case n == 0:
		return math.Inf(-1), math.Inf(1)
	case seg < 0:
		return math.Inf(-1), p.lefting[0]
	case seg >= len(p.segs):
		return p.lefting[n-1], math.Inf(1)
	default:
		return p.lefting[seg], p.lefting[seg+1]
	}
}

func (c *Cursor) setSegment(seg int) {
	c.seg = seg
	c.from, c.to = c.window(seg)
}

// seek makes the segment owning lefting the current one.
func (c *Cursor) seek(lefting float64) {
	if lefting >= c.from && lefting < c.to {
		return
	}
	p := c.path
	if len(p.lefting) == 0 {
		c.setSegment(0)
		return
	}
	if c.seg != math.MinInt {
		// Sweeps over the path mostly step into a neighbouring segment.
		if lefting >= c.to && c.seg < len(p.segs) {
			if from, to := c.window(c.seg + 1); lefting >= from && lefting < to {
				c.seg, c.from, c.to = c.seg+1, from, to
				return
			}
		} else if lefting < c.from && c.seg > -1 {
			if from, to := c.window(c.seg - 1); lefting >= from && lefting < to {
				c.seg, c.from, c.to = c.seg-1, from, to
				return
			}
		}
	}
	// The first node whose lefting exceeds the query ends the owning segment.
	k := sort.Search(len(p.lefting), func(i int) bool { return p.lefting[i] > lefting })
	c.setSegment(k - 1)
}
