package warp

import (
	"fmt"
	"log/slog"
	"math"
)

// Side says on which side of the track a boundary lies.
type Side int

const (
	// Left is the side of positive downing.
	Left Side = iota
	// Right is the side of negative downing.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// BoundarySource is a boundary segment that limits the margin on one side of
// the track, for leftings between Min and Max.
type BoundarySource struct {
	Line Line
	Side Side
	Min  float64
	Max  float64
}

// BoundaryIndex stores boundary sources by their lefting interval. Insert is
// only called while a [MarginModel] is built; Search may be called
// concurrently afterwards.
type BoundaryIndex interface {
	Insert(src BoundarySource)
	// Search returns every source whose interval overlaps [lo, hi]. It may
	// return more.
	Search(lo, hi float64) []BoundarySource
}

// MarginModel reports how far the imagery around a track extends before it
// reaches a boundary. It is immutable once built.
type MarginModel struct {
	path  *Path
	cfg   Config
	index BoundaryIndex
	n     int
}

// NewMarginModel classifies the bound segments of chains against path and
// stores them in index. Each segment must lie entirely on one side of the
// track; segments that straddle it, or that cannot be located, are dropped.
// If loc is nil the path's own nearest node search is used.
func NewMarginModel(path *Path, loc NodeLocator, index BoundaryIndex, chains ...*Chain) *MarginModel {
	if loc == nil {
		loc = path
	}
	m := &MarginModel{path: path, cfg: path.cfg, index: index}
	cur := path.NewCursor()
	for _, ch := range chains {
		for i := range ch.Segments() {
			if ch.Kind(i) != Bound {
				continue
			}
			line := Line{P0: ch.Node(i).Pt, P1: ch.Node(i + 1).Pt}
			src, ok := classifyBoundary(cur, loc, line)
			if !ok {
				Logger().Debug("boundary segment dropped",
					slog.Uint64("chain", ch.ID()),
					slog.Int("segment", i))
				continue
			}
			index.Insert(src)
			m.n++
		}
	}
	return m
}

func classifyBoundary(cur *Cursor, loc NodeLocator, line Line) (BoundarySource, bool) {
	var inv [2]Inversion
	for k, pt := range [2]Point{line.P0, line.P1} {
		r, err := cur.Locate(pt, loc)
		if err != nil {
			return BoundarySource{}, false
		}
		inv[k] = r
	}
	src := BoundarySource{
		Line: line,
		Min:  min(inv[0].Lefting, inv[1].Lefting),
		Max:  max(inv[0].Lefting, inv[1].Lefting),
	}
	switch {
	case inv[0].Downing > 0 && inv[1].Downing > 0:
		src.Side = Left
	case inv[0].Downing < 0 && inv[1].Downing < 0:
		src.Side = Right
	default:
		return BoundarySource{}, false
	}
	return src, true
}

// Len returns the number of boundary sources in the model.
func (m *MarginModel) Len() int { return m.n }

// Margins returns the distance from the track to the nearest boundary on
// either side at lefting, measured in downing along the normal. Sides
// without a boundary report the default margin; all margins are capped.
//
// c must be a cursor of the model's path.
func (m *MarginModel) Margins(c *Cursor, lefting float64) (left, right float64) {
	f := c.Forward(lefting, 0)
	left, right = math.Inf(1), math.Inf(1)
	for _, src := range m.index.Search(lefting, lefting) {
		if lefting < src.Min || lefting > src.Max {
			continue
		}
		s, ok := src.Line.RayCrossing(f.Base, f.Normal)
		if !ok {
			continue
		}
		d := s + f.Slew
		switch src.Side {
		case Left:
			if d >= 0 {
				left = min(left, d)
			}
		case Right:
			if d <= 0 {
				right = min(right, -d)
			}
		}
	}
	if math.IsInf(left, 1) {
		left = m.cfg.DefaultMargin
	}
	if math.IsInf(right, 1) {
		right = m.cfg.DefaultMargin
	}
	return min(left, m.cfg.MaxMargin), min(right, m.cfg.MaxMargin)
}
