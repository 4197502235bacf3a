package warp

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// SegmentKind describes how the segment following a node is shaped.
type SegmentKind int

const (
	// Straight segments are exact lines; both end tangents follow the chord.
	Straight SegmentKind = iota
	// Track segments are curved track, shaped by circular-arc fitting.
	Track
	// Magic segments join two pieces of track automatically and may carry
	// slew.
	Magic
	// Slew segments are lateral joiners between offset tracks.
	Slew
	// Bound segments are not track; they delimit rendering margins.
	Bound
)

func (k SegmentKind) String() string {
	switch k {
	case Straight:
		return "straight"
	case Track:
		return "track"
	case Magic:
		return "magic"
	case Slew:
		return "slew"
	case Bound:
		return "bound"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// priority orders the tangent passes. Lower values are decided first.
func (k SegmentKind) priority() int {
	switch k {
	case Straight:
		return 0
	case Track:
		return 1
	case Magic:
		return 2
	default:
		return 3
	}
}

// carriesSlew reports whether segments of this kind are represented as a
// pair of concentric arcs.
func (k SegmentKind) carriesSlew() bool {
	return k == Magic || k == Slew
}

// Node is a point of a chain.
type Node struct {
	Pt Point
	// Heading locks the tangent at this node when non-zero. Its magnitude is
	// irrelevant.
	Heading Vec2
	// Kind is the kind of the segment that starts at this node. It is
	// ignored on the last node of a chain.
	Kind SegmentKind
}

// Locked reports whether the node's tangent is fixed by its heading.
func (n Node) Locked() bool {
	return !n.Heading.IsZero()
}

var chainSerial atomic.Uint64

// Chain is an immutable, ordered sequence of nodes. Every Chain value has an
// identity of its own; edits return new chains with new identities.
type Chain struct {
	id    uint64
	nodes []Node
}

// NewChain returns a chain holding a copy of nodes.
func NewChain(nodes ...Node) *Chain {
	return &Chain{
		id:    chainSerial.Add(1),
		nodes: slices.Clone(nodes),
	}
}

// ID returns the chain's identity. It is unique within the process.
func (c *Chain) ID() uint64 { return c.id }

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Segments returns the number of segments, which is one less than the
// number of nodes for non-empty chains.
func (c *Chain) Segments() int { return max(len(c.nodes)-1, 0) }

func (c *Chain) Node(i int) Node { return c.nodes[i] }

// Nodes returns a copy of the chain's nodes.
func (c *Chain) Nodes() []Node { return slices.Clone(c.nodes) }

// Kind returns the kind of segment i, which runs from node i to node i+1.
func (c *Chain) Kind(i int) SegmentKind { return c.nodes[i].Kind }

// WithNode returns a new chain with node i replaced.
func (c *Chain) WithNode(i int, n Node) *Chain {
	nodes := slices.Clone(c.nodes)
	nodes[i] = n
	return &Chain{id: chainSerial.Add(1), nodes: nodes}
}

// Append returns a new chain with nodes added at the end.
func (c *Chain) Append(nodes ...Node) *Chain {
	out := make([]Node, 0, len(c.nodes)+len(nodes))
	out = append(out, c.nodes...)
	out = append(out, nodes...)
	return &Chain{id: chainSerial.Add(1), nodes: out}
}

// Insert returns a new chain with n inserted before node i.
func (c *Chain) Insert(i int, n Node) *Chain {
	return &Chain{id: chainSerial.Add(1), nodes: slices.Insert(slices.Clone(c.nodes), i, n)}
}

// Delete returns a new chain without node i.
func (c *Chain) Delete(i int) *Chain {
	return &Chain{id: chainSerial.Add(1), nodes: slices.Delete(slices.Clone(c.nodes), i, i+1)}
}

// Equal reports whether two chains have the same nodes, regardless of
// identity.
func (c *Chain) Equal(o *Chain) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return slices.Equal(c.nodes, o.nodes)
}
