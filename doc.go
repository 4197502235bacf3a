// Package warp straightens railway track for inspection. It maps the plane
// around a track, digitized as a chain of nodes, to a rectified coordinate
// system in which the track runs along a straight axis, so that imagery can
// be displayed as if the track had no curves.
//
// # Coordinates
//
// Lefting is the arc length along the smoothed track, from its first node.
// Downing is the lateral offset from the track, positive on the left of the
// direction of travel. Both are in the units of the (already projected) world
// plane.
//
// # Chains and paths
//
// A [Chain] is an immutable list of [Node] values. Each node carries the kind
// of the segment that follows it: [Straight], [Track], [Magic], [Slew] or
// [Bound]. [Smooth] turns a chain into a [Path] of tangent-continuous cubic
// Béziers. Tangents are decided in order of segment kind, so that straights
// constrain track curves, track curves constrain magic joins, and slew and
// bound segments inherit from their neighbours. Interior track tangents
// blend the tangents of the circles through neighbouring triples of nodes.
//
// # Slew
//
// Two pieces of track that are laterally offset, such as parallel tracks
// joined by a crossover, cannot be joined by a single smooth curve without
// distorting the image. Magic and slew segments are therefore represented as
// two concentric circular arcs; the radial distance between them is the
// slew. The path's reference curve runs through the nodes displaced by the
// accumulated slew, and [Cursor.Forward] removes it again, so that downing 0
// stays on the physical track on both sides of a joiner.
//
// # Queries
//
// Queries go through a [Cursor], which caches the current segment and must
// be owned by a single goroutine. [Cursor.Forward] maps (lefting, downing) to
// the world, [Cursor.Inverse] maps back with a bounded bracketing search, and
// [Cursor.SingularDowning] reports where the rectified coordinates fold over
// at the centre of curvature. [MarginModel] reports how far imagery extends
// on either side of the track before reaching a boundary.
//
// Paths and margin models are immutable and may be shared. [Memo] caches
// paths by chain identity.
//
// Spatial lookups, used for starting points of inverse searches and for
// indexing boundaries, are supplied by the caller through [NodeLocator] and
// [BoundaryIndex]; package spatial provides R-tree implementations.
package warp
