// Package plan holds the annotation graph of a floor-plan session: dots
// placed on floor images and weighted connections between them.
//
// # Overview
//
// A [Store] owns the canonical collections. Every mutation goes through it
// and every mutation either applies completely or not at all:
//
//	s := plan.New()
//	a := s.AddDot("Map 1", 0, 0, "Entrance")
//	b := s.AddDot("Map 1", 3, 4, "Stairs")
//	c, err := s.AddConnection(a.ID, b.ID, plan.Weight(a, b))
//	// c.Weight == 5
//
// Dots get an opaque ID (a UUID by default, see [IDGenerator]) and a
// monotonic [Dot.Seq]. Seq is never reused and gives a stable creation
// order for listings and for tie-breaking in the route engine.
//
// # Invariants
//
// The store guarantees at all times:
//
//   - dot IDs are unique across every floor
//   - at most one connection joins an unordered pair of dots, and no
//     connection joins a dot to itself
//   - both endpoints of every connection exist; [Store.DeleteDot] removes
//     the incident connections in the same call
//   - [Dot.CrossFloor] is true iff a connection joins the dot to a dot on
//     another floor; it is recomputed on every connection change
//
// # Weights
//
// Connection weights come from a [Policy]. On one floor the weight is the
// Euclidean distance in image pixels. Across floors it is the difference of
// the two floor ordinals, so a hop between adjacent floors costs 1. The
// heuristic is coarse on purpose and comparable to pixel distances only in
// magnitude; [Policy.HopCost] scales it when a session needs real stair
// or elevator costs. Weights are computed once, when a connection is
// created.
//
// # Views
//
// [Store.Snapshot] returns a deep, read-only copy of the graph for the
// route engine. [Project] and [Store.FloorView] derive what one floor
// should render, and [Store.ApplyPath] reveals a found route.
//
// # Concurrency
//
// Store instances are not safe for concurrent use. Snapshots are immutable
// and may be shared between goroutines.
package plan
