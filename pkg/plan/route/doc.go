// Package route finds minimum-weight paths through an annotation graph.
//
// # Algorithm
//
// [Shortest] runs single-source Dijkstra toward one target over a
// [plan.Snapshot]. It considers every dot and connection in the snapshot,
// on every floor and regardless of visibility flags:
//
//  1. dist[start] = 0, every other dot +Inf, all dots unvisited
//  2. select the unvisited dot with the smallest distance; stop when it is
//     the target or when its distance is +Inf
//  3. mark it visited and relax each connection to an unvisited neighbour
//  4. repeat
//
// The minimum is found with a linear scan, so a search is O(V²). That is
// fine for hand-placed annotation graphs of tens to a few hundred dots.
//
// # Ties
//
// When two unvisited dots share the smallest distance, the dot with the
// lower [plan.Dot.Seq] (the one created first) is selected. Results are
// therefore reproducible for a given store history, but two equally short
// paths are disambiguated by creation order, not by any geometric rule.
//
// # Errors
//
// A start or end ID missing from the snapshot yields a NOT_FOUND error; a
// target that cannot be reached yields UNREACHABLE. Neither panics. When
// start equals end the path is the single dot with cost 0.
package route
