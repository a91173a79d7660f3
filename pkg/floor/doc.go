// Package floor describes the closed set of floor-plan images a session can
// place dots on.
//
// # Overview
//
// Each floor has a display name (the identifier stored on every dot, e.g.
// "Map 2") and an integer ordinal. The ordinal drives the cross-floor
// weight heuristic: a connection between "Map 1" and "Map 3" costs
// |1 - 3| = 2.
//
// Ordinals are normally parsed from the trailing integer of the name:
//
//	floor.ParseOrdinal("Map 3")    // 3, true
//	floor.ParseOrdinal("Level-12") // 12, true
//	floor.ParseOrdinal("Lobby")    // 0, false
//
// A [Registry] may also pin an explicit ordinal for floors whose name carries
// none (for example a configured "Basement" at -1).
//
// # Default Floors
//
// [Default] returns the three floors the annotator ships with: "Map 1",
// "Map 2" and "Map 3".
//
// # Concurrency
//
// A Registry is immutable after construction and safe for concurrent reads.
package floor
