// Package pkg provides the libraries behind waypoint, a router for
// annotated floor plans.
//
// # Overview
//
// Users place dots on floor-plan images, connect them, and ask for the
// cheapest route between two dots, possibly across floors. The pkg
// directory is organized in layers:
//
//  1. [floor] - Floor registry and floor ordinals
//  2. [plan] - Dots, connections, the entity store, weights and floor views
//  3. [plan/route] - Shortest-path search over a plan snapshot
//  4. [editor] - The editing session UIs call into
//  5. [config], [scenario] - TOML configuration and scripted sessions
//  6. [diagram], [cache] - Graphviz export and rendered artifact cache
//  7. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	UI event (click, menu choice)
//	         ↓
//	    [editor] validates and applies it to a [plan.Store]
//	         ↓
//	    [plan/route] searches a [plan.Snapshot] when a route is requested
//	         ↓
//	    [plan.FloorView] tells the UI what to draw on the active floor
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/waypoint/pkg/editor"
//	)
//
//	ed := editor.New()
//	lobby, _ := ed.PlaceNamedDot("Map 1", 40, 60, "Lobby")
//	stairs, _ := ed.PlaceNamedDot("Map 1", 200, 60, "Stairs")
//	upper, _ := ed.PlaceNamedDot("Map 2", 200, 60, "Stairs")
//	ed.ConnectDots(lobby.ID, stairs.ID)
//	ed.ConnectDots(stairs.ID, upper.ID)
//
//	res, err := ed.FindPath(lobby.ID, upper.ID)
//	view := ed.FloorView("Map 1")
//
// # Weights
//
// A connection's weight is fixed when it is created. Dots on the same floor
// are weighted by the straight-line distance between their coordinates.
// Dots on different floors are weighted by how many floors apart they are,
// optionally scaled by a configured per-floor cost.
//
// [floor]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/floor
// [plan]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/plan
// [plan/route]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/plan/route
// [editor]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/editor
// [config]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/config
// [scenario]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/scenario
// [diagram]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/diagram
// [cache]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/buildinfo
// [plan.Store]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/plan#Store
// [plan.Snapshot]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/plan#Snapshot
// [plan.FloorView]: https://pkg.go.dev/github.com/matzehuels/waypoint/pkg/plan#FloorView
package pkg
