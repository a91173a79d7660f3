// Package editor is the entry point a floor-plan UI calls into.
//
// An [Editor] wraps a [plan.Store] with the rules of an editing session:
// floor names are checked against a [floor.Registry], connection weights
// come from a [plan.Policy], compound operations such as deleting a dot
// apply completely before returning, and found routes are revealed on the
// store.
//
//	ed := editor.New(editor.WithLogger(logger))
//	a, _ := ed.PlaceDot("Map 1", 120, 80)
//	b, _ := ed.PlaceDot("Map 2", 40, 300)
//	if _, err := ed.ConnectDots(a.ID, b.ID); err != nil {
//	    // rejected: missing dot, self-connection or duplicate
//	}
//	res, err := ed.FindPath(a.ID, b.ID)
//
// UI state such as the active floor or the open context menu is not kept
// here; callers pass the floor to [Editor.FloorView] on each render.
//
// Errors are *errors.Error values with NOT_FOUND, INVALID_OPERATION,
// INVALID_INPUT or UNREACHABLE codes. None of them leaves the store
// partially modified.
//
// An Editor is not safe for concurrent use.
package editor
