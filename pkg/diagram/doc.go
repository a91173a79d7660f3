// Package diagram renders a floor plan graph as a Graphviz diagram.
//
// The diagram is a debugging and documentation aid: it shows every dot and
// connection independent of the floor-plan images, grouped by floor.
//
//	dot := diagram.ToDOT(ed.Snapshot(), diagram.Options{Path: res.Path})
//	svg, err := diagram.RenderSVG(ctx, dot)
//
// # Styling
//
//   - Each floor is a cluster labelled with the floor name.
//   - Edges are undirected and labelled with the two-decimal weight.
//   - Hidden dots and connections are drawn dashed and grey.
//   - Dots with a connection to another floor are filled green.
//   - Dots and connections on Options.Path are drawn red and thick.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process, so no external binary is needed.
package diagram
