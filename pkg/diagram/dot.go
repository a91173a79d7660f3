package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/waypoint/pkg/plan"
)

// Options configures diagram generation.
type Options struct {
	// Floor limits the diagram to one floor. Connections leaving the floor
	// are omitted. Empty means every floor.
	Floor string

	// Path is a route to highlight, as returned by a route search.
	Path []string

	// Detailed adds floor and coordinates to dot labels.
	Detailed bool
}

const (
	pathColor   = "crimson"
	hiddenColor = "grey60"
	crossFill   = "palegreen"
)

// ToDOT converts a snapshot to Graphviz DOT source.
func ToDOT(snap *plan.Snapshot, opts Options) string {
	onPath := make(map[string]bool, len(opts.Path))
	pathEdges := make(map[plan.PairKey]bool, len(opts.Path))
	for i, id := range opts.Path {
		onPath[id] = true
		if i > 0 {
			pathEdges[plan.Pair(opts.Path[i-1], id)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")

	floors := snap.Floors()
	if opts.Floor != "" {
		floors = []string{opts.Floor}
	}
	included := make(map[string]bool)
	for i, name := range floors {
		fmt.Fprintf(&buf, "\n  subgraph \"cluster_%d\" {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", name)
		buf.WriteString("    style=rounded;\n")
		for _, d := range snap.DotsOn(name) {
			included[d.ID] = true
			fmt.Fprintf(&buf, "    %q [%s];\n", d.ID, strings.Join(dotAttrs(d, opts.Detailed, onPath[d.ID]), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, c := range snap.Connections {
		if !included[c.A] || !included[c.B] {
			continue
		}
		attrs := edgeAttrs(c, pathEdges[c.Key()])
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", c.A, c.B, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(d plan.Dot, detailed bool) string {
	if !detailed {
		return d.Label()
	}
	return fmt.Sprintf("%s\n%s (%.0f, %.0f)", d.Label(), d.Floor, d.X, d.Y)
}

func dotAttrs(d plan.Dot, detailed, onPath bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(d, detailed))}
	if d.CrossFloor {
		attrs = append(attrs, "fillcolor="+crossFill)
	}
	switch {
	case onPath:
		attrs = append(attrs, "color="+pathColor, "penwidth=3")
	case !d.RenderVisible:
		attrs = append(attrs, "style=\"filled,dashed\"", "color="+hiddenColor, "fontcolor="+hiddenColor)
	}
	return attrs
}

func edgeAttrs(c plan.Connection, onPath bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", c.DisplayWeight())}
	switch {
	case onPath:
		attrs = append(attrs, "color="+pathColor, "penwidth=3")
	case !c.Visible:
		attrs = append(attrs, "style=dashed", "color="+hiddenColor, "fontcolor="+hiddenColor)
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from its
// origin in a browser.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
