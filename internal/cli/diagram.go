package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/cache"
	"github.com/matzehuels/waypoint/pkg/diagram"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type diagramOpts struct {
	output   string
	format   string
	floor    string
	from     string
	to       string
	detailed bool
	noCache  bool
}

// diagramCommand exports a scenario's graph with Graphviz.
func (c *CLI) diagramCommand() *cobra.Command {
	opts := diagramOpts{format: formatDOT}
	cmd := &cobra.Command{
		Use:   "diagram <scenario.toml>",
		Short: "Export a scenario as a Graphviz diagram",
		Long: `Replay a scenario's dots and links and export the resulting graph as
Graphviz DOT source or a rendered SVG. Each floor becomes a cluster; hidden
elements are dashed and cross-floor dots are filled green.

With --from and --to the cheapest route between two dot keys is highlighted.`,
		Example: `  waypoint diagram hospital.toml > plan.dot
  waypoint diagram hospital.toml --format svg -o plan.svg --from lobby --to ward`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.exportDiagram(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVar(&opts.floor, "floor", "", "only include this floor")
	cmd.Flags().StringVar(&opts.from, "from", "", "highlight a route starting at this dot key")
	cmd.Flags().StringVar(&opts.to, "to", "", "highlight a route ending at this dot key")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add floor and coordinates to labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-render SVG output")
	return cmd
}

func (c *CLI) exportDiagram(ctx context.Context, path string, opts diagramOpts) error {
	if opts.format != formatDOT && opts.format != formatSVG {
		return fmt.Errorf("unknown format %q: want dot or svg", opts.format)
	}
	if (opts.from == "") != (opts.to == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	s, err := c.replay(ctx, path, true)
	if err != nil {
		return err
	}
	if opts.floor != "" && !s.editor.Floors().Has(opts.floor) {
		return fmt.Errorf("unknown floor %q", opts.floor)
	}

	dopts := diagram.Options{Floor: opts.floor, Detailed: opts.detailed}
	if opts.from != "" {
		start, err := s.idOf(opts.from)
		if err != nil {
			return err
		}
		end, err := s.idOf(opts.to)
		if err != nil {
			return err
		}
		res, err := s.editor.FindPath(start, end)
		if err != nil {
			return err
		}
		dopts.Path = res.Path
	}

	data := []byte(diagram.ToDOT(s.editor.Snapshot(), dopts))
	if opts.format == formatSVG {
		if data, err = c.renderSVG(ctx, string(data), opts.noCache); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess("Wrote %s diagram", opts.format)
	printFile(opts.output)
	return nil
}

// renderSVG renders DOT source, reusing a cached rendering of identical
// source when one exists.
func (c *CLI) renderSVG(ctx context.Context, dot string, noCache bool) ([]byte, error) {
	store := c.newCache(noCache)
	key := cache.Key("svg", dot)
	if svg, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("svg cache hit", "key", key[:12])
		return svg, nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
	spinner.Start()
	svg, err := diagram.RenderSVG(ctx, dot)
	spinner.Stop()
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	if err := store.Set(ctx, key, svg, svgTTL); err != nil {
		c.Logger.Warn("could not cache svg", "err", err)
	}
	return svg, nil
}
