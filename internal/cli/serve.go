package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/internal/server"
)

type serveOpts struct {
	addr     string
	scenario string
}

// serveCommand runs the HTTP editor until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an editing session over HTTP",
		Long: `Start an HTTP server exposing one in-memory editing session as a JSON API.

The session starts empty unless --scenario preloads it. State is lost when
the server stops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "preload a scenario file")
	return cmd
}

func (c *CLI) serve(ctx context.Context, opts serveOpts) error {
	var err error
	s := &session{}
	if opts.scenario != "" {
		if s, err = c.replay(ctx, opts.scenario, false); err != nil {
			return err
		}
		printInfo("Loaded %d dots from %s", len(s.outcome.IDs), opts.scenario)
	} else if s.editor, err = c.newEditor(); err != nil {
		return err
	}

	cfg := c.cfg.Server
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	return server.New(s.editor, c.Logger, cfg).Run(ctx)
}
