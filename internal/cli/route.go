package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/errors"
)

type routeOpts struct {
	from string
	to   string
	pick bool
}

// routeCommand finds a single route inside a scenario.
func (c *CLI) routeCommand() *cobra.Command {
	var opts routeOpts
	cmd := &cobra.Command{
		Use:   "route <scenario.toml>",
		Short: "Find the cheapest route between two dots of a scenario",
		Long: `Replay a scenario's dots and links, then find the cheapest route between
two of its dots. The scenario's own route queries are ignored.

Dots are named by their scenario keys. With --pick, start and end are chosen
from an interactive list instead.`,
		Example: `  waypoint route hospital.toml --from lobby --to ward
  waypoint route hospital.toml --pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.findRoute(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "start dot key")
	cmd.Flags().StringVar(&opts.to, "to", "", "end dot key")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose start and end interactively")
	return cmd
}

func (c *CLI) findRoute(ctx context.Context, path string, opts routeOpts) error {
	if !opts.pick && (opts.from == "" || opts.to == "") {
		return fmt.Errorf("--from and --to are required unless --pick is set")
	}
	s, err := c.replay(ctx, path, true)
	if err != nil {
		return err
	}

	var start, end string
	if opts.pick {
		items := pickItems(s)
		if start, err = runDotPicker("Select start", items); err != nil || start == "" {
			return err
		}
		if end, err = runDotPicker("Select destination", items); err != nil || end == "" {
			return err
		}
	} else {
		if start, err = s.idOf(opts.from); err != nil {
			return err
		}
		if end, err = s.idOf(opts.to); err != nil {
			return err
		}
	}

	res, err := s.editor.FindPath(start, end)
	if err != nil {
		return err
	}
	printRoute(s, res)
	return nil
}

// idOf resolves a scenario key to a dot ID.
func (s *session) idOf(key string) (string, error) {
	id, ok := s.outcome.IDs[key]
	if !ok {
		return "", errors.NotFound("no dot with key %q", key)
	}
	return id, nil
}
