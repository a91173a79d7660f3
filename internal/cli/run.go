package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/plan"
	"github.com/matzehuels/waypoint/pkg/plan/route"
)

// runCommand replays a scenario and reports what it built.
func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Replay a scenario and summarize floors and routes",
		Long: `Replay a scenario file against a fresh editor.

Prints the dots and connections on every floor, then the answer to each
route query in the scenario.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScenario(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runScenario(ctx context.Context, path string) error {
	s, err := c.replay(ctx, path, false)
	if err != nil {
		return err
	}

	snap := s.editor.Snapshot()
	fmt.Fprintln(out, StyleTitle.Render(path))
	printStats(
		fmt.Sprintf("%d dots", len(snap.Dots)),
		fmt.Sprintf("%d connections", len(snap.Connections)),
	)
	printNewline()

	for _, f := range s.editor.Floors().Floors() {
		view := s.editor.FloorView(f.Name)
		summary := fmt.Sprintf("%d dots, %d connections", len(view.Dots), len(view.Connections))
		if n := len(view.Highlighted); n > 0 {
			summary += ", " + styleCrossFloor.Render(fmt.Sprintf("%d %s", n, iconStairs))
		}
		printKeyValue(f.Name, summary)
	}

	if len(s.outcome.Routes) == 0 {
		return nil
	}
	printNewline()
	for _, r := range s.outcome.Routes {
		if r.Err != nil {
			printError("%s %s %s: %s", r.From, iconArrow, r.To, errors.UserMessage(r.Err))
			continue
		}
		printRoute(s, r.Result)
	}
	return nil
}

// printRoute prints a found route by scenario key with one detail line per
// floor when the route changes floors.
func printRoute(s *session, res route.Result) {
	keys := make([]string, len(res.Path))
	for i, id := range res.Path {
		keys[i] = s.keyOf(id)
	}
	printSuccess("%s  %s", strings.Join(keys, " "+iconArrow+" "),
		StyleNumber.Render(fmt.Sprintf("cost %.2f", plan.Round2(res.Cost))))

	legs := res.Legs(s.editor.Snapshot())
	if len(legs) < 2 {
		return
	}
	for _, leg := range legs {
		names := make([]string, len(leg.Dots))
		for i, id := range leg.Dots {
			names[i] = s.keyOf(id)
		}
		printDetail("%s: %s", leg.Floor, strings.Join(names, " "+iconArrow+" "))
	}
}
