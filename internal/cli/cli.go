// Package cli implements the waypoint command-line interface.
//
// The CLI replays scenario files against an in-memory editor, prints routes
// between dots, exports Graphviz diagrams and serves the editor over HTTP.
// It is built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - run: Replay a scenario and summarize every floor and route
//   - route: Find one route in a scenario, optionally picking dots interactively
//   - diagram: Export a scenario as DOT or SVG
//   - serve: Start the HTTP editor
//   - floors: List configured floors
//   - cache: Manage the rendered diagram cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which shows
// every editor mutation. The level can also be set in the config file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/buildinfo"
	"github.com/matzehuels/waypoint/pkg/config"
	"github.com/matzehuels/waypoint/pkg/editor"
	"github.com/matzehuels/waypoint/pkg/scenario"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: config.Default()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "waypoint",
		Short:        "Waypoint routes between annotated points on floor plans",
		Long:         `Waypoint manages dots placed on floor-plan images, the weighted connections between them, and the cheapest routes across floors.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.floorsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.SetLogLevel(cfg.Log.Level)
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// newEditor builds an empty editor from the loaded config.
func (c *CLI) newEditor() (*editor.Editor, error) {
	reg, err := c.cfg.Registry()
	if err != nil {
		return nil, err
	}
	return editor.New(
		editor.WithLogger(c.Logger),
		editor.WithFloors(reg),
		editor.WithPolicy(c.cfg.WeightPolicy(reg)),
	), nil
}

// session is a replayed scenario.
type session struct {
	scenario *scenario.Scenario
	editor   *editor.Editor
	outcome  *scenario.Outcome
}

// keyOf returns the scenario key of a dot ID.
func (s *session) keyOf(id string) string {
	for k, v := range s.outcome.IDs {
		if v == id {
			return k
		}
	}
	return id
}

// replay loads the scenario at path and applies it to a fresh editor. When
// skipRoutes is set, the scenario's route queries are not run.
func (c *CLI) replay(ctx context.Context, path string, skipRoutes bool) (*session, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if skipRoutes {
		sc.Routes = nil
	}
	ed, err := c.newEditor()
	if err != nil {
		return nil, err
	}
	prog := newProgress(loggerFromContext(ctx))
	out, err := sc.Apply(ctx, ed)
	if err != nil {
		return nil, err
	}
	prog.done("Replayed " + path)
	return &session{scenario: sc, editor: ed, outcome: out}, nil
}
