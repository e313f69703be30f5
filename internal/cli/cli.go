// Package cli implements the graph workbench command-line interface.
//
// The workbench builds in-memory topologies through the loader package
// and exercises the graph library from the terminal: degree and flow
// accounting, criterion-driven ordering, and breadth first
// reachability. Commands share one option surface (seed, direction,
// flows) resolved from flags and an optional TOML config file.
//
// # Commands
//
// The main commands are:
//   - generate: build a topology and print its vital signs
//   - inspect: list vertices as a table ordered by a criterion
//   - reach: check reachability between two vertices
//   - explore: interactive vertex browser with live reordering
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// also streams graph mutation and search events through the observe
// hooks. Loggers are passed through context.Context so command bodies
// stay decoupled from the CLI state.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/otengkwame/graph/pkg/buildinfo"
	"github.com/otengkwame/graph/pkg/graph"
	"github.com/otengkwame/graph/pkg/loader"
	"github.com/otengkwame/graph/pkg/observe"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graph"

	// defaultProbability is the edge probability used by sparse
	// topologies when --p is not given.
	defaultProbability = 0.25
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// shapeNames lists the topologies the build commands accept.
var shapeNames = []string{"complete", "path", "cycle", "star", "sparse"}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg     Config
	cfgPath string
	verbose bool
	quiet   bool
}

// New creates a CLI with a logger writing to w at the given level and
// the built-in configuration defaults.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands and
// persistent flags registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graph is a workbench for in-memory graph topologies",
		Long: `graph builds in-memory topologies and puts the graph library through
its paces: degree and flow accounting, criterion-driven ordering, and
breadth first reachability, straight from the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging and mutation hooks")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&c.cfgPath, "config", "", "path to a TOML config file")
	pf.Int64Var(&c.cfg.Seed, "seed", 0, "random seed for topologies and flows (0 draws a fresh one)")
	pf.BoolVar(&c.cfg.Directed, "directed", false, "build directed topologies")
	pf.Int64Var(&c.cfg.FlowMax, "flows", 0, "assign random flows up to this value on directed edges")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.reachCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup finalizes per-run state before any command executes: log level,
// config file merge, context logger, and verbose observability hooks.
// Flags win over config file values, which win over the defaults.
func (c *CLI) setup(cmd *cobra.Command) error {
	switch {
	case c.quiet:
		c.Logger.SetLevel(log.ErrorLevel)
	case c.verbose:
		c.Logger.SetLevel(log.DebugLevel)
	}

	fileCfg, path, err := loadConfig(c.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("seed") {
		c.cfg.Seed = fileCfg.Seed
	}
	if !flags.Changed("directed") {
		c.cfg.Directed = fileCfg.Directed
	}
	if !flags.Changed("flows") {
		c.cfg.FlowMax = fileCfg.FlowMax
	}
	c.cfg.Size = fileCfg.Size
	c.cfg.Order = fileCfg.Order
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}

	if c.verbose {
		observe.SetMutationHooks(logMutationHooks{logger: c.Logger})
		observe.SetSearchHooks(logSearchHooks{logger: c.Logger})
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Topology Factory
// =============================================================================

// topologyArgs resolves the shape name and vertex count from positional
// arguments, falling back to the configured default size.
func (c *CLI) topologyArgs(args []string) (string, int, error) {
	shape := args[0]
	n := c.cfg.Size
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return "", 0, fmt.Errorf("vertex count %q is not a number", args[1])
		}
		n = parsed
	}
	return shape, n, nil
}

// buildShape constructs the requested topology with the run's seed,
// direction, and flow settings applied. The spinner stops when the
// build finishes or ctx is cancelled.
func (c *CLI) buildShape(ctx context.Context, shape string, n int, p float64) (*graph.Graph, error) {
	if !slices.Contains(shapeNames, shape) {
		return nil, fmt.Errorf("unknown shape %q (one of %s)", shape, strings.Join(shapeNames, ", "))
	}

	var opts []loader.Option
	if c.cfg.Seed != 0 {
		opts = append(opts, loader.WithSeed(c.cfg.Seed))
	}
	if c.cfg.Directed {
		opts = append(opts, loader.WithDirected())
	}
	if c.cfg.FlowMax > 0 {
		opts = append(opts, loader.WithFlows(c.cfg.FlowMax))
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s topology with %d vertices...", shape, n))
	spin.Start()
	defer spin.Stop()

	switch shape {
	case "complete":
		return loader.Complete(n, opts...)
	case "path":
		return loader.Path(n, opts...)
	case "cycle":
		return loader.Cycle(n, opts...)
	case "star":
		return loader.Star(n, opts...)
	default:
		return loader.Sparse(n, p, opts...)
	}
}

// shapeCompletion offers the topology names for the first positional
// argument.
func shapeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return shapeNames, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
