package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/otengkwame/graph/pkg/graph"
	"github.com/otengkwame/graph/pkg/loader"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var p float64

	cmd := &cobra.Command{
		Use:   "generate <shape> [n]",
		Short: "Build a topology and print its vital signs",
		Long: `Generate builds one of the standard topologies and prints a summary:
vertex and edge counts, direction, the seed the build used, and the
degree extremes under the degree ordering criterion.

Shapes: complete, path, cycle, star, sparse. The vertex count defaults
to the configured size when [n] is omitted.

Examples:
  graph generate complete 6
  graph generate sparse 40 --p 0.1 --seed 7
  graph generate star 12 --directed --flows 100`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			shape, n, err := c.topologyArgs(args)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			g, err := c.buildShape(cmd.Context(), shape, n, p)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %s topology", shape))

			printSuccess("Generated %s graph", StyleHighlight.Render(shape))
			printStats(g.VertexCount(), g.EdgeCount(), c.cfg.Directed)
			if seed, ok := g.Meta()[loader.MetaSeed].(int64); ok {
				printDetail("seed %d", seed)
			}
			printNewline()

			busiest, err := g.FirstVertex(graph.OrderDegree, true)
			if err != nil {
				return err
			}
			quietest, err := g.FirstVertex(graph.OrderDegree, false)
			if err != nil {
				return err
			}
			printKeyValue("busiest", fmt.Sprintf("%s  degree %s", busiest.ID(), StyleNumber.Render(strconv.Itoa(busiest.Degree()))))
			printKeyValue("quietest", fmt.Sprintf("%s  degree %s", quietest.ID(), StyleNumber.Render(strconv.Itoa(quietest.Degree()))))
			printNewline()
			printNextStep("Inspect the ordering", fmt.Sprintf("graph inspect %s %d --order degree --desc", shape, n))
			return nil
		},
	}

	cmd.Flags().Float64Var(&p, "p", defaultProbability, "edge probability for sparse topologies")
	cmd.ValidArgsFunction = shapeCompletion

	return cmd
}
