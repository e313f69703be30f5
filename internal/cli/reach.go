package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reachCommand creates the reach command.
func (c *CLI) reachCommand() *cobra.Command {
	var (
		p    float64
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "reach <shape> [n]",
		Short: "Check reachability between two vertices",
		Long: `Reach builds a topology and walks it breadth first from both
endpoints: whether --from reaches --to, how many vertices --from
reaches in total, and how many can reach --to.

On undirected graphs every edge is walkable both ways; on directed
graphs only edge direction counts.

Examples:
  graph reach path 10 --from 0 --to 9 --directed
  graph reach sparse 30 --p 0.05 --from 4 --seed 11`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			shape, n, err := c.topologyArgs(args)
			if err != nil {
				return err
			}
			g, err := c.buildShape(cmd.Context(), shape, n, p)
			if err != nil {
				return err
			}
			if to == "" {
				vertices := g.Vertices()
				to = vertices[len(vertices)-1].ID()
			}
			src, err := g.Vertex(from)
			if err != nil {
				return fmt.Errorf("vertex %q: %w", from, err)
			}
			dst, err := g.Vertex(to)
			if err != nil {
				return fmt.Errorf("vertex %q: %w", to, err)
			}

			prog := newProgress(logger)
			reaches := src.HasPathTo(dst)
			forward := src.VerticesPathTo()
			backward := dst.VerticesPathFrom()
			prog.done(fmt.Sprintf("Walked %d forward, %d backward", len(forward), len(backward)))

			printInfo("%s %s %s", StyleHighlight.Render(from), iconArrow, StyleHighlight.Render(to))
			if reaches {
				printSuccess("%s", StyleSuccess.Render("path exists"))
			} else {
				printWarning("no path")
			}
			printNewline()
			printKeyValue("reaches", fmt.Sprintf("%d of %d vertices", len(forward), g.VertexCount()))
			printKeyValue("reached by", fmt.Sprintf("%d of %d vertices", len(backward), g.VertexCount()))
			printNewline()
			printNextStep("Browse the graph", fmt.Sprintf("graph explore %s %d", shape, n))
			return nil
		},
	}

	cmd.Flags().Float64Var(&p, "p", defaultProbability, "edge probability for sparse topologies")
	cmd.Flags().StringVar(&from, "from", "0", "origin vertex ID")
	cmd.Flags().StringVar(&to, "to", "", "target vertex ID (defaults to the last vertex)")
	cmd.ValidArgsFunction = shapeCompletion

	return cmd
}
