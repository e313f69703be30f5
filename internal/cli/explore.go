package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/otengkwame/graph/pkg/graph"
)

// List rendering styles for the explorer.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreModel is the bubbletea model for the interactive vertex
// browser. The o key rotates the ordering criterion, d flips its
// direction, and the list reorders live.
type exploreModel struct {
	g      *graph.Graph
	shape  string
	order  graph.Order
	desc   bool
	rows   []*graph.Vertex
	err    error
	cursor int
	offset int
	height int
}

// newExploreModel creates an explorer over g ordered by the given
// criterion.
func newExploreModel(g *graph.Graph, shape string, by graph.Order, desc bool) exploreModel {
	m := exploreModel{g: g, shape: shape, order: by, desc: desc, height: 15}
	return m.reordered()
}

// reordered recomputes the vertex list under the current criterion.
// Ordering failures keep the previous list and surface in the footer.
func (m exploreModel) reordered() exploreModel {
	rows, err := m.g.OrderVertices(m.order, m.desc)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
	return m
}

// Init implements tea.Model.
func (m exploreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "o":
			orders := graph.Orders()
			i := slices.Index(orders, m.order)
			m.order = orders[(i+1)%len(orders)]
			return m.reordered(), nil
		case "d":
			m.desc = !m.desc
			return m.reordered(), nil
		}
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-8)
	}
	return m, nil
}

// View implements tea.Model.
func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Exploring %s graph", m.shape)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("o: criterion  d: direction  ↑/↓: navigate  q: quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		v := m.rows[i]
		line := fmt.Sprintf("%-8s degree %-3d in %-3d out %-3d", v.ID(), v.Degree(), v.DegreeIn(), v.DegreeOut())
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	direction := "ascending"
	if m.desc {
		direction = "descending"
	}
	footer := fmt.Sprintf("ordered by %s, %s", m.order, direction)
	if len(m.rows) > 0 {
		footer = fmt.Sprintf("[%d/%d] %s", m.cursor+1, len(m.rows), footer)
	}
	b.WriteString(listDimStyle.Render("  " + footer))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + m.err.Error()))
	}
	return b.String()
}

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		p         float64
		orderName string
		desc      bool
	)

	cmd := &cobra.Command{
		Use:   "explore <shape> [n]",
		Short: "Browse vertices interactively",
		Long: `Explore builds a topology and opens an interactive browser over its
vertices. Press o to rotate through the ordering criteria, d to flip
between ascending and descending, and q to leave.

Examples:
  graph explore sparse 50 --p 0.1
  graph explore star 20 --order degree --desc`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, n, err := c.topologyArgs(args)
			if err != nil {
				return err
			}
			by, err := c.resolveOrder(orderName)
			if err != nil {
				return err
			}
			g, err := c.buildShape(cmd.Context(), shape, n, p)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newExploreModel(g, shape, by, desc))
			finalModel, err := program.Run()
			if err != nil {
				return fmt.Errorf("explorer failed: %w", err)
			}
			if fm, ok := finalModel.(exploreModel); ok && len(fm.rows) > 0 {
				v := fm.rows[fm.cursor]
				printDetail("left at %s with degree %d", v.ID(), v.Degree())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&p, "p", defaultProbability, "edge probability for sparse topologies")
	cmd.Flags().StringVar(&orderName, "order", "", "initial ordering criterion")
	cmd.Flags().BoolVar(&desc, "desc", false, "start in descending order")
	cmd.ValidArgsFunction = shapeCompletion

	return cmd
}
