package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsearch/config"
)

func newNodesCmd(src *graphSource) *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes of the graph",
		Long:  `List every node with its degree and neighbours. With --toml, print the whole graph as a graph file instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := src.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asTOML {
				f := config.FromGraph(l.graph, l.unit)
				f.Query = l.query
				return f.Encode(out)
			}

			vertices := l.graph.Vertices()
			rows := make([][]string, 0, len(vertices))
			for _, v := range vertices {
				nbrs, err := l.graph.NeighborIDs(v)
				if err != nil {
					return err
				}
				rows = append(rows, []string{v, strconv.Itoa(len(nbrs)), strings.Join(nbrs, ", ")})
			}

			cell := lipgloss.NewStyle().Padding(0, 1)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("Node", "Degree", "Neighbours").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return cell.Bold(true).Foreground(colorCyan)
					}
					if col == 1 {
						return cell.Foreground(colorDim)
					}
					return cell
				})

			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s: %d nodes, %d edges", l.name, len(vertices), l.graph.EdgeCount())))
			fmt.Fprintln(out, t.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the graph as a TOML graph file")

	return cmd
}
