package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type searchOpts struct {
	query queryFlags
	step  int
	plain bool
}

func newSearchCmd(src *graphSource) *cobra.Command {
	opts := searchOpts{step: -1}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a query and print its trace",
		Long: `Run uniform-cost search between two nodes and print the trace up to a step.

Each step lists the frontier (the selected path marked with →), the paths
discarded at that point (marked with ~ and ---x) and the nodes expanded so far.`,
		Example: `  ucsearch search --from Arad --to Bucharest
  ucsearch search --from Arad --to Bucharest --step 4
  ucsearch search --graph city.toml
  ucsearch search --random 12 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := src.load(ctx)
			if err != nil {
				return err
			}
			from, to := l.endpoints(opts.query)

			res, err := runQuery(ctx, l, from, to)
			if err != nil {
				return err
			}
			upTo, err := stepIndex(res, opts.step)
			if err != nil {
				return err
			}

			text := res.TextUpTo(upTo)
			if !opts.plain {
				text = styleTrace(text)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)
			if upTo < res.Len()-1 {
				fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("(showing step %d of %d)", upTo, res.Len()-1)))
				return nil
			}
			fmt.Fprintln(out, summary(res))

			return res.Err()
		},
	}

	opts.query.bind(cmd.Flags())
	cmd.Flags().IntVarP(&opts.step, "step", "s", -1, "print the trace up to this step (-1: all)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colours")

	return cmd
}
