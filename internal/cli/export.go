package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ucsearch/export"
)

// Export formats.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

type exportOpts struct {
	query  queryFlags
	format string
	step   int
	output string
}

func newExportCmd(src *graphSource) *cobra.Command {
	opts := exportOpts{format: formatJSON, step: -1}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a trace as JSON, or one step as DOT or SVG",
		Long: `Export a search trace.

json writes every step up to --step. dot and svg draw the whole graph with the
edges of step --step coloured: frontier blue, discarded orange, selected red,
final path green.`,
		Example: `  ucsearch export --format json -o trace.json
  ucsearch export --format svg --step 4 -o step4.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatJSON, formatDOT, formatSVG:
			default:
				return fmt.Errorf("invalid format: %s (must be json, dot or svg)", opts.format)
			}

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
			idx, err := stepIndex(res, opts.step)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			switch opts.format {
			case formatJSON:
				trimmed := *res
				trimmed.Steps = res.Prefix(idx + 1)
				if err = export.JSON(&buf, &trimmed); err != nil {
					return err
				}
			case formatDOT, formatSVG:
				dot := export.DOT(l.graph, &res.Steps[idx], export.Options{Unit: l.unit})
				if opts.format == formatDOT {
					buf.WriteString(dot)
					break
				}
				svg, err := export.SVG(ctx, dot)
				if err != nil {
					return err
				}
				buf.Write(svg)
			}

			return writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes(), loggerFromContext(ctx))
		},
	}

	opts.query.bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: json, dot, svg")
	cmd.Flags().IntVarP(&opts.step, "step", "s", -1, "step to export (-1: last)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte, logger *log.Logger) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote", "path", path, "bytes", len(data))
	return nil
}
