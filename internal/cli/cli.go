// Package cli implements the ucsearch command-line interface.
//
// # Commands
//
//   - search: run a query and print its step-by-step trace
//   - export: write a trace as JSON, or one step as Graphviz DOT or SVG
//   - nodes:  list the vertices of the graph with their degrees
//
// # Graph sources
//
// Every command reads the same graph: a TOML file given with --graph, a
// seeded random graph with --random n, or the built-in Romania road map.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context; each query is tagged with a fresh id.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "ucsearch"

var (
	version = "dev" // semantic version, set by SetVersion
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the command tree with args, writing command output to stdout
// and logs to stderr. Cancelling ctx aborts a running search at the next step.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose bool
		src     graphSource
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "ucsearch traces uniform-cost search step by step",
		Long:          `ucsearch runs a cheapest-path-first search over a small weighted graph and records every expansion, including the paths it discards and why.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	src.bind(root.PersistentFlags())

	root.AddCommand(newSearchCmd(&src))
	root.AddCommand(newExportCmd(&src))
	root.AddCommand(newNodesCmd(&src))

	return root
}
