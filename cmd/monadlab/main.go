package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/monadlab/monadlab/internal/catalog"
	"github.com/monadlab/monadlab/internal/demo"
	"github.com/monadlab/monadlab/pkg/maybe"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monadlab",
	Short: "monadlab - optional-value and outcome pipelines by example",
	Long: `monadlab is a teaching tool for the Maybe and Result containers.

Each demo pairs a conventional nil-check/error-juggling implementation with
the same logic written as a short-circuiting combinator pipeline, and lets
you run the pipeline against your own input.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range catalog.All() {
			fmt.Println(renderListEntry(d))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show the before/after code of a demo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := catalog.Get(args[0])
		if d.IsNone() {
			return fmt.Errorf("unknown demo %q, try 'monadlab list'", args[0])
		}
		fmt.Println(renderDemo(d.Value()))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <slug> [input]",
	Short: "Run the pipeline of a demo against an input",
	Long: `Run executes the combinator side of a demo. With no input argument the
demo's sample input is used. A failing pipeline prints its failure message;
it is the expected outcome for bad input, not an error.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		input := maybe.Map(catalog.Get(slug), func(d catalog.Demo) string {
			return d.Input
		}).UnwrapOr("")
		if len(args) == 2 {
			input = args[1]
		}

		runner := demo.NewRunner(logger)
		report, err := runner.Run(slug, input)
		if err != nil {
			return err
		}
		fmt.Println(renderReport(report))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(listCmd, showCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
