// Package cli implements the podwhisperer command-line harness: a thin
// cobra wrapper around the pipeline package, grounded in the teacher's own
// root-command/logging setup.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "podwhisperer",
	Short: "Refine podcast transcript captions: replacement rules, LLM cleanup, normalization, VTT/SRT/JSON rendering",
	Long: `podwhisperer reconciles a word-aligned transcript through rule-based
replacement, optional LLM-driven refinement, and segment normalization, then
renders the result as WebVTT, SRT, and a simplified JSON caption format.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
