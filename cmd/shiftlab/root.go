package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for shiftlab.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shiftlab",
		Short: "Study cluster separation vs. classifier boundary, margin, and loss",
		Long: `shiftlab sweeps the shift distance between two synthetic 2-D Gaussian
clusters, fits a logistic classifier at each distance, and derives the
decision boundary, the training log-loss, and a contour-based margin
width. The sweep is rendered into two image artifacts: a combined
per-distance scatter figure and a multi-panel trend figure.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
