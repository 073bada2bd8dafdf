// Package cli wires the accumulators, samplers, and renderer into the
// samplers command tree.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Interactive stdin is observed one line at a time as it is typed;
// piped stdin is slurped and fed through ObserveMany. Piped stdout
// makes the histogram command copy its input through and render to
// stderr instead.

func stdinIsTTY() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use: "samplers",
		Short: "Sample from common distributions and calculate summary statistics " +
			"from the command line.",
		SilenceUsage: true,
	}
	root.AddCommand(
		newGaussianCommand(),
		newPoissonCommand(),
		newExponentialCommand(),
		newUniformCommand(),
		newBinomialCommand(),
		newSummarizeCommand(),
		newHistogramCommand(),
		newMeanCommand(),
		newVarianceCommand(),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
