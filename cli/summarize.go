package cli

import (
	"github.com/spf13/cobra"

	"samplers/input"
	"samplers/render"
	"samplers/stats"
)

func newSummarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Calculate basic summary statistics.",
		Long: "This reads from stdin. You can terminate stdin with CTRL+D.\n" +
			"This command computes summary statistics in a single pass with a " +
			"constant amount of additional memory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := stats.NewSummary()
			if stdinIsTTY() {
				if err := input.ForEach(cmd.InOrStdin(), summary.Observe); err != nil {
					return err
				}
			} else {
				values, err := input.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if err := summary.ObserveMany(values); err != nil {
					return err
				}
			}
			return render.Summary(cmd.OutOrStdout(), summary)
		},
	}
}
