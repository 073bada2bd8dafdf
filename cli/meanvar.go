package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"samplers/input"
	"samplers/stats"
)

// accumulate drives a Moments accumulator from stdin, streaming when
// interactive and slurping when piped.
func accumulate(cmd *cobra.Command) (*stats.Moments, error) {
	moments := stats.NewMoments()
	if stdinIsTTY() {
		if err := input.ForEach(cmd.InOrStdin(), moments.Observe); err != nil {
			return nil, err
		}
		return moments, nil
	}
	values, err := input.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if err := moments.ObserveMany(values); err != nil {
		return nil, err
	}
	return moments, nil
}

func orNaN(value float64, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return value
}

func newMeanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mean",
		Short: "Calculate the mean of given values.",
		Long:  "This reads from stdin. You can terminate stdin with CTRL+D.",
		RunE: func(cmd *cobra.Command, args []string) error {
			moments, err := accumulate(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), orNaN(moments.Mean()))
			return nil
		},
	}
}

func newVarianceCommand() *cobra.Command {
	var varianceType string
	cmd := &cobra.Command{
		Use:   "variance",
		Short: "Calculate the variance of given values.",
		Long:  "This reads from stdin. You can terminate stdin with CTRL+D.",
		RunE: func(cmd *cobra.Command, args []string) error {
			moments, err := accumulate(cmd)
			if err != nil {
				return err
			}
			var value float64
			switch varianceType {
			case "population":
				value = orNaN(moments.PopulationVariance())
			case "sample":
				value = orNaN(moments.Variance())
			default:
				return fmt.Errorf("unknown variance type %q", varianceType)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&varianceType, "type", "t", "population",
		"Whether to compute population variance or sample variance.")
	return cmd
}
