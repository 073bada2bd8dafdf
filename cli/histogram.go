package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"samplers/histogram"
	"samplers/input"
	"samplers/render"
	"samplers/stats"
)

func newHistogramCommand() *cobra.Command {
	var numBuckets, displaySize int
	var minFlag, maxFlag float64
	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Displays a histogram of given values.",
		Long: "This reads from stdin. You can terminate stdin with CTRL+D.\n" +
			"If this output is being piped, it will duplicate its input to stdout " +
			"and print the histogram to stderr instead.\n" +
			"If the minimum and maximum bounds of the histogram are provided ahead " +
			"of time, the histogram will be computed in a single pass.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if numBuckets < 1 {
				return fmt.Errorf("number of buckets must be positive, got %d", numBuckets)
			}
			if displaySize < 1 {
				return fmt.Errorf("display size must be positive, got %d", displaySize)
			}
			minSet := cmd.Flags().Changed("min")
			maxSet := cmd.Flags().Changed("max")
			piped := !stdoutIsTTY()

			out := cmd.OutOrStdout()
			histOut := out
			if piped {
				histOut = cmd.ErrOrStderr()
			}

			var hist *histogram.Histogram
			if minSet && maxSet {
				hist = histogram.WithBounds(minFlag, maxFlag, numBuckets)
				err := input.ForEach(cmd.InOrStdin(), func(value float64) error {
					if piped {
						fmt.Fprintln(out, value)
					}
					return hist.Observe(value)
				})
				if err != nil {
					return err
				}
			} else {
				var err error
				hist, err = twoPassHistogram(cmd.InOrStdin(), out, piped,
					minFlag, minSet, maxFlag, maxSet, numBuckets)
				if err != nil {
					return err
				}
			}
			return render.Buckets(histOut, hist.Collect(), displaySize)
		},
	}
	cmd.Flags().Float64Var(&minFlag, "min", 0,
		"The lowest boundary in the histogram.")
	cmd.Flags().Float64Var(&maxFlag, "max", 0,
		"The highest boundary in the histogram.")
	cmd.Flags().IntVarP(&numBuckets, "num-buckets", "b", 15,
		"The number of buckets in the histogram.")
	cmd.Flags().IntVarP(&displaySize, "display-size", "d", 80,
		"The size of the histogram in the terminal.")
	return cmd
}

// twoPassHistogram slurps the input, derives any missing bound from a
// summary pass, then classifies everything in a second pass.
func twoPassHistogram(in io.Reader, out io.Writer, piped bool,
	min float64, minSet bool, max float64, maxSet bool,
	numBuckets int) (*histogram.Histogram, error) {

	values, err := input.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if piped {
		for _, value := range values {
			fmt.Fprintln(out, value)
		}
	}

	summary := stats.NewSummary()
	if err := summary.ObserveMany(values); err != nil {
		return nil, err
	}
	if !minSet {
		var ok bool
		if min, ok = summary.Min(); !ok {
			return nil, fmt.Errorf("could not calculate summary statistic: min")
		}
	}
	if !maxSet {
		var ok bool
		if max, ok = summary.Max(); !ok {
			return nil, fmt.Errorf("could not calculate summary statistic: max")
		}
	}

	hist := histogram.WithBounds(min, max, numBuckets)
	if err := hist.ObserveMany(values); err != nil {
		return nil, err
	}
	return hist, nil
}
