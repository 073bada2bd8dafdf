// Package render formats accumulated statistics and histogram buckets
// as text. It only reads computed fields; no statistics live here.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"samplers/histogram"
	"samplers/stats"
)

// Summary writes the labeled statistics block, one field per line.
// Absent values render as NaN.
func Summary(w io.Writer, summary *stats.Summary) error {
	fields := []struct {
		label string
		value func() (float64, bool)
	}{
		{"Minimum", summary.Min},
		{"Maximum", summary.Max},
		{"Mean", summary.Mean},
		{"Variance", summary.Variance},
		{"Standard deviation", summary.StandardDeviation},
		{"Skewness", summary.Skewness},
		{"Kurtosis", summary.Kurtosis},
		{"Population variance", summary.PopulationVariance},
		{"Population standard deviation", summary.PopulationStandardDeviation},
		{"Population skewness", summary.PopulationSkewness},
		{"Population kurtosis", summary.PopulationKurtosis},
	}

	if _, err := fmt.Fprintf(w, "Count: %d\n", summary.Count()); err != nil {
		return err
	}
	for _, field := range fields {
		value, ok := field.value()
		if !ok {
			value = math.NaN()
		}
		if _, err := fmt.Fprintf(w, "%s: %v\n", field.label, value); err != nil {
			return err
		}
	}
	return nil
}

// Buckets writes one line per bucket: the lower bound, a bar sized
// proportionally to the fullest bucket, and the count, followed by a
// trailing line carrying the final upper bound.
func Buckets(w io.Writer, buckets []histogram.Bucket, displaySize int) error {
	if len(buckets) == 0 {
		return errors.New("no buckets to render")
	}

	maxCount := uint64(0)
	for _, bucket := range buckets {
		if bucket.Count > maxCount {
			maxCount = bucket.Count
		}
	}

	for _, bucket := range buckets {
		cells := 0.0
		if maxCount > 0 {
			cells = float64(displaySize) * float64(bucket.Count) / float64(maxCount)
		}
		whole := math.Floor(cells)
		bar := strings.Repeat("█", int(whole)) + fractionBar(cells-whole)
		if _, err := fmt.Fprintf(w, "%7.3f │%s %d\n", bucket.Lower, bar, bucket.Count); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%7.3f │ 0\n", buckets[len(buckets)-1].Upper)
	return err
}

// fractionBar picks the eighth-block glyph for a partial bar cell.
func fractionBar(frac float64) string {
	switch {
	case frac > 7.0/8.0:
		return "▉"
	case frac > 6.0/8.0:
		return "▊"
	case frac > 5.0/8.0:
		return "▋"
	case frac > 4.0/8.0:
		return "▌"
	case frac > 3.0/8.0:
		return "▍"
	case frac > 2.0/8.0:
		return "▎"
	case frac > 1.0/8.0:
		return "▏"
	default:
		return ""
	}
}
