package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"samplers/histogram"
	"samplers/stats"
)

func TestSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Summary(&buf, stats.NewSummary()))

	want := "Count: 0\n" +
		"Minimum: NaN\n" +
		"Maximum: NaN\n" +
		"Mean: NaN\n" +
		"Variance: NaN\n" +
		"Standard deviation: NaN\n" +
		"Skewness: NaN\n" +
		"Kurtosis: NaN\n" +
		"Population variance: NaN\n" +
		"Population standard deviation: NaN\n" +
		"Population skewness: NaN\n" +
		"Population kurtosis: NaN\n"
	assert.Equal(t, want, buf.String())
}

func TestSummary_Populated(t *testing.T) {
	summary := stats.NewSummary()
	assert.NoError(t, summary.ObserveMany([]float64{4.2, -0.8}))

	var buf bytes.Buffer
	assert.NoError(t, Summary(&buf, summary))

	out := buf.String()
	assert.Contains(t, out, "Count: 2\n")
	assert.Contains(t, out, "Minimum: -0.8\n")
	assert.Contains(t, out, "Maximum: 4.2\n")
	assert.Contains(t, out, "Variance: 12.5\n")
	assert.Contains(t, out, "Population variance: 6.25\n")
	// Two observations leave skewness degenerate; it renders as NaN
	// like an absent value.
	assert.Contains(t, out, "Skewness: NaN\n")
}

func TestBuckets(t *testing.T) {
	hist := histogram.New([]float64{0.0})
	assert.NoError(t, hist.ObserveMany([]float64{-1.0, 1.0, 2.0}))

	var buf bytes.Buffer
	assert.NoError(t, Buckets(&buf, hist.Collect(), 4))

	want := "   -Inf │██ 1\n" +
		"  0.000 │████ 2\n" +
		"   +Inf │ 0\n"
	assert.Equal(t, want, buf.String())
}

func TestBuckets_FractionBar(t *testing.T) {
	hist := histogram.New([]float64{0.0})
	assert.NoError(t, hist.ObserveMany([]float64{-1.0, 1.0, 1.0, 1.0}))

	var buf bytes.Buffer
	assert.NoError(t, Buckets(&buf, hist.Collect(), 8))

	// 8 * 1/3 = 2.67 cells: two full blocks and a five-eighths glyph.
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "   -Inf │██▋ 1", lines[0])
	assert.Equal(t, "  0.000 │████████ 3", lines[1])
}

func TestBuckets_AllEmpty(t *testing.T) {
	hist := histogram.New([]float64{0.0})

	var buf bytes.Buffer
	assert.NoError(t, Buckets(&buf, hist.Collect(), 10))

	want := "   -Inf │ 0\n" +
		"  0.000 │ 0\n" +
		"   +Inf │ 0\n"
	assert.Equal(t, want, buf.String())
}

func TestBuckets_NoBuckets(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Buckets(&buf, nil, 10))
}
