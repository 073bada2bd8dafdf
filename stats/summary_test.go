package stats

import (
	"testing"

	"samplers/utils"
)

func TestSummary_Empty(t *testing.T) {
	summary := NewSummary()

	utils.AssertEqual(t, summary.Count(), uint64(0))
	_, ok := summary.Min()
	utils.AssertTrue(t, !ok)
	_, ok = summary.Max()
	utils.AssertTrue(t, !ok)
	_, ok = summary.Mean()
	utils.AssertTrue(t, !ok)
	_, ok = summary.Variance()
	utils.AssertTrue(t, !ok)
}

func TestSummary_Observe(t *testing.T) {
	summary := NewSummary()

	utils.AssertTrue(t, summary.Observe(8.25) == nil)
	min, _ := summary.Min()
	utils.AssertEqual(t, min, 8.25)
	max, _ := summary.Max()
	utils.AssertEqual(t, max, 8.25)
	mean, _ := summary.Mean()
	utils.AssertEqual(t, mean, 8.25)
	popVariance, _ := summary.PopulationVariance()
	utils.AssertEqual(t, popVariance, 0.0)

	utils.AssertTrue(t, summary.Observe(-1.5) == nil)
	min, _ = summary.Min()
	utils.AssertEqual(t, min, -1.5)
	max, _ = summary.Max()
	utils.AssertEqual(t, max, 8.25)
	mean, _ = summary.Mean()
	utils.AssertEqual(t, mean, 3.375)
	popVariance, _ = summary.PopulationVariance()
	utils.AssertEqual(t, popVariance, 23.765625)
	variance, _ := summary.Variance()
	utils.AssertEqual(t, variance, 47.53125)
}

func TestSummary_ObserveMany(t *testing.T) {
	summary := NewSummary()
	utils.AssertTrue(t, summary.ObserveMany([]float64{-1.25, 6.25, 16.0}) == nil)

	mean, _ := summary.Mean()
	utils.AssertClose(t, mean, 7.0, 1e-12)
	popVariance, _ := summary.PopulationVariance()
	utils.AssertClose(t, popVariance, 49.875, 1e-12)
	variance, _ := summary.Variance()
	utils.AssertClose(t, variance, 74.8125, 1e-12)
}

func TestSummary_ImplementsObserver(t *testing.T) {
	var observer Observer = NewSummary()
	utils.AssertTrue(t, observer.Observe(1.0) == nil)
	utils.AssertTrue(t, observer.ObserveMany([]float64{2.0, 3.0}) == nil)
}
