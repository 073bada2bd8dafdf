package stats

import "math"

// Summary is the full distribution summary of a value stream: running
// extrema plus the four-moment accumulator.
type Summary struct {
	moments *Moments
	min     float64
	max     float64
}

func NewSummary() *Summary {
	return &Summary{
		moments: NewMoments(),
		min:     math.Inf(1),
		max:     math.Inf(-1),
	}
}

func (s *Summary) Observe(value float64) error {
	s.min = math.Min(s.min, value)
	s.max = math.Max(s.max, value)
	return s.moments.Observe(value)
}

func (s *Summary) ObserveMany(values []float64) error {
	for _, value := range values {
		if err := s.Observe(value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Summary) Count() uint64 {
	return s.moments.Count()
}

func (s *Summary) Min() (float64, bool) {
	if s.moments.Count() < 1 {
		return 0, false
	}
	return s.min, true
}

func (s *Summary) Max() (float64, bool) {
	if s.moments.Count() < 1 {
		return 0, false
	}
	return s.max, true
}

func (s *Summary) Mean() (float64, bool) {
	return s.moments.Mean()
}

func (s *Summary) Variance() (float64, bool) {
	return s.moments.Variance()
}

func (s *Summary) PopulationVariance() (float64, bool) {
	return s.moments.PopulationVariance()
}

func (s *Summary) StandardDeviation() (float64, bool) {
	return s.moments.StandardDeviation()
}

func (s *Summary) PopulationStandardDeviation() (float64, bool) {
	return s.moments.PopulationStandardDeviation()
}

func (s *Summary) Skewness() (float64, bool) {
	return s.moments.Skewness()
}

func (s *Summary) Kurtosis() (float64, bool) {
	return s.moments.Kurtosis()
}

func (s *Summary) PopulationSkewness() (float64, bool) {
	return s.moments.PopulationSkewness()
}

func (s *Summary) PopulationKurtosis() (float64, bool) {
	return s.moments.PopulationKurtosis()
}
