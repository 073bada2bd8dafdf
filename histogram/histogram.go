package histogram

import (
	"fmt"
	"math"
)

// A Histogram with boundaries [-5, 0, 5] has buckets
// (-inf, -5), [-5, 0), [0, 5), [5, inf).
//
// Boundaries must be strictly increasing; that is the caller's
// responsibility and is not validated here.
type Histogram struct {
	boundaries []float64
	counts     []uint64
}

// ClassificationError reports a value that could not be assigned to
// any bucket. It only arises when the bucket invariants are broken,
// never on a well-formed histogram.
type ClassificationError struct {
	Value float64
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("could not observe value: %v", e.Value)
}

func New(boundaries []float64) *Histogram {
	return &Histogram{
		boundaries: boundaries,
		counts:     make([]uint64, len(boundaries)+1),
	}
}

const boundsPadding = 0.05

// WithBounds builds numBuckets equal-width intervals spanning
// [min, max], padded by 5% of the span on each side so values at the
// extremes land in a real bucket instead of the open-ended outer ones.
func WithBounds(min, max float64, numBuckets int) *Histogram {
	pad := (max - min) * boundsPadding
	lower := min - pad
	width := (max + pad - lower) / float64(numBuckets)
	boundaries := make([]float64, numBuckets+1)
	for i := range boundaries {
		boundaries[i] = lower + float64(i)*width
	}
	return New(boundaries)
}

// Observe places value in the first bucket whose upper boundary
// exceeds it. A value equal to a boundary counts toward the bucket
// above the boundary, and a value beyond every boundary lands in the
// last, unbounded bucket.
func (h *Histogram) Observe(value float64) error {
	for i, boundary := range h.boundaries {
		if value < boundary {
			if i >= len(h.counts) {
				return &ClassificationError{Value: value}
			}
			h.counts[i]++
			return nil
		}
	}
	if len(h.counts) == 0 {
		return &ClassificationError{Value: value}
	}
	h.counts[len(h.counts)-1]++
	return nil
}

func (h *Histogram) ObserveMany(values []float64) error {
	for _, value := range values {
		if err := h.Observe(value); err != nil {
			return err
		}
	}
	return nil
}

// Bucket is one half-open interval of a collected histogram together
// with its observation count.
type Bucket struct {
	Lower float64
	Upper float64
	Count uint64
}

// Collect materializes the bucket list, synthesizing -Inf and +Inf as
// the outermost edges.
func (h *Histogram) Collect() []Bucket {
	edges := make([]float64, 0, len(h.boundaries)+2)
	edges = append(edges, math.Inf(-1))
	edges = append(edges, h.boundaries...)
	edges = append(edges, math.Inf(1))

	buckets := make([]Bucket, len(h.counts))
	for i := range buckets {
		buckets[i] = Bucket{
			Lower: edges[i],
			Upper: edges[i+1],
			Count: h.counts[i],
		}
	}
	return buckets
}

// Counts returns a copy of the per-bucket counts, parallel to the
// buckets returned by Collect.
func (h *Histogram) Counts() []uint64 {
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	return counts
}
