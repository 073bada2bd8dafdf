package stats

// Observer is the capability shared by every accumulator in this
// repository: feed it one value at a time, or a batch that stops at
// the first value that cannot be placed.
type Observer interface {
	Observe(value float64) error
	ObserveMany(values []float64) error
}
