// Package dist provides seedable samplers for the distributions the
// CLI can draw from. Every sampler takes an explicit rand.Source;
// there is no process-global generator state.
package dist

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler produces one pseudo-random value per call.
type Sampler interface {
	Sample() float64
}

type samplerFunc func() float64

func (f samplerFunc) Sample() float64 {
	return f()
}

// NewSource returns a generator handle for the samplers. A zero seed
// derives one from the current time; any other seed reproduces the
// same sequence on every run.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// Gaussian samples from the normal distribution N(mean, variance).
func Gaussian(mean, variance float64, src rand.Source) (Sampler, error) {
	if variance < 0 || math.IsNaN(variance) {
		return nil, errors.New("variance must be non-negative")
	}
	normal := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance), Src: src}
	return samplerFunc(normal.Rand), nil
}

// Poisson samples from the Poisson distribution Pois(lambda).
func Poisson(lambda float64, src rand.Source) (Sampler, error) {
	if lambda <= 0 || math.IsNaN(lambda) {
		return nil, errors.New("lambda must be positive")
	}
	poisson := distuv.Poisson{Lambda: lambda, Src: src}
	return samplerFunc(poisson.Rand), nil
}

// Exponential samples from the exponential distribution Exp(lambda).
func Exponential(lambda float64, src rand.Source) (Sampler, error) {
	if lambda <= 0 || math.IsNaN(lambda) {
		return nil, errors.New("lambda must be positive")
	}
	exponential := distuv.Exponential{Rate: lambda, Src: src}
	return samplerFunc(exponential.Rand), nil
}

// ContinuousUniform samples uniformly over [lower, upper).
func ContinuousUniform(lower, upper float64, src rand.Source) (Sampler, error) {
	if !(lower < upper) {
		return nil, errors.New("lower bound must be below upper bound")
	}
	uniform := distuv.Uniform{Min: lower, Max: upper, Src: src}
	return samplerFunc(uniform.Rand), nil
}

// DiscreteUniform samples uniformly over the inclusive integer range
// {lower, lower+1, ..., upper}.
func DiscreteUniform(lower, upper int64, src rand.Source) (Sampler, error) {
	if lower > upper {
		return nil, errors.New("lower bound must not exceed upper bound")
	}
	rng := rand.New(src)
	span := uint64(upper-lower) + 1
	return samplerFunc(func() float64 {
		return float64(lower + int64(rng.Uint64n(span)))
	}), nil
}

// Binomial samples from the binomial distribution Bin(trials, probability).
func Binomial(trials uint64, probability float64, src rand.Source) (Sampler, error) {
	if probability < 0 || probability > 1 || math.IsNaN(probability) {
		return nil, errors.New("probability must be in [0, 1]")
	}
	binomial := distuv.Binomial{N: float64(trials), P: probability, Src: src}
	return samplerFunc(binomial.Rand), nil
}
