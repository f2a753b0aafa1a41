package rng

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Source is a numeric random generator with uniform and gaussian variants.
// Each Source owns its generator stream and is not safe for concurrent use.
type Source struct {
	r       *rand.Rand
	intType bool
}

// New creates a PCG backed source. A zero seed draws a random one.
// When intType is set, real valued outputs are floored.
func New(seed uint64, intType bool) *Source {
	if seed == 0 {
		return NewFromSource(rand.NewPCG(rand.Uint64(), rand.Uint64()), intType)
	}
	return NewFromSource(rand.NewPCG(seed, seed), intType)
}

func NewFromSource(src rand.Source, intType bool) *Source {
	return &Source{
		r:       rand.New(src),
		intType: intType,
	}
}

func (s *Source) IntType() bool {
	return s.intType
}

// Uniform01 returns a value in [0.0, 1.0).
func (s *Source) Uniform01() float64 {
	return s.r.Float64()
}

// Uniform returns a value in [lo, hi), swapping inverted bounds.
func (s *Source) Uniform(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return s.discrete(lo + s.r.Float64()*(hi-lo))
}

// UniformInt returns a value in [0, high).
func (s *Source) UniformInt(high int) (int, error) {
	if high <= 0 {
		return 0, fmt.Errorf("uniform int upper bound %d: %w", high, ErrInvalidArgument)
	}
	return s.r.IntN(high), nil
}

// Gaussian returns mean + (Z + 0.5) * std for a standard normal Z.
//
// The sample is biased by half a standard deviation: its expected value is
// mean + 0.5*std, not mean. Callers relying on symmetry around mean must
// subtract the shift themselves.
func (s *Source) Gaussian(mean, std float64) float64 {
	return s.discrete(mean + (s.r.NormFloat64()+0.5)*std)
}

func (s *Source) discrete(v float64) float64 {
	if s.intType {
		return math.Floor(v)
	}
	return v
}
