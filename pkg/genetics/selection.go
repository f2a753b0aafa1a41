package genetics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Random is the part of rng.Source the strategies draw from.
type Random interface {
	Uniform01() float64
	UniformInt(high int) (int, error)
}

// Selector chooses individuals from a population. The returned batch starts
// with elite unchanged and is filled to n with independent clones.
type Selector interface {
	Select(population *Population, elite []Individual, n int) ([]Individual, error)
}

func newBatch(elite []Individual, n int) ([]Individual, int) {
	out := make([]Individual, 0, max(n, len(elite)))
	out = append(out, elite...)
	return out, max(n-len(elite), 0)
}

// RouletteWheel is fitness proportionate selection.
type RouletteWheel struct {
	random Random
}

func NewRouletteWheel(random Random) *RouletteWheel {
	return &RouletteWheel{random: random}
}

// RouletteWeights returns each member's share of the total fitness in
// population order. A zero total yields NaN or infinite weights.
func RouletteWeights(population *Population) []float64 {
	weights := population.Fitnesses()
	sum := floats.Sum(weights)
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// rouletteIndex returns the first index whose cumulative weight reaches r,
// or the last index when rounding leaves the walk short of r.
func rouletteIndex(cumulative []float64, r float64) int {
	for j, c := range cumulative {
		if c >= r {
			return j
		}
	}
	return len(cumulative) - 1
}

func (s *RouletteWheel) Select(population *Population, elite []Individual, n int) ([]Individual, error) {
	out, draws := newBatch(elite, n)
	if draws == 0 {
		return out, nil
	}

	sum := floats.Sum(population.Fitnesses())
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("roulette wheel over %d individuals with total fitness %v: %w", population.Len(), sum, ErrDegenerateInput)
	}

	weights := RouletteWeights(population)
	cumulative := floats.CumSum(make([]float64, len(weights)), weights)

	for range draws {
		j := rouletteIndex(cumulative, s.random.Uniform01())
		out = append(out, population.At(j).Clone())
	}
	return out, nil
}
