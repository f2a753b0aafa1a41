package genetics

import "fmt"

// Replacer merges candidates into a population in place and reports how
// many slots were overwritten. The population size never changes.
type Replacer interface {
	Replace(candidates []Individual, population *Population) (int, error)
}

// RandomReplacement lets each candidate challenge a uniformly drawn slot and
// take it when strictly fitter than the current occupant.
type RandomReplacement struct {
	random Random
}

func NewRandomReplacement(random Random) *RandomReplacement {
	return &RandomReplacement{random: random}
}

func (r *RandomReplacement) Replace(candidates []Individual, population *Population) (int, error) {
	replaced := 0
	for i := len(candidates) - 1; i >= 0; i-- {
		slot, err := r.random.UniformInt(population.Len())
		if err != nil {
			return replaced, err
		}
		if candidates[i].Fitness() > population.At(slot).Fitness() {
			population.Set(slot, candidates[i].Clone())
			replaced++
		}
	}
	return replaced, nil
}

// WorstReplacement overwrites population slots from index N-1 downwards.
//
// Callers keep the population sorted ascending by fitness and the candidates
// sorted descending; neither is sorted here. The first EliteCount candidates
// are skipped. Strict turns an unsorted population into an
// ErrPreconditionViolation instead of undefined results.
type WorstReplacement struct {
	EliteCount int
	Strict     bool
}

func (r *WorstReplacement) Replace(candidates []Individual, population *Population) (int, error) {
	n := population.Len()
	if r.EliteCount >= len(candidates) || n == 0 {
		return 0, nil
	}
	candidates = candidates[max(r.EliteCount, 0):]

	if r.Strict && !population.IsSortedAscending() {
		return 0, fmt.Errorf("worst replacement over unsorted population of %d: %w", n, ErrPreconditionViolation)
	}

	if candidates[0].Fitness() <= population.At(n-1).Fitness() {
		return 0, nil
	}

	replaced := 0
	cursor := n - 1
	for i := len(candidates) - 1; i >= 0 && cursor >= 0; i-- {
		if candidates[i].Fitness() > population.At(cursor).Fitness() {
			population.Set(cursor, candidates[i].Clone())
			cursor--
			replaced++
		}
	}
	return replaced, nil
}
