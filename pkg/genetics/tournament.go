package genetics

import (
	"log"
	"strconv"
)

const DefaultTournamentRate = 75

// Tournament is binary tournament selection with a biased coin: with
// probability rate/100 the fitter contestant wins, otherwise the weaker one.
type Tournament struct {
	random Random
	rate   int
}

// NewTournament falls back to DefaultTournamentRate when rate is outside [1,100].
func NewTournament(random Random, rate int) *Tournament {
	if !validTournamentRate(rate) {
		log.Printf("tournament rate %d outside [1,100], using %d", rate, DefaultTournamentRate)
		rate = DefaultTournamentRate
	}
	return &Tournament{random: random, rate: rate}
}

func (s *Tournament) Rate() int {
	return s.rate
}

func validTournamentRate(rate int) bool {
	return rate >= 1 && rate <= 100
}

// ParseTournamentRate parses a configured rate, falling back to
// DefaultTournamentRate when it is not an integer in [1,100].
func ParseTournamentRate(value string) int {
	rate, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("failed to parse tournament rate %q: %v, using %d", value, err, DefaultTournamentRate)
		return DefaultTournamentRate
	}
	if !validTournamentRate(rate) {
		log.Printf("tournament rate %d outside [1,100], using %d", rate, DefaultTournamentRate)
		return DefaultTournamentRate
	}
	return rate
}

func (s *Tournament) Select(population *Population, elite []Individual, n int) ([]Individual, error) {
	out, draws := newBatch(elite, n)

	for range draws {
		i1, err := s.random.UniformInt(population.Len())
		if err != nil {
			return nil, err
		}
		i2, err := s.random.UniformInt(population.Len())
		if err != nil {
			return nil, err
		}

		d1, d2 := population.At(i1).Fitness(), population.At(i2).Fitness()

		// contestants re-enter the breeding pool unscored
		c1, c2 := population.At(i1).Clone(), population.At(i2).Clone()
		c1.SetFitness(0)
		c2.SetFitness(0)

		coin, err := s.random.UniformInt(100)
		if err != nil {
			return nil, err
		}
		coin++

		var first bool
		if coin <= s.rate {
			first = d1 >= d2
		} else {
			first = d1 < d2
		}

		if first {
			out = append(out, c1)
		} else {
			out = append(out, c2)
		}
	}
	return out, nil
}
