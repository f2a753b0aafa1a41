package genetics_test

import (
	"testing"

	"github.com/grexie/evolve/pkg/genetics"
	"github.com/grexie/evolve/pkg/rng"
)

// scripted replays fixed draws and fails the test when it runs dry.
type scripted struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scripted) Uniform01() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("scripted random: no uniform01 draws left")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) UniformInt(high int) (int, error) {
	s.t.Helper()
	if high <= 0 {
		return 0, rng.ErrInvalidArgument
	}
	if len(s.ints) == 0 {
		s.t.Fatal("scripted random: no uniform int draws left")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= high {
		s.t.Fatalf("scripted random: draw %d outside [0,%d)", v, high)
	}
	return v, nil
}

// populationOf tags every member with its original index as its only gene.
func populationOf(fitnesses ...float64) *genetics.Population {
	return genetics.NewPopulation(batchOf(fitnesses...)...)
}

func batchOf(fitnesses ...float64) []genetics.Individual {
	out := make([]genetics.Individual, len(fitnesses))
	for i, f := range fitnesses {
		out[i] = genetics.NewChromosome([]float64{float64(i)}, f)
	}
	return out
}

func origin(t *testing.T, individual genetics.Individual) int {
	t.Helper()
	c, ok := individual.(*genetics.Chromosome)
	if !ok {
		t.Fatalf("expected *genetics.Chromosome, got %T", individual)
	}
	return int(c.Genes[0])
}

func fitnessesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
