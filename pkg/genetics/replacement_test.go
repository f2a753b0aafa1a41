package genetics_test

import (
	"errors"
	"testing"

	"github.com/grexie/evolve/pkg/genetics"
	"github.com/grexie/evolve/pkg/rng"
)

func TestWorstReplacementEarlyExit(t *testing.T) {
	population := populationOf(1, 2, 3, 4, 5)
	replaced, err := (&genetics.WorstReplacement{}).Replace(batchOf(5, 4, 3), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != 0 {
		t.Errorf("expected no replacements, got %d", replaced)
	}
	if got := population.Fitnesses(); !fitnessesEqual(got, []float64{1, 2, 3, 4, 5}) {
		t.Fatalf("population changed: %v", got)
	}
}

func TestWorstReplacementDisplacement(t *testing.T) {
	population := populationOf(1, 2, 3, 4, 5)
	replaced, err := (&genetics.WorstReplacement{}).Replace(batchOf(10, 8, 0), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}
	if got := population.Fitnesses(); !fitnessesEqual(got, []float64{1, 2, 3, 10, 8}) {
		t.Fatalf("got %v, want [1 2 3 10 8]", got)
	}
	if population.Len() != 5 {
		t.Fatalf("population size changed to %d", population.Len())
	}
}

func TestWorstReplacementSkipsElite(t *testing.T) {
	population := populationOf(1, 2, 3, 4, 5)
	r := &genetics.WorstReplacement{EliteCount: 1}
	replaced, err := r.Replace(batchOf(100, 10, 8, 0), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}
	if got := population.Fitnesses(); !fitnessesEqual(got, []float64{1, 2, 3, 10, 8}) {
		t.Fatalf("got %v, want [1 2 3 10 8]", got)
	}
}

func TestWorstReplacementOnlyElite(t *testing.T) {
	population := populationOf(1, 2)
	r := &genetics.WorstReplacement{EliteCount: 2}
	if replaced, err := r.Replace(batchOf(100, 90), population); err != nil || replaced != 0 {
		t.Fatalf("expected no replacements, got %d (%v)", replaced, err)
	}
}

func TestWorstReplacementCursorExhausted(t *testing.T) {
	population := populationOf(1, 2)
	replaced, err := (&genetics.WorstReplacement{}).Replace(batchOf(10, 9, 8, 7), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}
	if got := population.Fitnesses(); !fitnessesEqual(got, []float64{8, 7}) {
		t.Fatalf("got %v, want [8 7]", got)
	}
}

func TestWorstReplacementStrict(t *testing.T) {
	candidates := batchOf(10)

	strict := &genetics.WorstReplacement{Strict: true}
	if _, err := strict.Replace(candidates, populationOf(3, 1, 2)); !errors.Is(err, genetics.ErrPreconditionViolation) {
		t.Fatalf("expected ErrPreconditionViolation, got %v", err)
	}
	if _, err := strict.Replace(candidates, populationOf(1, 2, 3)); err != nil {
		t.Fatalf("sorted population rejected: %v", err)
	}

	lenient := &genetics.WorstReplacement{}
	if _, err := lenient.Replace(candidates, populationOf(3, 1, 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRandomReplacement(t *testing.T) {
	tests := []struct {
		name       string
		candidates []float64
		slots      []int
		want       []float64
		wantCount  int
	}{
		// candidates are visited last to first
		{"distinct slots", []float64{5, 4, 2.5}, []int{2, 2, 0}, []float64{5, 2, 4}, 2},
		{"latest occupant wins", []float64{5, 4, 2.5}, []int{2, 2, 2}, []float64{1, 2, 5}, 2},
		{"equal fitness kept", []float64{5, 2, 2}, []int{1, 1, 1}, []float64{1, 5, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			population := populationOf(1, 2, 3)
			r := genetics.NewRandomReplacement(&scripted{t: t, ints: tt.slots})
			replaced, err := r.Replace(batchOf(tt.candidates...), population)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if replaced != tt.wantCount {
				t.Errorf("expected %d replacements, got %d", tt.wantCount, replaced)
			}
			if got := population.Fitnesses(); !fitnessesEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRandomReplacementImproves(t *testing.T) {
	source := rng.New(77, false)
	for round := 0; round < 50; round++ {
		fitnesses := source.SampleN(rng.UniformDistribution{Lo: 0, Hi: 10}, 20)
		population := populationOf(fitnesses...)
		before := population.Members()

		candidates := batchOf(source.SampleN(rng.UniformDistribution{Lo: 0, Hi: 10}, 8)...)
		if _, err := genetics.NewRandomReplacement(source).Replace(candidates, population); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if population.Len() != len(before) {
			t.Fatalf("population size changed from %d to %d", len(before), population.Len())
		}
		for i := range before {
			current := population.At(i)
			if current == before[i] {
				continue
			}
			if current.Fitness() <= before[i].Fitness() {
				t.Fatalf("slot %d overwritten by %v, not fitter than %v", i, current.Fitness(), before[i].Fitness())
			}
			candidate := candidates[origin(t, current)]
			if current.Fitness() != candidate.Fitness() {
				t.Fatalf("slot %d holds %v, candidate had %v", i, current.Fitness(), candidate.Fitness())
			}
		}
	}
}

func TestReplacementStoresClones(t *testing.T) {
	for name, r := range map[string]genetics.Replacer{
		"random": genetics.NewRandomReplacement(&scripted{t: t, ints: []int{0}}),
		"worst":  &genetics.WorstReplacement{},
	} {
		t.Run(name, func(t *testing.T) {
			population := populationOf(1)
			candidates := batchOf(9)
			if replaced, err := r.Replace(candidates, population); err != nil || replaced != 1 {
				t.Fatalf("expected 1 replacement, got %d (%v)", replaced, err)
			}
			if population.At(0) == candidates[0] {
				t.Fatal("population slot aliases the candidate")
			}
			candidates[0].SetFitness(-1)
			if population.At(0).Fitness() != 9 {
				t.Fatalf("population slot changed through candidate: %v", population.At(0).Fitness())
			}
		})
	}
}

func TestRandomReplacementEmptyPopulation(t *testing.T) {
	r := genetics.NewRandomReplacement(rng.New(1, false))
	if _, err := r.Replace(batchOf(1), genetics.NewPopulation()); !errors.Is(err, genetics.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
