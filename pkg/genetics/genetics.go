package genetics

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/progress"
)

type CycleResult struct {
	Candidates []Individual
	Elite      int
	Replaced   int
	Population Stats
	Batch      Stats
}

// Cycle runs one selection and replacement pass over population: the
// eliteCount fittest members are cloned as the batch prefix, selection fills
// the batch to n, the drawn candidates are rescored with objective and sorted
// best first, and replacer merges the batch back. Populations handed to
// WorstReplacement are sorted ascending first, and it skips exactly the
// elite prefix of this batch.
//
// How many cycles to run is up to the caller.
func Cycle(ctx context.Context, pw progress.Writer, generation int, population *Population, selector Selector, replacer Replacer, objective Objective, n, eliteCount int) (CycleResult, error) {
	if population.Len() == 0 {
		return CycleResult{}, fmt.Errorf("cycle over empty population: %w", ErrInvalidArgument)
	}

	ranked := population.Members()
	SortDescending(ranked)
	elite := make([]Individual, 0, eliteCount)
	for i := 0; i < eliteCount && i < len(ranked) && i < n; i++ {
		elite = append(elite, ranked[i].Clone())
	}

	batch, err := selector.Select(population, elite, n)
	if err != nil {
		return CycleResult{}, fmt.Errorf("selecting generation %d: %w", generation, err)
	}

	drawn := batch[len(elite):]
	if err := EvaluateFitness(ctx, pw, fmt.Sprintf("Evaluating candidates of generation %d", generation), drawn, objective); err != nil {
		return CycleResult{}, err
	}
	SortDescending(drawn)

	if worst, ok := replacer.(*WorstReplacement); ok {
		population.SortAscending()
		replacer = &WorstReplacement{EliteCount: len(elite), Strict: worst.Strict}
	}

	replaced, err := replacer.Replace(batch, population)
	if err != nil {
		return CycleResult{}, fmt.Errorf("replacing generation %d: %w", generation, err)
	}

	return CycleResult{
		Candidates: batch,
		Elite:      len(elite),
		Replaced:   replaced,
		Population: population.Stats(),
		Batch:      NewPopulation(batch...).Stats(),
	}, nil
}
