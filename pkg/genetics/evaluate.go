package genetics

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// Objective scores one individual. It must be safe for concurrent calls.
type Objective func(individual Individual) float64

func worker(ctx context.Context, tracker *progress.Tracker, individuals []Individual, objective Objective, wg *sync.WaitGroup) {
	defer wg.Done()
	for _, individual := range individuals {
		if ctx.Err() != nil {
			return
		}
		individual.SetFitness(objective(individual))
		if tracker != nil {
			tracker.Increment(1)
		}
	}
}

// EvaluateFitness rescores individuals in place on a pool of workers. When pw
// is non-nil a tracker labelled with message is appended to it.
func EvaluateFitness(ctx context.Context, pw progress.Writer, message string, individuals []Individual, objective Objective) error {
	if len(individuals) == 0 {
		return nil
	}

	var tracker *progress.Tracker
	if pw != nil {
		tracker = &progress.Tracker{
			Message: message,
			Total:   int64(len(individuals)),
			Units:   progress.UnitsDefault,
		}
		pw.AppendTracker(tracker)
		tracker.Start()
	}

	numWorkers := runtime.NumCPU() - 1
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(individuals) {
		numWorkers = len(individuals)
	}
	chunkSize := len(individuals) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if i == numWorkers-1 {
			end = len(individuals)
		}
		wg.Add(1)
		go worker(ctx, tracker, individuals[start:end], objective, &wg)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		if tracker != nil {
			tracker.MarkAsErrored()
		}
		return fmt.Errorf("evaluating %s: %w", message, err)
	}
	if tracker != nil {
		tracker.MarkAsDone()
	}
	return nil
}
