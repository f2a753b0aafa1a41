package genetics

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// Population is an ordered sequence of individuals whose size is fixed at
// construction. Only the contents of its slots change.
//
// Population performs no locking; callers serialize replacement with any
// concurrent reader.
type Population struct {
	members []Individual
}

func NewPopulation(members ...Individual) *Population {
	return &Population{members: slices.Clone(members)}
}

func (p *Population) Len() int {
	return len(p.members)
}

func (p *Population) At(i int) Individual {
	return p.members[i]
}

// Set overwrites slot i with the given individual as is.
func (p *Population) Set(i int, individual Individual) {
	p.members[i] = individual
}

// Members returns a copy of the slot slice. Individuals are shared.
func (p *Population) Members() []Individual {
	return slices.Clone(p.members)
}

func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.members))
	for i, m := range p.members {
		out[i] = m.Fitness()
	}
	return out
}

// SortAscending orders the population worst first, which WorstReplacement
// expects of its callers.
func (p *Population) SortAscending() {
	slices.SortStableFunc(p.members, func(a, b Individual) int {
		return cmp.Compare(a.Fitness(), b.Fitness())
	})
}

func (p *Population) SortDescending() {
	SortDescending(p.members)
}

func (p *Population) IsSortedAscending() bool {
	return slices.IsSortedFunc(p.members, func(a, b Individual) int {
		return cmp.Compare(a.Fitness(), b.Fitness())
	})
}

// Best returns the fittest member, or nil when empty.
func (p *Population) Best() Individual {
	if len(p.members) == 0 {
		return nil
	}
	return slices.MaxFunc(p.members, func(a, b Individual) int {
		return cmp.Compare(a.Fitness(), b.Fitness())
	})
}

// Worst returns the least fit member, or nil when empty.
func (p *Population) Worst() Individual {
	if len(p.members) == 0 {
		return nil
	}
	return slices.MinFunc(p.members, func(a, b Individual) int {
		return cmp.Compare(a.Fitness(), b.Fitness())
	})
}

// SortDescending orders a candidate batch best first.
func SortDescending(batch []Individual) {
	slices.SortStableFunc(batch, func(a, b Individual) int {
		return cmp.Compare(b.Fitness(), a.Fitness())
	})
}

type Stats struct {
	Size   int
	Mean   float64
	StdDev float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

func (p *Population) Stats() Stats {
	fitnesses := p.Fitnesses()
	if len(fitnesses) == 0 {
		return Stats{}
	}
	return Stats{
		Size:   len(fitnesses),
		Mean:   stat.Mean(fitnesses, nil),
		StdDev: stat.StdDev(fitnesses, nil),
		Min:    minFloats(fitnesses),
		P25:    CalculatePercentile(fitnesses, 25),
		Median: CalculatePercentile(fitnesses, 50),
		P75:    CalculatePercentile(fitnesses, 75),
		Max:    maxFloats(fitnesses),
	}
}

func (s Stats) Row(label string) table.Row {
	return table.Row{
		label,
		fmt.Sprintf("%0.6f", s.Mean),
		fmt.Sprintf("%0.6f", s.Min),
		fmt.Sprintf("%0.6f", s.P25),
		fmt.Sprintf("%0.6f", s.Median),
		fmt.Sprintf("%0.6f", s.P75),
		fmt.Sprintf("%0.6f", s.Max),
		fmt.Sprintf("%0.6f", s.StdDev),
	}
}

func (p *Population) Write(w io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"", "MEAN", "MIN", "25TH", "MEDIAN", "75TH", "MAX", "STDDEV"})
	t.AppendRow(p.Stats().Row("Fitness"))
	t.AppendSeparator()
	for i, m := range p.members {
		t.AppendRow(table.Row{fmt.Sprintf("#%d", i), fmt.Sprintf("%0.6f", m.Fitness())})
	}
	t.Render()
}
