package genetics

// Individual is one scored candidate solution. The genotype is opaque here.
type Individual interface {
	Fitness() float64
	SetFitness(fitness float64)
	// Clone returns an independent deep copy, genotype and fitness included.
	Clone() Individual
}

// Chromosome is a real valued genotype with a scalar fitness.
type Chromosome struct {
	Genes []float64 `json:"genes"`
	Score float64   `json:"score"`
}

func NewChromosome(genes []float64, fitness float64) *Chromosome {
	return &Chromosome{
		Genes: append([]float64(nil), genes...),
		Score: fitness,
	}
}

func (c *Chromosome) Fitness() float64 {
	return c.Score
}

func (c *Chromosome) SetFitness(fitness float64) {
	c.Score = fitness
}

func (c *Chromosome) Clone() Individual {
	return NewChromosome(c.Genes, c.Score)
}
