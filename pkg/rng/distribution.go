package rng

// Distribution draws one value from a Source.
type Distribution interface {
	Sample(s *Source) float64
}

type UniformDistribution struct {
	Lo float64
	Hi float64
}

func (d UniformDistribution) Sample(s *Source) float64 {
	return s.Uniform(d.Lo, d.Hi)
}

// GaussianDistribution carries the +0.5 standard deviation bias of Source.Gaussian.
type GaussianDistribution struct {
	Mean   float64
	StdDev float64
}

func (d GaussianDistribution) Sample(s *Source) float64 {
	return s.Gaussian(d.Mean, d.StdDev)
}

func (s *Source) Sample(d Distribution) float64 {
	return d.Sample(s)
}

func (s *Source) SampleN(d Distribution, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Sample(s)
	}
	return out
}
