package montecarlo

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Range is the closed interval one stochastic input is drawn from.
type Range struct {
	Min float64
	Max float64
}

// Sampler draws i.i.d. uniform vectors from a single random source. One
// seed reproduces an entire run because every input vector is drawn from
// the same source in a fixed order.
type Sampler struct {
	src rand.Source
}

// NewSampler returns a sampler over a PCG source seeded with seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.NewPCG(seed, seed)}
}

// Sample draws n independent values from the continuous uniform
// distribution on [r.Min, r.Max]. A collapsed range (Min == Max) yields
// a constant vector; a range with Min > Max is a caller contract
// violation and is not checked here.
func (s *Sampler) Sample(r Range, n int) []float64 {
	u := distuv.Uniform{Min: r.Min, Max: r.Max, Src: s.src}
	v := make([]float64, n)
	for i := range v {
		v[i] = u.Rand()
	}
	return v
}
