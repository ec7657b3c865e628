package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleWithinRange(t *testing.T) {
	s := NewSampler(42)
	r := Range{Min: 0.03, Max: 0.04}

	v := s.Sample(r, 5000)

	require.Len(t, v, 5000)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, r.Min)
		assert.LessOrEqual(t, x, r.Max)
	}
}

func TestSampleCollapsedRange(t *testing.T) {
	s := NewSampler(1)

	v := s.Sample(Range{Min: 2, Max: 2}, 100)

	for _, x := range v {
		assert.Equal(t, 2.0, x)
	}
}

func TestSampleSeedReproducibility(t *testing.T) {
	r := Range{Min: 5, Max: 10}

	a := NewSampler(99).Sample(r, 1000)
	b := NewSampler(99).Sample(r, 1000)
	c := NewSampler(100).Sample(r, 1000)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSampleSpreadsAcrossRange(t *testing.T) {
	s := NewSampler(7)
	r := Range{Min: 0, Max: 1}

	v := s.Sample(r, 10000)

	var low, high int
	for _, x := range v {
		if x < 0.5 {
			low++
		} else {
			high++
		}
	}
	// Uniform draws should not pile onto one half of the range.
	assert.Greater(t, low, 4000)
	assert.Greater(t, high, 4000)
}
