package results

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeConstantVector(t *testing.T) {
	v := make([]float64, 100)
	for i := range v {
		v[i] = 32.5
	}

	s := Summarize(v)

	assert.Equal(t, 32.5, s.Min)
	assert.Equal(t, 32.5, s.Q1)
	assert.Equal(t, 32.5, s.Median)
	assert.Equal(t, 32.5, s.Mean)
	assert.Equal(t, 32.5, s.Q3)
	assert.Equal(t, 32.5, s.Max)
}

func TestSummarizeQuartiles(t *testing.T) {
	s := Summarize([]float64{5, 3, 1, 4, 2})

	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.0, s.Q1)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 4.0, s.Q3)
	assert.Equal(t, 5.0, s.Max)
}

func TestSummarizeExcludesNonFinite(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, math.NaN(), math.Inf(1), math.Inf(-1)})

	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.Equal(t, 2.0, s.Mean)
}

func TestSummarizeAllNonFinite(t *testing.T) {
	s := Summarize([]float64{math.NaN(), math.Inf(1)})

	assert.True(t, math.IsNaN(s.Min))
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Max))
}

func TestHistogramCountsAndEdges(t *testing.T) {
	v := make([]float64, 1000)
	for i := range v {
		v[i] = float64(i) / 999 // evenly spread over [0, 1]
	}

	bins := Histogram(v, HistogramBins)

	require.Len(t, bins, HistogramBins)
	total := 0
	for _, b := range bins {
		total += b.Count
		assert.LessOrEqual(t, b.Lower, b.Upper)
	}
	assert.Equal(t, len(v), total)
	assert.Equal(t, 0.0, bins[0].Lower)
	assert.Equal(t, 1.0, bins[HistogramBins-1].Upper)
}

func TestHistogramConstantVector(t *testing.T) {
	bins := Histogram([]float64{4, 4, 4, 4}, HistogramBins)

	assert.Equal(t, 4, bins[0].Count)
	for _, b := range bins[1:] {
		assert.Zero(t, b.Count)
	}
}

func TestHistogramSkipsNonFinite(t *testing.T) {
	bins := Histogram([]float64{1, 2, math.NaN(), math.Inf(1)}, HistogramBins)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestBoxplotData(t *testing.T) {
	b := BoxplotData([]float64{1, 2, 3, 4, 5, 100})

	assert.Equal(t, 2.0, b.Q1)
	assert.Equal(t, 3.0, b.Median)
	assert.Equal(t, 5.0, b.Q3)
	assert.Equal(t, -2.5, b.LowerFence)
	assert.Equal(t, 9.5, b.UpperFence)
	assert.Equal(t, []float64{100}, b.Outliers)
}

func TestBoxplotDataNoOutliers(t *testing.T) {
	b := BoxplotData([]float64{1, 2, 3, 4, 5})

	assert.Empty(t, b.Outliers)
	assert.Less(t, b.LowerFence, b.Q1)
	assert.Greater(t, b.UpperFence, b.Q3)
}
