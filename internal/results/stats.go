package results

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// HistogramBins is the bin count used for every histogram view.
const HistogramBins = 20

// Summary is the six-number summary of one vector.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Mean   float64
	Q3     float64
	Max    float64
}

// Summarize computes the summary over the finite values of v. Non-finite
// values are excluded from the aggregates; a vector with no finite
// values yields NaN throughout.
func Summarize(v []float64) Summary {
	f := finiteSorted(v)
	if len(f) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Q1: nan, Median: nan, Mean: nan, Q3: nan, Max: nan}
	}
	return Summary{
		Min:    f[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, f, nil),
		Median: stat.Quantile(0.5, stat.Empirical, f, nil),
		Mean:   stat.Mean(f, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, f, nil),
		Max:    f[len(f)-1],
	}
}

// Bin is one histogram bucket. Lower is inclusive; Upper is exclusive
// except on the last bin.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram buckets the finite values of v into bins equal-width
// buckets spanning the finite minimum to maximum. A constant vector
// collapses into the first bucket.
func Histogram(v []float64, bins int) []Bin {
	out := make([]Bin, bins)
	f := finiteSorted(v)
	if len(f) == 0 {
		return out
	}
	lo, hi := f[0], f[len(f)-1]
	width := (hi - lo) / float64(bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi
	if width == 0 {
		out[0].Count = len(f)
		return out
	}
	for _, x := range f {
		idx := int((x - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Boxplot holds quartiles and the 1.5·IQR outlier fences for one vector.
type Boxplot struct {
	Q1         float64
	Median     float64
	Q3         float64
	LowerFence float64
	UpperFence float64
	Outliers   []float64
}

// BoxplotData computes standard boxplot quantities over the finite
// values of v.
func BoxplotData(v []float64) Boxplot {
	f := finiteSorted(v)
	if len(f) == 0 {
		nan := math.NaN()
		return Boxplot{Q1: nan, Median: nan, Q3: nan, LowerFence: nan, UpperFence: nan}
	}
	b := Boxplot{
		Q1:     stat.Quantile(0.25, stat.Empirical, f, nil),
		Median: stat.Quantile(0.5, stat.Empirical, f, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, f, nil),
	}
	iqr := b.Q3 - b.Q1
	b.LowerFence = b.Q1 - 1.5*iqr
	b.UpperFence = b.Q3 + 1.5*iqr
	for _, x := range f {
		if x < b.LowerFence || x > b.UpperFence {
			b.Outliers = append(b.Outliers, x)
		}
	}
	return b
}

// Finite returns the finite values of v, preserving order.
func Finite(v []float64) []float64 {
	f := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			f = append(f, x)
		}
	}
	return f
}

func finiteSorted(v []float64) []float64 {
	f := Finite(v)
	sort.Float64s(f)
	return f
}
