package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/openchannel/manningmc/internal/results"
)

// ASCIIHistogram renders a terminal histogram of one sample vector: the
// 20-bin count profile drawn as a line, with the value range in the
// caption. Non-finite samples are excluded by the binning.
func ASCIIHistogram(label string, v []float64) string {
	bins := results.Histogram(v, results.HistogramBins)

	counts := make([]float64, len(bins))
	for i, b := range bins {
		counts[i] = float64(b.Count)
	}

	caption := fmt.Sprintf("%s  [%.4g .. %.4g]", label, bins[0].Lower, bins[len(bins)-1].Upper)
	return asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
