package channel

import "math"

// Geometry holds the derived geometry of a symmetric trapezoidal channel
// section, one element per Monte Carlo trial. All slices are aligned by
// trial index and never mutated after ComputeGeometry returns.
type Geometry struct {
	Adj         []float64 // half the width difference (m)
	Opp         []float64 // vertical side extent, equal to depth (m)
	Hyp         []float64 // wetted length of one sloped side (m)
	AreaSide    []float64 // area of one triangular side panel (m²)
	AreaTotal   []float64 // total cross-sectional flow area (m²)
	WettedPerim []float64 // wetted perimeter (m)
	RadiusHyd   []float64 // hydraulic radius A/P (m)
}

// ComputeGeometry derives the trapezoid geometry for every trial.
// topWidth, bottomWidth and depth must all have the same length; each
// output element depends only on the inputs at the same index.
//
// A degenerate section with zero wetted perimeter yields a non-finite
// hydraulic radius. No guarding is done here; the caller chose ranges
// that can reach zero.
func ComputeGeometry(topWidth, bottomWidth, depth []float64) *Geometry {
	n := len(depth)
	g := &Geometry{
		Adj:         make([]float64, n),
		Opp:         make([]float64, n),
		Hyp:         make([]float64, n),
		AreaSide:    make([]float64, n),
		AreaTotal:   make([]float64, n),
		WettedPerim: make([]float64, n),
		RadiusHyd:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		g.Adj[i] = (topWidth[i] - bottomWidth[i]) / 2
		g.Opp[i] = depth[i]
		g.Hyp[i] = math.Sqrt(g.Adj[i]*g.Adj[i] + g.Opp[i]*g.Opp[i])
		g.AreaSide[i] = 0.5 * g.Adj[i] * g.Opp[i]
		g.AreaTotal[i] = depth[i]*bottomWidth[i] + 2*g.AreaSide[i]
		g.WettedPerim[i] = bottomWidth[i] + 2*g.Hyp[i]
		g.RadiusHyd[i] = g.AreaTotal[i] / g.WettedPerim[i]
	}
	return g
}
