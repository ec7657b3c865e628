package montecarlo

import (
	"github.com/openchannel/manningmc/internal/channel"
	"github.com/openchannel/manningmc/internal/results"
)

// TrialCount is the number of Monte Carlo trials in one run. Every
// vector of a run has exactly this length; it is not user-configurable.
const TrialCount = 10000

// Inputs is one snapshot of the five input ranges, captured immutably
// for a single run.
type Inputs struct {
	Roughness   Range
	TopWidth    Range
	BottomWidth Range
	Depth       Range
	BedSlope    Range
}

// DefaultInputs returns the default sampling ranges of the five inputs.
func DefaultInputs() Inputs {
	return Inputs{
		Roughness:   Range{Min: channel.Roughness.DefaultMin, Max: channel.Roughness.DefaultMax},
		TopWidth:    Range{Min: channel.TopWidth.DefaultMin, Max: channel.TopWidth.DefaultMax},
		BottomWidth: Range{Min: channel.BottomWidth.DefaultMin, Max: channel.BottomWidth.DefaultMax},
		Depth:       Range{Min: channel.Depth.DefaultMin, Max: channel.Depth.DefaultMax},
		BedSlope:    Range{Min: channel.BedSlope.DefaultMin, Max: channel.BedSlope.DefaultMax},
	}
}

// Run samples every input once, propagates the draws through the
// trapezoid geometry and Manning's equation, and assembles the trial
// table. Each call allocates fresh vectors; nothing is shared between
// runs and nothing is mutated after the table is built.
func Run(in Inputs, s *Sampler) *results.Table {
	return RunN(in, s, TrialCount)
}

// RunN is Run with an explicit trial count.
func RunN(in Inputs, s *Sampler, n int) *results.Table {
	roughness := s.Sample(in.Roughness, n)
	topWidth := s.Sample(in.TopWidth, n)
	bottomWidth := s.Sample(in.BottomWidth, n)
	depth := s.Sample(in.Depth, n)
	bedSlope := s.Sample(in.BedSlope, n)

	geom := channel.ComputeGeometry(topWidth, bottomWidth, depth)
	flow := channel.ComputeFlow(geom, bedSlope, roughness)

	return results.Build(results.Vectors{
		Roughness:       roughness,
		TopWidth:        topWidth,
		BottomWidth:     bottomWidth,
		Depth:           depth,
		BedSlope:        bedSlope,
		Area:            geom.AreaTotal,
		WettedPerimeter: geom.WettedPerim,
		HydraulicRadius: geom.RadiusHyd,
		Velocity:        flow.Velocity,
		Discharge:       flow.Discharge,
	})
}
