package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openchannel/manningmc/internal/channel"
	"github.com/openchannel/manningmc/internal/montecarlo"
)

var (
	// Input ranges (min/max per stochastic variable)
	roughnessMin   float64
	roughnessMax   float64
	topWidthMin    float64
	topWidthMax    float64
	bottomWidthMin float64
	bottomWidthMax float64
	depthMin       float64
	depthMax       float64
	bedSlopeMin    float64
	bedSlopeMax    float64

	// Randomness
	seed uint64
)

// addRangeFlags registers the shared input-range flags on a command.
// Defaults match the tool's standard channel scenario.
func addRangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.Float64Var(&roughnessMin, "n-min", channel.Roughness.DefaultMin, "Minimum Manning's roughness n")
	f.Float64Var(&roughnessMax, "n-max", channel.Roughness.DefaultMax, "Maximum Manning's roughness n")
	f.Float64Var(&topWidthMin, "top-min", channel.TopWidth.DefaultMin, "Minimum top width (m)")
	f.Float64Var(&topWidthMax, "top-max", channel.TopWidth.DefaultMax, "Maximum top width (m)")
	f.Float64Var(&bottomWidthMin, "bottom-min", channel.BottomWidth.DefaultMin, "Minimum bottom width (m)")
	f.Float64Var(&bottomWidthMax, "bottom-max", channel.BottomWidth.DefaultMax, "Maximum bottom width (m)")
	f.Float64Var(&depthMin, "depth-min", channel.Depth.DefaultMin, "Minimum flow depth (m)")
	f.Float64Var(&depthMax, "depth-max", channel.Depth.DefaultMax, "Maximum flow depth (m)")
	f.Float64Var(&bedSlopeMin, "slope-min", channel.BedSlope.DefaultMin, "Minimum bed slope (m/m)")
	f.Float64Var(&bedSlopeMax, "slope-max", channel.BedSlope.DefaultMax, "Maximum bed slope (m/m)")

	f.Uint64Var(&seed, "seed", 0, "Random seed (0 seeds from the current time)")
}

// inputRanges validates the flag values and assembles the input
// snapshot. Validation lives here because the command surface is the
// control surface; the pipeline itself does not guard its inputs.
func inputRanges() (montecarlo.Inputs, error) {
	checks := []struct {
		lim      channel.InputLimits
		min, max float64
	}{
		{channel.Roughness, roughnessMin, roughnessMax},
		{channel.TopWidth, topWidthMin, topWidthMax},
		{channel.BottomWidth, bottomWidthMin, bottomWidthMax},
		{channel.Depth, depthMin, depthMax},
		{channel.BedSlope, bedSlopeMin, bedSlopeMax},
	}
	for _, c := range checks {
		if c.min > c.max {
			return montecarlo.Inputs{}, fmt.Errorf("%s: min %g exceeds max %g", c.lim.Name, c.min, c.max)
		}
		if !c.lim.Contains(c.min, c.max) {
			return montecarlo.Inputs{}, fmt.Errorf("%s: range [%g, %g] outside allowed [%g, %g]",
				c.lim.Name, c.min, c.max, c.lim.Min, c.lim.Max)
		}
	}

	return montecarlo.Inputs{
		Roughness:   montecarlo.Range{Min: roughnessMin, Max: roughnessMax},
		TopWidth:    montecarlo.Range{Min: topWidthMin, Max: topWidthMax},
		BottomWidth: montecarlo.Range{Min: bottomWidthMin, Max: bottomWidthMax},
		Depth:       montecarlo.Range{Min: depthMin, Max: depthMax},
		BedSlope:    montecarlo.Range{Min: bedSlopeMin, Max: bedSlopeMax},
	}, nil
}

// newSampler seeds from the --seed flag, falling back to the clock.
func newSampler() *montecarlo.Sampler {
	s := seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return montecarlo.NewSampler(s)
}
