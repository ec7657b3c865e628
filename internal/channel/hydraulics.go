package channel

import "math"

// Flow holds the per-trial Manning flow solution, aligned by trial index
// with the Geometry it was computed from.
type Flow struct {
	Velocity  []float64 // m/s
	Discharge []float64 // m³/s
}

// ComputeFlow applies Manning's equation per trial:
//
//	V = (1/n) · R^(2/3) · S^(1/2)
//	Q = V · A
//
// Zero roughness or a negative radius/slope produce non-finite values
// that propagate downstream rather than erroring.
func ComputeFlow(g *Geometry, bedSlope, roughness []float64) *Flow {
	n := len(roughness)
	f := &Flow{
		Velocity:  make([]float64, n),
		Discharge: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		f.Velocity[i] = math.Pow(g.RadiusHyd[i], 2.0/3.0) * math.Sqrt(bedSlope[i]) / roughness[i]
		f.Discharge[i] = f.Velocity[i] * g.AreaTotal[i]
	}
	return f
}
