package channel

// InputLimits describes one stochastic input: the physical interval the
// control surface may offer, and the default sampling range.
type InputLimits struct {
	Name string
	Unit string

	// Admissible interval
	Min float64
	Max float64

	// Default sampling range
	DefaultMin float64
	DefaultMax float64
}

// Limits for the five stochastic inputs of the trapezoidal channel model.
var (
	Roughness   = InputLimits{Name: "Manning's n", Unit: "s/m^(1/3)", Min: 0.000, Max: 0.300, DefaultMin: 0.03, DefaultMax: 0.04}
	TopWidth    = InputLimits{Name: "Top width", Unit: "m", Min: 1, Max: 1000, DefaultMin: 10, DefaultMax: 20}
	BottomWidth = InputLimits{Name: "Bottom width", Unit: "m", Min: 1, Max: 1000, DefaultMin: 5, DefaultMax: 10}
	Depth       = InputLimits{Name: "Depth", Unit: "m", Min: 0.2, Max: 100, DefaultMin: 1, DefaultMax: 2}
	BedSlope    = InputLimits{Name: "Bed slope", Unit: "m/m", Min: 0.0001, Max: 0.25, DefaultMin: 0.002, DefaultMax: 0.005}
)

// Contains reports whether [lo, hi] lies within the admissible interval.
func (l InputLimits) Contains(lo, hi float64) bool {
	return lo >= l.Min && hi <= l.Max
}
