package results

// ColumnNames lists the table columns in export order. The CSV contract
// depends on this exact order and spelling.
var ColumnNames = [...]string{
	"n",
	"TopWidth",
	"BottomWidth",
	"Depth",
	"BedSlope",
	"Area",
	"WettedPerimeter",
	"HydraulicRadius",
	"Velocity",
	"Discharge",
}

// Vectors carries the five input vectors and the five derived vectors of
// one run. All slices must have the same length.
type Vectors struct {
	Roughness   []float64
	TopWidth    []float64
	BottomWidth []float64
	Depth       []float64
	BedSlope    []float64

	Area            []float64
	WettedPerimeter []float64
	HydraulicRadius []float64
	Velocity        []float64
	Discharge       []float64
}

// Table is one run's trial table: ten aligned columns, one row per
// Monte Carlo trial. Built once per run, read-only afterwards, replaced
// wholesale on the next run.
type Table struct {
	cols [len(ColumnNames)][]float64
	rows int
}

// Build assembles the table from one run's vectors. Mismatched vector
// lengths are a caller contract violation, not a checked condition.
func Build(v Vectors) *Table {
	t := &Table{rows: len(v.Discharge)}
	t.cols = [len(ColumnNames)][]float64{
		v.Roughness,
		v.TopWidth,
		v.BottomWidth,
		v.Depth,
		v.BedSlope,
		v.Area,
		v.WettedPerimeter,
		v.HydraulicRadius,
		v.Velocity,
		v.Discharge,
	}
	return t
}

// Rows returns the number of trials in the table.
func (t *Table) Rows() int { return t.rows }

// Column returns the vector for a named column, or nil if the name is
// not one of ColumnNames.
func (t *Table) Column(name string) []float64 {
	for i, n := range ColumnNames {
		if n == name {
			return t.cols[i]
		}
	}
	return nil
}
