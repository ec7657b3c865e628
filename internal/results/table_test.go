package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVectors(n int) Vectors {
	col := func(base float64) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = base + float64(i)
		}
		return v
	}
	return Vectors{
		Roughness:       col(0.01),
		TopWidth:        col(10),
		BottomWidth:     col(5),
		Depth:           col(1),
		BedSlope:        col(0.001),
		Area:            col(100),
		WettedPerimeter: col(200),
		HydraulicRadius: col(300),
		Velocity:        col(400),
		Discharge:       col(500),
	}
}

func TestBuildShape(t *testing.T) {
	table := Build(testVectors(7))

	assert.Equal(t, 7, table.Rows())
	assert.Len(t, ColumnNames, 10)
}

func TestColumnOrder(t *testing.T) {
	want := []string{
		"n", "TopWidth", "BottomWidth", "Depth", "BedSlope",
		"Area", "WettedPerimeter", "HydraulicRadius", "Velocity", "Discharge",
	}
	assert.Equal(t, want, ColumnNames[:])
}

func TestColumnLookup(t *testing.T) {
	v := testVectors(3)
	table := Build(v)

	require.Equal(t, v.Roughness, table.Column("n"))
	require.Equal(t, v.Discharge, table.Column("Discharge"))
	require.Equal(t, v.HydraulicRadius, table.Column("HydraulicRadius"))
	assert.Nil(t, table.Column("NoSuchColumn"))
}
