package results

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	v := testVectors(5)
	table := Build(v)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 5 trials

	wantHeader := append([]string{"trial"}, ColumnNames[:]...)
	assert.Equal(t, wantHeader, records[0])

	for i, rec := range records[1:] {
		require.Len(t, rec, 11)
		assert.Equal(t, strconv.Itoa(i+1), rec[0])

		got := make([]float64, 0, 10)
		for _, field := range rec[1:] {
			x, err := strconv.ParseFloat(field, 64)
			require.NoError(t, err)
			got = append(got, x)
		}
		want := []float64{
			v.Roughness[i], v.TopWidth[i], v.BottomWidth[i], v.Depth[i], v.BedSlope[i],
			v.Area[i], v.WettedPerimeter[i], v.HydraulicRadius[i], v.Velocity[i], v.Discharge[i],
		}
		assert.Equal(t, want, got)
	}
}

func TestExportFile(t *testing.T) {
	table := Build(testVectors(3))
	path := filepath.Join(t.TempDir(), DefaultExportName)

	require.NoError(t, ExportFile(path, table))

	f, err := readCSV(path)
	require.NoError(t, err)
	assert.Len(t, f, 4)
}

func TestExportFileUnwritableDestination(t *testing.T) {
	table := Build(testVectors(1))

	err := ExportFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export")
}

func readCSV(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return csv.NewReader(bytes.NewReader(b)).ReadAll()
}
