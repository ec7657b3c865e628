package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultExportName is the conventional file name for the CSV export.
const DefaultExportName = "ManningMCdata.csv"

// WriteCSV serializes the table: a header with a 1-based trial index
// column followed by the ten data columns, then one record per trial.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(ColumnNames)+1)
	header = append(header, "trial")
	header = append(header, ColumnNames[:]...)
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for i := 0; i < t.rows; i++ {
		rec[0] = strconv.Itoa(i + 1)
		for j := range t.cols {
			rec[j+1] = strconv.FormatFloat(t.cols[j][i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFile writes the table to path as CSV. A failed write leaves the
// in-memory table untouched; the error carries the destination path.
func ExportFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
