package diagram

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/openchannel/manningmc/internal/results"
)

// ExportDischargePanels writes the two-panel discharge view: a 20-bin
// histogram next to a boxplot, as one PNG file.
func ExportDischargePanels(discharge []float64, filename string) error {
	hist, err := histogramPlot("Histogram of Discharge", "Discharge (m³/s)", discharge)
	if err != nil {
		return err
	}

	box := plot.New()
	box.Title.Text = "Boxplot of Discharge"
	box.Y.Label.Text = "Discharge (m³/s)"
	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(results.Finite(discharge)))
	if err != nil {
		return err
	}
	box.Add(b)
	box.NominalX("Discharge")

	return writeTiled([][]*plot.Plot{{hist, box}}, filename)
}

// ExportQuantityPanels writes the four-panel view: histograms of area,
// velocity, wetted perimeter and hydraulic radius in a 2x2 grid.
func ExportQuantityPanels(t *results.Table, filename string) error {
	panels := []struct {
		column string
		title  string
		label  string
	}{
		{"Area", "Flow Area", "Area (m²)"},
		{"Velocity", "Velocity", "Velocity (m/s)"},
		{"WettedPerimeter", "Wetted Perimeter", "Wetted perimeter (m)"},
		{"HydraulicRadius", "Hydraulic Radius", "Hydraulic radius (m)"},
	}

	plots := make([][]*plot.Plot, 2)
	for i := range plots {
		plots[i] = make([]*plot.Plot, 2)
	}
	for i, panel := range panels {
		p, err := histogramPlot(panel.title, panel.label, t.Column(panel.column))
		if err != nil {
			return err
		}
		plots[i/2][i%2] = p
	}

	return writeTiled(plots, filename)
}

// histogramPlot builds a 20-bin frequency histogram of one vector.
func histogramPlot(title, xlabel string, v []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(results.Finite(v)), results.HistogramBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	h.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(h)

	return p, nil
}

// writeTiled lays the plots out on one canvas and writes it as PNG.
func writeTiled(plots [][]*plot.Plot, filename string) error {
	rows := len(plots)
	cols := len(plots[0])

	img := vgimg.New(vg.Points(float64(cols)*320), vg.Points(float64(rows)*240))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Points(10),
		PadY: vg.Points(10),
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
