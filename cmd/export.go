package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openchannel/manningmc/internal/montecarlo"
	"github.com/openchannel/manningmc/internal/results"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the simulation and export every trial as CSV",
	Long: `Run the full Monte Carlo simulation and write one CSV row per trial:
a trial index followed by the five sampled inputs (n, TopWidth,
BottomWidth, Depth, BedSlope) and the five derived quantities (Area,
WettedPerimeter, HydraulicRadius, Velocity, Discharge).

Examples:
  # Write ManningMCdata.csv in the current directory
  manningmc export

  # Reproducible export to a chosen path
  manningmc export --seed 42 --output /tmp/channel-study.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addRangeFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", results.DefaultExportName, "Output CSV path")
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := inputRanges()
	if err != nil {
		return err
	}

	table := montecarlo.Run(in, newSampler())
	if err := results.ExportFile(exportOutput, table); err != nil {
		return err
	}

	fmt.Printf("Wrote %d trials to %s\n", table.Rows(), exportOutput)
	return nil
}
