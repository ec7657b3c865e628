package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openchannel/manningmc/internal/montecarlo"
	"github.com/openchannel/manningmc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "manningmc",
	Short: "Monte Carlo uncertainty analysis for Manning's equation",
	Long: `manningmc - Monte Carlo Manning's Equation Tool

A CLI tool for propagating input uncertainty through Manning's
equation for open-channel flow in symmetric trapezoidal channels.

Supply a min/max range for each of the five physical inputs
(roughness n, top width, bottom width, depth, bed slope); the tool
draws independent uniform samples for each, propagates them through
the trapezoid geometry and Manning's equation, and reports the
resulting discharge distribution.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   manningmc v%-45s║\n", version.Version)
		fmt.Println("  ║   Monte Carlo Manning's Equation Tool                     ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for uncertainty analysis of open-channel flow")
		fmt.Println("  in symmetric trapezoidal channels via Manning's equation.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Printf("    • %d-trial Monte Carlo simulation per run\n", montecarlo.TrialCount)
		fmt.Println("    • Discharge summary statistics and terminal histogram")
		fmt.Println("    • Histogram and boxplot export as PNG")
		fmt.Println("    • CSV export of every trial")
		fmt.Println()
		fmt.Println("  Use 'manningmc --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
