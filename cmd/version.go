package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openchannel/manningmc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of manningmc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("manningmc v%s\n", version.Version)
		fmt.Println("Monte Carlo Manning's Equation Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
