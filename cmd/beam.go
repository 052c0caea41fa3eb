package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply supported steel floor beam design",
	Long: `Design and check simply supported steel floor beams.

Subcommands:
  design   - Size a section for a moment or for applied loads, or check a given section

Calculations use allowable stress design with the safety factor of the
selected code (Egyptian 1.50, American 1.67).`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
