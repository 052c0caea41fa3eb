package cmd

import (
	"github.com/spf13/cobra"
)

var purlinCmd = &cobra.Command{
	Use:   "purlin",
	Short: "Roof purlin design",
	Long: `Design simply supported roof purlins.

Subcommands:
  design   - Evaluate the purlin load combinations and size a section for the governing one`,
}

func init() {
	rootCmd.AddCommand(purlinCmd)
}
