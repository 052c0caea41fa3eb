package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Steel section properties and sizing",
	Long: `Compute the properties of I-beam and channel sections, or size one
for a required elastic section modulus.

Sections are given by their dimensions on the command line or in a JSON
or YAML file.

Subcommands:
  properties  - Area, Ix, Iy, Zx, J and Cw of a given section
  size        - Smallest heuristic section for a required Zx or moment

Example section file (YAML):
  name: C-ROOF
  type: channel
  height: 160
  width: 65
  web_thickness: 5
  flange_thickness: 7`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
