package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

var (
	sizeZreq        float64
	sizeMoment      float64
	sizeGrade       string
	sizeCode        string
	sizeType        string
	sizeShowDiagram bool
)

var sectionSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a section for a required section modulus",
	Long: `Size an I-beam or channel for a required elastic section modulus
using the proportioning rules of the design command. Give the modulus
directly with --zreq, or a moment with --moment to compute it as
Zreq = M·sf·10⁶/fy for the grade and code.

Examples:
  gosteel section size --zreq 312500
  gosteel section size --moment 50 --grade St52 --type channel`,
	Run: runSectionSize,
}

func init() {
	sectionCmd.AddCommand(sectionSizeCmd)

	sectionSizeCmd.Flags().Float64Var(&sizeZreq, "zreq", 0, "Required section modulus (mm³)")
	sectionSizeCmd.Flags().Float64VarP(&sizeMoment, "moment", "m", 0, "Design moment (kN-m)")
	sectionSizeCmd.Flags().StringVarP(&sizeGrade, "grade", "g", cfg.Grade, "Steel grade, used with --moment")
	sectionSizeCmd.Flags().StringVarP(&sizeCode, "code", "c", cfg.Code, "Design code, used with --moment")
	sectionSizeCmd.Flags().StringVar(&sizeType, "type", cfg.SectionType, "Section type (I-Beam, Channel)")
	sectionSizeCmd.Flags().BoolVar(&sizeShowDiagram, "diagram", false, "Show an ASCII drawing of the section")

	sectionSizeCmd.MarkFlagsMutuallyExclusive("zreq", "moment")
	sectionSizeCmd.MarkFlagsOneRequired("zreq", "moment")
}

func runSectionSize(cmd *cobra.Command, args []string) {
	t, err := section.ParseType(sizeType)
	if err != nil {
		exitWithError(err)
	}

	zreq := sizeZreq
	if cmd.Flags().Changed("moment") {
		grade, err := steel.LookupGrade(sizeGrade)
		if err != nil {
			exitWithError(err)
		}
		code, err := steel.ParseCode(sizeCode)
		if err != nil {
			exitWithError(err)
		}
		if zreq, err = check.RequiredModulus(sizeMoment, grade, code); err != nil {
			exitWithError(err)
		}
	}

	props, err := section.Synthesize(t, zreq)
	if err != nil {
		exitWithError(err)
	}

	structured, err := writeStructured(props)
	if err != nil {
		exitWithError(err)
	}
	if structured {
		return
	}

	printBanner(fmt.Sprintf("SECTION SIZING - %s", props.Name))
	fmt.Printf("  Required Zx: %.5g mm³\n", zreq)
	fmt.Printf("  Provided Zx: %.5g mm³ (%.0f%%)\n", props.Zx, 100*props.Zx/max(zreq, 1))
	fmt.Println()
	printSectionProperties(props)
	if sizeShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(props))
	}
}
