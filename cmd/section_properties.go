package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/section"
)

var (
	sectionFile        string
	sectionDef         section.Definition
	sectionShowDiagram bool
	sectionExportFile  string
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Compute the properties of a steel section",
	Long: `Compute the geometric properties of an I-beam or channel from its
height, width, web thickness and flange thickness (mm).

Examples:
  gosteel section properties --type I-Beam --height 300 --width 150 --tw 7 --tf 11
  gosteel section properties --file purlin.yaml --diagram
  gosteel section properties -f purlin.yaml --export c160.svg`,
	Run: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Section JSON or YAML file")
	sectionPropertiesCmd.Flags().StringVar(&sectionDef.Name, "name", "", "Section name")
	sectionPropertiesCmd.Flags().StringVar(&sectionDef.Type, "type", "I-Beam", "Section type (I-Beam, Channel)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionDef.Height, "height", 0, "Overall height h (mm)")
	sectionPropertiesCmd.Flags().Float64VarP(&sectionDef.Width, "width", "b", 0, "Flange width b (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionDef.WebThickness, "tw", 0, "Web thickness tw (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionDef.FlangeThickness, "tf", 0, "Flange thickness tf (mm)")

	sectionPropertiesCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show an ASCII drawing of the section")
	sectionPropertiesCmd.Flags().StringVar(&sectionExportFile, "export", "", "Export the section drawing to file (png, svg, pdf)")
}

func runSectionProperties(cmd *cobra.Command, args []string) {
	var (
		props section.Properties
		err   error
	)
	if sectionFile != "" {
		props, err = section.LoadFromFile(sectionFile)
	} else {
		props, err = sectionDef.Properties()
	}
	if err != nil {
		exitWithError(err)
	}

	structured, err := writeStructured(props)
	if err != nil {
		exitWithError(err)
	}
	if !structured {
		printBanner(fmt.Sprintf("SECTION PROPERTIES - %s", props.Name))
		printSectionProperties(props)
		if sectionShowDiagram {
			fmt.Println(diagram.DrawASCIISectionDiagram(props))
		}
	}

	if sectionExportFile != "" {
		if err := diagram.ExportSectionProfile(props, sectionExportFile); err != nil {
			exitWithError(fmt.Errorf("exporting section drawing: %w", err))
		}
		if !structured {
			fmt.Printf("Section drawing exported to: %s\n", sectionExportFile)
		}
	}
}

func printSectionProperties(p section.Properties) {
	printHeading("DIMENSIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", p.Type)
	fmt.Fprintf(w, "  Height (h):\t%.1f mm\n", p.Height)
	fmt.Fprintf(w, "  Width (b):\t%.1f mm\n", p.Width)
	fmt.Fprintf(w, "  Web thickness (tw):\t%.1f mm\n", p.WebThickness)
	fmt.Fprintf(w, "  Flange thickness (tf):\t%.1f mm\n", p.FlangeThickness)
	fmt.Fprintf(w, "  Clear web height (hw):\t%.1f mm\n", p.WebHeight())
	w.Flush()
	fmt.Println()

	printHeading("PROPERTIES:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.1f mm²\n", p.Area)
	fmt.Fprintf(w, "  Ix:\t%.5g mm⁴\n", p.Ix)
	fmt.Fprintf(w, "  Iy:\t%.5g mm⁴\n", p.Iy)
	fmt.Fprintf(w, "  Zx:\t%.5g mm³\n", p.Zx)
	fmt.Fprintf(w, "  J:\t%.5g mm⁴\n", p.J)
	fmt.Fprintf(w, "  Cw:\t%.5g mm⁶\n", p.Cw)
	fmt.Fprintf(w, "  Mass:\t%.2f kg/m\n", p.Area*steelDensity/1e6)
	w.Flush()
	fmt.Println()
}

// kg/m³
const steelDensity = 7850.0
