package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

var gradesCode string

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the available steel grades",
	Long: `List the steel grades known to gosteel with their yield and ultimate
strengths, grouped by the design code they are customarily used with.

Examples:
  gosteel grades
  gosteel grades --code american -o json`,
	Run: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)
	gradesCmd.Flags().StringVarP(&gradesCode, "code", "c", "", "Only list grades for this code (egyptian, american)")
}

func runGrades(cmd *cobra.Command, args []string) {
	list := steel.Grades()
	if gradesCode != "" {
		code, err := steel.ParseCode(gradesCode)
		if err != nil {
			exitWithError(err)
		}
		list = steel.GradesFor(code)
	}

	structured, err := writeStructured(list)
	if err != nil {
		exitWithError(err)
	}
	if structured {
		return
	}

	printBanner("STEEL GRADES")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tfy (MPa)\tfu (MPa)\tCode\tsf\tFlange λp\tWeb λp\n")
	fmt.Fprintf(w, "  ─────\t────────\t────────\t────\t──\t─────────\t──────\n")
	for _, g := range list {
		flange, web := check.CompactLimits(g)
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%s\t%.2f\t%.2f\t%.2f\n",
			g.Name, g.Fy, g.Fu, g.Code.Title(), g.Code.SafetyFactor(), flange, web)
	}
	w.Flush()
	fmt.Println()
}
