package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

var (
	screenSpan     float64
	screenMoment   float64
	screenLoads    []string
	screenLoadType string
	screenCode     string
	screenGrades   []string
	screenTypes    []string
	screenFile     string
	screenWorkers  int
	screenReport   string
)

// screenRow is the structured form of one screening outcome
type screenRow struct {
	Index       int            `json:"index" yaml:"index"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Grade       string         `json:"steel_grade" yaml:"steel_grade"`
	SectionType string         `json:"section_type" yaml:"section_type"`
	Result      *design.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error       string         `json:"error,omitempty" yaml:"error,omitempty"`
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Design many alternatives concurrently and compare them",
	Long: `Screen design alternatives concurrently.

With --span and --moment or --load, the demand is designed once for every
grade of the code (or the --grade list) and every section type. With
--file, each request in a JSON, YAML or Excel file is designed as given.
Excel files use a header row naming the columns: name, span, moment,
loads, load_type, steel_grade, code, section_type, category, accessible.

The lightest safe alternative is highlighted.

Examples:
  # Every Egyptian grade with I-beams and channels
  gosteel screen --span 6 --moment 50

  # Selected grades, written to a workbook
  gosteel screen --span 6 --moment 50 --grade St37 --grade St52 --report screen.xlsx

  # Requests from a spreadsheet
  gosteel screen --file beams.xlsx --workers 8`,
	Run: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().Float64Var(&screenSpan, "span", 0, "Span (m)")
	screenCmd.Flags().Float64VarP(&screenMoment, "moment", "m", 0, "Design moment (kN-m)")
	screenCmd.Flags().StringArrayVarP(&screenLoads, "load", "l", nil, "Applied load value[:unit[:kind]] (repeatable)")
	screenCmd.Flags().StringVarP(&screenLoadType, "load-type", "t", design.DefaultLoadType, "Load type (uniform, point)")
	screenCmd.Flags().StringVarP(&screenCode, "code", "c", cfg.Code, "Design code (egyptian, american)")
	screenCmd.Flags().StringArrayVarP(&screenGrades, "grade", "g", nil, "Steel grade to include (repeatable); default every grade of the code")
	screenCmd.Flags().StringArrayVar(&screenTypes, "section", nil, "Section type to include (repeatable); default all")
	screenCmd.Flags().StringVarP(&screenFile, "file", "f", "", "Design requests from a JSON, YAML or Excel file")
	screenCmd.Flags().IntVarP(&screenWorkers, "workers", "w", cfg.Workers, "Number of designs run at once")
	screenCmd.Flags().StringVar(&screenReport, "report", "", "Write the outcomes to an Excel workbook")
}

func runScreen(cmd *cobra.Command, args []string) {
	demands, err := screenDemands(cmd)
	if err != nil {
		exitWithError(err)
	}
	if len(demands) == 0 {
		exitWithError(fmt.Errorf("nothing to screen"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	screener := design.Screener{Workers: screenWorkers, Log: log}
	outcomes, err := screener.Screen(ctx, demands)
	if err != nil {
		exitWithError(err)
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	log.WithFields(logrus.Fields{"alternatives": len(outcomes), "failed": failed}).Info("screening finished")

	if screenReport != "" {
		if err := report.WriteScreening(outcomes, screenReport); err != nil {
			exitWithError(err)
		}
	}

	rows := make([]screenRow, len(outcomes))
	for i, o := range outcomes {
		rows[i] = screenRow{
			Index:       o.Index + 1,
			Name:        o.Demand.Name,
			Grade:       o.Demand.Grade.Name,
			SectionType: o.Demand.SectionType.String(),
			Result:      o.Result,
		}
		if o.Err != nil {
			rows[i].Error = o.Err.Error()
		}
	}
	structured, err := writeStructured(rows)
	if err != nil {
		exitWithError(err)
	}
	if structured {
		return
	}

	printBanner("DESIGN SCREENING")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tName\tGrade\tSection\tArea (mm²)\tBending\tDeflection\tLTB\tStatus\n")
	fmt.Fprintf(w, "  ─\t────\t─────\t───────\t──────────\t───────\t──────────\t───\t──────\n")
	best, found := design.Lightest(outcomes)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t-\t-\t-\t-\t%s %v\n",
				o.Index+1, o.Demand.Name, o.Demand.Grade.Name, o.Demand.SectionType, errorLabel("Error:"), o.Err)
			continue
		}
		r := o.Result
		ltb := "-"
		if u := r.LTBCheck.Utilization; u != nil {
			ltb = fmt.Sprintf("%.3f", *u)
		}
		marker := ""
		if found && o.Index == best.Index {
			marker = " ← LIGHTEST"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.0f\t%.3f\t%.3f\t%s\t%s%s\n",
			o.Index+1, r.Name, r.SteelGrade, r.SectionProperties.Name, r.SectionProperties.Area,
			r.CapacityCheck.Utilization, r.DeflectionCheck.Utilization, ltb, statusText(r.OverallStatus), marker)
	}
	w.Flush()
	fmt.Println()

	if found {
		fmt.Printf("  Lightest safe alternative: %s in %s (%.0f mm²)\n",
			best.Result.SectionProperties.Name, best.Result.SteelGrade, best.Result.SectionProperties.Area)
	} else {
		fmt.Printf("  %s\n", noteText("No alternative passed every check."))
	}
	if screenReport != "" {
		fmt.Printf("  Outcomes written to: %s\n", screenReport)
	}
	fmt.Println()
}

// screenDemands builds the demands from a request file, or the grade and
// section type alternatives of the demand given by flags
func screenDemands(cmd *cobra.Command) ([]design.Demand, error) {
	if screenFile != "" {
		var requests []design.Request
		var err error
		if strings.EqualFold(filepath.Ext(screenFile), ".xlsx") {
			requests, err = report.ImportRequests(screenFile, log)
		} else {
			requests, err = design.LoadRequests(screenFile)
		}
		if err != nil {
			return nil, err
		}

		demands := make([]design.Demand, 0, len(requests))
		for i, r := range requests {
			d, err := r.Parse()
			if err != nil {
				return nil, fmt.Errorf("%s: request %d: %w", screenFile, i+1, err)
			}
			demands = append(demands, d)
		}
		return demands, nil
	}

	req := design.DefaultRequest()
	req.Span = screenSpan
	req.Loads = screenLoads
	req.LoadType = screenLoadType
	req.Code = screenCode
	if cmd.Flags().Changed("moment") {
		m := screenMoment
		req.Moment = &m
	}
	base, err := req.Parse()
	if err != nil {
		return nil, err
	}

	grades := steel.GradesFor(base.Code)
	if len(screenGrades) > 0 {
		grades = grades[:0]
		for _, name := range screenGrades {
			g, err := steel.LookupGrade(name)
			if err != nil {
				return nil, err
			}
			grades = append(grades, g)
		}
	}

	types := []section.Type{section.IBeam, section.Channel}
	if len(screenTypes) > 0 {
		types = types[:0]
		for _, name := range screenTypes {
			t, err := section.ParseType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}

	return design.Alternatives(base, grades, types), nil
}
