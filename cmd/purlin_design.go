package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/loads"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
	"github.com/alexiusacademia/gosteel/internal/units"
)

var (
	// Unfactored loads
	purlinDead        float64
	purlinLive        float64
	purlinWind        float64
	purlinMaintenance float64
	purlinUnit        string
	purlinLoads       []string
	purlinSpan        float64

	// Area loads (kN/m²) over the purlin spacing
	purlinLivePressure float64
	purlinWindPressure float64
	purlinSpacing      float64

	purlinOpts designOptions
)

var purlinDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a roof purlin for the governing load combination",
	Long: `Evaluate the purlin load combinations and design a section for the
one giving the largest moment:

  1  Dead + Live
  2  Dead + Wind (upward)
  3  Dead + Live + Maintenance
  4  Maintenance (point load at midspan)

Dead, live and wind loads are line loads in --unit (kN/m, kg/m or N/m).
The maintenance load is read in the matching force unit (kN, kg or N) for
the point case. Loads may also be given as --load value[:unit[:kind]]
where kind is dead, live, wind or maintenance; the maintenance load takes
a force unit and the others a per-length unit. Roof live load and wind
pressure in kN/m² are converted to line loads with --spacing.

Examples:
  # Dead 0.5 kN/m, live 0.6 kN/m, 100 kg maintenance load over 5 m
  gosteel purlin design --span 5 --dead 0.5 --live 0.6 --maintenance 0.981

  # Loads in kg/m with a wind uplift
  gosteel purlin design --span 6 --unit kg/m --dead 40 --live 60 --wind 90 --maintenance 100

  # Area loads over a 1.5 m purlin spacing
  gosteel purlin design --span 6 --dead 0.3 --live-pressure 0.6 --wind-pressure 0.8 --spacing 1.5

  # Show all combinations as JSON
  gosteel purlin design --span 5 --dead 0.5 --live 0.6 -o json`,
	Run: runPurlinDesign,
}

func init() {
	purlinCmd.AddCommand(purlinDesignCmd)

	purlinDesignCmd.Flags().Float64Var(&purlinSpan, "span", 0, "Purlin span (m) [required]")
	purlinDesignCmd.Flags().Float64VarP(&purlinDead, "dead", "d", 0, "Dead load")
	purlinDesignCmd.Flags().Float64VarP(&purlinLive, "live", "L", 0, "Live load")
	purlinDesignCmd.Flags().Float64VarP(&purlinWind, "wind", "w", 0, "Wind uplift load (positive upward)")
	purlinDesignCmd.Flags().Float64Var(&purlinMaintenance, "maintenance", steel.DefaultMaintenanceLoadKg*steel.KgToKN, "Maintenance load")
	purlinDesignCmd.Flags().StringVarP(&purlinUnit, "unit", "u", string(units.KNM), "Unit of the line loads (kN/m, kg/m, N/m)")
	purlinDesignCmd.Flags().StringArrayVarP(&purlinLoads, "load", "l", nil, "Additional load value[:unit[:kind]] (repeatable)")
	purlinDesignCmd.Flags().Float64Var(&purlinLivePressure, "live-pressure", 0, "Roof live load (kN/m²), needs --spacing")
	purlinDesignCmd.Flags().Float64Var(&purlinWindPressure, "wind-pressure", 0, "Wind uplift pressure (kN/m²), needs --spacing")
	purlinDesignCmd.Flags().Float64Var(&purlinSpacing, "spacing", 0, "Purlin spacing (m)")

	purlinDesignCmd.MarkFlagRequired("span")

	purlinOpts.register(purlinDesignCmd, section.Channel.String())
}

// purlinLoadInput is the raw load flags of purlin design
type purlinLoadInput struct {
	dead, live, wind float64
	unit             string
	maintenance      float64
	maintenanceSet   bool // otherwise maintenance is already in kN
	components       []string

	livePressure, windPressure, spacing float64
}

// resolve converts the inputs to kN/m line loads and a kN point load
func (in purlinLoadInput) resolve(span float64) (loads.PurlinLoads, []loads.LoadComponent, error) {
	lineUnit, err := units.ParseUnit(in.unit)
	if err != nil {
		return loads.PurlinLoads{}, nil, err
	}
	if !lineUnit.PerLength() {
		return loads.PurlinLoads{}, nil, fmt.Errorf("--unit must be a per-length unit, got %s", lineUnit)
	}

	maintenance := in.maintenance
	if in.maintenanceSet {
		if maintenance, err = units.Convert(in.maintenance, strings.TrimSuffix(string(lineUnit), "/m")); err != nil {
			return loads.PurlinLoads{}, nil, err
		}
	}

	components := []loads.LoadComponent{}
	for _, s := range in.components {
		c, err := loads.ParseComponent(s)
		if err != nil {
			return loads.PurlinLoads{}, nil, err
		}
		components = append(components, c)
	}
	extra, err := loads.PurlinTotals(components)
	if err != nil {
		return loads.PurlinLoads{}, nil, err
	}

	l := loads.PurlinLoads{
		Dead:        units.ToKN(in.dead, lineUnit) + extra.Dead,
		Live:        units.ToKN(in.live, lineUnit) + extra.Live,
		Wind:        units.ToKN(in.wind, lineUnit) + extra.Wind,
		Maintenance: maintenance + extra.Maintenance,
	}

	if in.livePressure != 0 || in.windPressure != 0 {
		if !(in.spacing > 0) || !(span > 0) {
			return loads.PurlinLoads{}, nil, fmt.Errorf("--spacing and --span must be positive to use area loads")
		}
		// strip total spread back over the span
		l.Live += loads.LiveLoad(span, in.livePressure, in.spacing) / span
		l.Wind += loads.WindLoad(in.windPressure, in.spacing)
	}
	return l, components, nil
}

func runPurlinDesign(cmd *cobra.Command, args []string) {
	in := purlinLoadInput{
		dead:           purlinDead,
		live:           purlinLive,
		wind:           purlinWind,
		unit:           purlinUnit,
		maintenance:    purlinMaintenance,
		maintenanceSet: cmd.Flags().Changed("maintenance"),
		components:     purlinLoads,
		livePressure:   purlinLivePressure,
		windPressure:   purlinWindPressure,
		spacing:        purlinSpacing,
	}
	l, components, err := in.resolve(purlinSpan)
	if err != nil {
		exitWithError(err)
	}

	opts := design.PurlinOptions{Name: purlinOpts.name}
	if opts.Grade, err = steel.LookupGrade(purlinOpts.grade); err != nil {
		exitWithError(err)
	}
	if opts.Code, err = steel.ParseCode(purlinOpts.code); err != nil {
		exitWithError(err)
	}
	if opts.SectionType, err = section.ParseType(purlinOpts.sectionType); err != nil {
		exitWithError(err)
	}
	if cmd.Flags().Changed("category") || cmd.Flags().Changed("accessible") {
		c := check.Criteria{Category: check.Roof, Accessible: purlinOpts.accessible}
		if purlinOpts.category != "" {
			if c.Category, err = check.ParseCategory(purlinOpts.category); err != nil {
				exitWithError(err)
			}
		}
		opts.Deflection = &c
	}

	pr, err := design.Purlin(l, purlinSpan, opts)
	if err != nil {
		exitWithError(err)
	}

	log.WithFields(logrus.Fields{
		"governing": pr.Critical.Case,
		"moment":    pr.Critical.Moment,
		"section":   pr.Design.SectionProperties.Name,
		"status":    pr.Design.OverallStatus.String(),
	}).Info("purlin designed")

	structured, err := writeStructured(pr)
	if err != nil {
		exitWithError(err)
	}
	if !structured {
		printBanner(fmt.Sprintf("ROOF PURLIN DESIGN - %s CODE", strings.ToUpper(opts.Code.Title())))

		printHeading("UNFACTORED LOADS:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Dead Load (D):\t%.3f kN/m\t%.2f kN on span\n", l.Dead, loads.DeadLoad(purlinSpan, l.Dead))
		fmt.Fprintf(w, "  Live Load (L):\t%.3f kN/m\n", l.Live)
		fmt.Fprintf(w, "  Wind Uplift (W):\t%.3f kN/m\n", l.Wind)
		fmt.Fprintf(w, "  Maintenance (P):\t%.3f kN\n", l.Maintenance)
		w.Flush()
		fmt.Println()

		printCombinations(pr)
		fmt.Printf("  Governing Combination: %s\n", pr.Critical.Case)
		fmt.Println()
		printDesignResult(pr.Design)
	}

	purlinOpts.finish("purlin", pr.Design, components, pr, !structured)
}
