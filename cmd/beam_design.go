package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/section"
)

var (
	// Demand inputs
	beamSpan       float64
	beamMoment     float64
	beamLoads      []string
	beamLoadType   string
	beamElasticity float64

	beamOpts designOptions
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a simply supported steel floor beam",
	Long: `Size an I-beam or channel for a simply supported floor beam and check
it for bending capacity, deflection, local buckling and lateral-torsional
buckling.

The design moment is given directly with --moment, or computed from one
or more --load values written as value[:unit[:kind]]. Units are kN, kg
and N for a point load or kN/m, kg/m and N/m for a uniform load.

Examples:
  # Size a 6 m beam for M = 50 kN-m
  gosteel beam design --span 6 --moment 50

  # From loads, St52 to the American code
  gosteel beam design --span 6 -l 8:kN/m:dead -l 5:kN/m:live --grade St52 --code american

  # Midspan point load with diagrams and a PDF report
  gosteel beam design --span 4 -l 2000:kg --load-type point --diagram --export out/b1.png --report b1.pdf

  # Check a given section
  gosteel beam design --span 5 --moment 40 --section-file ipe240.yaml`,
	Run: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	beamDesignCmd.Flags().Float64Var(&beamSpan, "span", 0, "Beam span (m) [required]")
	beamDesignCmd.Flags().Float64VarP(&beamMoment, "moment", "m", 0, "Design moment (kN-m)")
	beamDesignCmd.Flags().StringArrayVarP(&beamLoads, "load", "l", nil, "Applied load value[:unit[:kind]] (repeatable)")
	beamDesignCmd.Flags().StringVarP(&beamLoadType, "load-type", "t", design.DefaultLoadType, "Load type (uniform, point)")
	beamDesignCmd.Flags().Float64Var(&beamElasticity, "elasticity", 0, "Modulus of elasticity (MPa), default 200000")

	beamDesignCmd.MarkFlagRequired("span")

	beamOpts.register(beamDesignCmd, cfg.SectionType)
}

func runBeamDesign(cmd *cobra.Command, args []string) {
	req := design.DefaultRequest()
	beamOpts.apply(&req)
	req.Span = beamSpan
	req.Loads = beamLoads
	req.LoadType = beamLoadType
	req.Elasticity = beamElasticity
	if cmd.Flags().Changed("moment") {
		m := beamMoment
		req.Moment = &m
	}

	d, err := req.Parse()
	if err != nil {
		exitWithError(err)
	}

	var result *design.Result
	if beamOpts.sectionFile != "" {
		props, err := section.LoadFromFile(beamOpts.sectionFile)
		if err != nil {
			exitWithError(err)
		}
		result, err = design.Check(d, props)
		if err != nil {
			exitWithError(err)
		}
	} else {
		result, err = design.Run(d)
		if err != nil {
			exitWithError(err)
		}
	}

	log.WithFields(logrus.Fields{
		"section": result.SectionProperties.Name,
		"moment":  result.Moment,
		"status":  result.OverallStatus.String(),
	}).Info("beam designed")

	structured, err := writeStructured(result)
	if err != nil {
		exitWithError(err)
	}
	if !structured {
		printBanner(fmt.Sprintf("STEEL FLOOR BEAM DESIGN - %s CODE", strings.ToUpper(result.Code.Title())))
		printDesignResult(result)
	}

	beamOpts.finish("beam", result, d.Loads, nil, !structured)
}
