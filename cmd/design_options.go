package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/loads"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/alexiusacademia/gosteel/internal/store"
)

// designOptions are the flags shared by the beam and purlin design commands
type designOptions struct {
	name        string
	grade       string
	code        string
	sectionType string
	sectionFile string
	category    string
	accessible  bool

	showDiagram bool
	exportFile  string
	reportFile  string
	record      bool
	project     string
	author      string
}

func (o *designOptions) register(cmd *cobra.Command, defaultSection string) {
	f := cmd.Flags()
	f.StringVarP(&o.name, "name", "n", "", "Member mark shown in reports")
	f.StringVarP(&o.grade, "grade", "g", cfg.Grade, "Steel grade (St37, St44, St52, A36, A572, S355, ...)")
	f.StringVarP(&o.code, "code", "c", cfg.Code, "Design code (egyptian, american)")
	f.StringVar(&o.sectionType, "section", defaultSection, "Section type (I-Beam, Channel)")
	f.StringVar(&o.sectionFile, "section-file", "", "Check a given section from a JSON or YAML file instead of sizing one")
	f.StringVar(&o.category, "category", "", "Deflection category (floor, roof); default depends on load type")
	f.BoolVar(&o.accessible, "accessible", true, "Member is accessible (stricter L/360 deflection limit)")

	f.BoolVar(&o.showDiagram, "diagram", false, "Show ASCII moment, shear, deflection and section diagrams")
	f.StringVar(&o.exportFile, "export", "", "Export diagrams to file (png, svg, pdf); suffixes are added per diagram")
	f.StringVar(&o.reportFile, "report", "", "Write a calculation report (xlsx or pdf)")
	f.BoolVar(&o.record, "record", false, "Record the design in the history database")
	f.StringVar(&o.project, "project", cfg.Project, "Project name for reports and history")
	f.StringVar(&o.author, "author", cfg.Author, "Author shown in reports")
}

// apply copies the shared flags onto a request
func (o *designOptions) apply(r *design.Request) {
	r.Name = o.name
	r.Grade = o.grade
	r.Code = o.code
	r.SectionType = o.sectionType
	r.Category = o.category
	accessible := o.accessible
	r.Accessible = &accessible
}

// diagramData collects what the diagrams need from a result
func diagramData(r *design.Result) diagram.BeamDiagramData {
	data := diagram.BeamDiagramData{
		Span:       r.Span,
		Moment:     r.Moment,
		Shear:      r.Shear,
		Deflection: r.Deflection,
		LoadType:   r.LoadType,
		Section:    r.SectionProperties,
		Utilizations: []diagram.Utilization{
			{Check: "Bending", Ratio: r.CapacityCheck.Utilization},
			{Check: "Deflection", Ratio: r.DeflectionCheck.Utilization},
		},
	}
	if u := r.LTBCheck.Utilization; u != nil {
		data.Utilizations = append(data.Utilizations, diagram.Utilization{Check: "LTB", Ratio: *u})
	}
	return data
}

func printDiagrams(r *design.Result) {
	data := diagramData(r)
	fmt.Println(diagram.DrawMomentDiagram(data))
	fmt.Println()
	fmt.Println(diagram.DrawShearDiagram(data))
	fmt.Println()
	fmt.Println(diagram.DrawDeflectionDiagram(data))
	fmt.Println(diagram.DrawASCIISectionDiagram(r.SectionProperties))
	fmt.Println(diagram.DrawUtilizationBars(data.Utilizations))
}

// finish runs the optional outputs after a design: diagrams, exported
// images, a report and a history record
func (o *designOptions) finish(kind string, r *design.Result, components []loads.LoadComponent, purlin *design.PurlinResult, human bool) {
	if o.showDiagram && human {
		printDiagrams(r)
	}

	var files []string
	if o.exportFile != "" {
		ext := strings.TrimPrefix(filepath.Ext(o.exportFile), ".")
		if ext == "" {
			ext = "png"
		}
		base := strings.TrimSuffix(o.exportFile, filepath.Ext(o.exportFile))
		var err error
		files, err = diagram.ExportAll(diagramData(r), base, ext)
		if err != nil {
			log.WithError(err).Error("exporting diagrams")
			fmt.Printf("Error exporting diagrams: %v\n", err)
		} else if human {
			for _, f := range files {
				fmt.Printf("Diagram exported to: %s\n", f)
			}
		}
	}

	if o.reportFile != "" {
		doc := report.Document{
			Project: o.project,
			Author:  o.author,
			Result:  r,
			Loads:   components,
			Purlin:  purlin,
		}
		for _, f := range files {
			// gofpdf embeds raster images only
			if strings.EqualFold(filepath.Ext(f), ".png") {
				doc.Diagrams = append(doc.Diagrams, report.Diagram{Caption: diagramCaption(f), File: f})
			}
		}
		if err := writeReport(doc, o.reportFile); err != nil {
			log.WithError(err).WithField("file", o.reportFile).Error("writing report")
			fmt.Printf("Error writing report: %v\n", err)
		} else if human {
			fmt.Printf("Report written to: %s\n", o.reportFile)
		}
	}

	if o.record {
		id, err := recordDesign(kind, o.project, r)
		if err != nil {
			log.WithError(err).Error("recording design")
			fmt.Printf("Error recording design: %v\n", err)
		} else if human {
			fmt.Printf("Design recorded as %s\n", id)
		}
	}
}

func diagramCaption(file string) string {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	switch {
	case strings.HasSuffix(name, "-moment"):
		return "Bending Moment Diagram"
	case strings.HasSuffix(name, "-shear"):
		return "Shear Force Diagram"
	case strings.HasSuffix(name, "-deflection"):
		return "Deflected Shape"
	case strings.HasSuffix(name, "-section"):
		return "Cross-Section"
	case strings.HasSuffix(name, "-utilization"):
		return "Check Utilization"
	}
	return name
}

func writeReport(doc report.Document, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return report.WriteExcel(doc, path)
	case ".pdf":
		return report.WritePDF(doc, path)
	default:
		return fmt.Errorf("unsupported report format %q (use .xlsx or .pdf)", filepath.Ext(path))
	}
}

func recordDesign(kind, project string, r *design.Result) (string, error) {
	db, err := store.NewDB(cfg.HistoryDB)
	if err != nil {
		return "", err
	}
	defer db.Close()

	rec, err := store.NewRecord(kind, project, r)
	if err != nil {
		return "", err
	}
	repo := &store.DesignRepo{}
	if err := repo.Insert(context.Background(), db, rec); err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{"id": rec.ID, "section": rec.SectionName, "db": cfg.HistoryDB}).Info("design recorded")
	return rec.ID, nil
}
