package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/diagram"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	safeText   = color.New(color.FgGreen, color.Bold).SprintFunc()
	unsafeText = color.New(color.FgRed, color.Bold).SprintFunc()
	noteText   = color.New(color.FgYellow).SprintFunc()
	headerText = color.New(color.FgCyan, color.Bold).SprintFunc()
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

func statusText(s check.Status) string {
	switch s {
	case check.Safe:
		return safeText(s.String() + " ✓")
	case check.Unsafe:
		return unsafeText(s.String() + " ✗")
	default:
		return noteText(s.String())
	}
}

// writeStructured prints v as JSON or YAML when one of those output
// formats is selected and reports whether it did
func writeStructured(v any) (bool, error) {
	switch strings.ToLower(outputFormat) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return true, enc.Encode(v)
	case "human", "text", "":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported output format %q (use human, json or yaml)", outputFormat)
	}
}

func printBanner(title string) {
	fmt.Println()
	fmt.Println(doubleRule)
	fmt.Printf("     %s\n", headerText(title))
	fmt.Println(doubleRule)
	fmt.Println()
}

func printHeading(heading string) {
	fmt.Println(heading)
	fmt.Println(singleRule)
}

func printDesignResult(r *design.Result) {
	p := r.SectionProperties

	printHeading("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(w, "  Member:\t%s\n", r.Name)
	}
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", r.Span)
	fmt.Fprintf(w, "  Load Type:\t%s\n", r.LoadType)
	fmt.Fprintf(w, "  Steel Grade:\t%s (fy = %.0f MPa)\n", r.SteelGrade, r.Fy)
	fmt.Fprintf(w, "  Design Code:\t%s (sf = %.2f)\n", r.Code.Title(), r.CapacityCheck.SafetyFactor)
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f kN-m\n", r.Moment)
	fmt.Fprintf(w, "  Shear Force (V):\t%.2f kN\n", r.Shear)
	w.Flush()
	fmt.Println()

	printHeading("SECTION:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Selected Section:\t%s (%s)\n", p.Name, p.Type)
	fmt.Fprintf(w, "  h x b x tw x tf:\t%.0f x %.0f x %.0f x %.0f mm\n", p.Height, p.Width, p.WebThickness, p.FlangeThickness)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", p.Area)
	fmt.Fprintf(w, "  Ix:\t%.4g mm⁴\n", p.Ix)
	fmt.Fprintf(w, "  Iy:\t%.4g mm⁴\n", p.Iy)
	fmt.Fprintf(w, "  J:\t%.4g mm⁴\n", p.J)
	fmt.Fprintf(w, "  Cw:\t%.4g mm⁶\n", p.Cw)
	fmt.Fprintf(w, "  Zx (provided):\t%.4g mm³\n", r.ProvidedSectionModulus)
	fmt.Fprintf(w, "  Zx (required):\t%.4g mm³\n", r.RequiredSectionModulus)
	w.Flush()
	fmt.Println()

	printHeading("DESIGN CHECKS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tDemand\tLimit\tRatio\tStatus\n")
	fmt.Fprintf(w, "  ─────\t──────\t─────\t─────\t──────\n")
	c := r.CapacityCheck
	fmt.Fprintf(w, "  Bending capacity\t%.2f kN-m\t%.2f kN-m\t%.3f\t%s\n", r.Moment, c.MomentCapacity, c.Utilization, statusText(c.Status))
	d := r.DeflectionCheck
	fmt.Fprintf(w, "  Deflection (%s)\t%.2f mm\t%.2f mm\t%.3f\t%s\n", d.LimitRatio, r.Deflection, d.AllowableDeflection, d.Utilization, statusText(d.Status))
	l := r.LTBCheck
	if l.Utilization != nil {
		fmt.Fprintf(w, "  Lateral-torsional buckling\t%.2f kN-m\t%.2f kN-m\t%.3f\t%s\n", r.Moment, l.DesignCapacity, *l.Utilization, statusText(l.Status))
	} else {
		fmt.Fprintf(w, "  Lateral-torsional buckling\t%.2f kN-m\t-\t-\t%s\n", r.Moment, statusText(l.Status))
	}
	w.Flush()
	if l.Note != "" {
		fmt.Printf("  %s\n", noteText(l.Note))
	}
	fmt.Println()

	printHeading("LOCAL BUCKLING:")
	cp := r.CompactnessCheck
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flange (b/2)/tf:\t%.2f\t≤ %.2f\t%s\n", cp.FlangeRatio, cp.FlangeCompactLimit, cp.FlangeStatus)
	fmt.Fprintf(w, "  Web hw/tw:\t%.2f\t≤ %.2f\t%s\n", cp.WebRatio, cp.WebCompactLimit, cp.WebStatus)
	fmt.Fprintf(w, "  Classification:\t%s\n", cp.Classification)
	w.Flush()
	fmt.Println()

	printHeading("DEFLECTION:")
	fmt.Printf("  %s\n", r.DeflectionFormula)
	fmt.Println()

	printHeading("DESIGN RESULT:")
	fmt.Print(diagram.DrawSummaryBox("DESIGN SUMMARY", []string{
		fmt.Sprintf("Section: %s", p.Name),
		fmt.Sprintf("Bending: %.1f%% utilized", c.Utilization*100),
		fmt.Sprintf("Deflection: %.1f%% of %s", d.Utilization*100, d.LimitRatio),
		fmt.Sprintf("Compactness: %s", cp.Classification),
	}))
	fmt.Println()
	fmt.Printf("  Overall Status: %s\n", statusText(r.OverallStatus))
	fmt.Println()
}

func printCombinations(pr *design.PurlinResult) {
	printHeading("LOAD COMBINATIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination\tM (kN-m)\n")
	fmt.Fprintf(w, "  ───────────\t────────\n")
	for _, c := range pr.Critical.Combinations {
		marker := ""
		if c.Case == pr.Critical.Case {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%.2f%s\n", c.Case, c.Moment, marker)
	}
	w.Flush()
	fmt.Println()
}
