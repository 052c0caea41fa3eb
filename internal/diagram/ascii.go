package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// BeamDiagramData holds what the diagrams need from a design
type BeamDiagramData struct {
	Span       float64 // m
	Moment     float64 // kN-m
	Shear      float64 // kN
	Deflection float64 // mm
	LoadType   analysis.LoadType

	Section section.Properties

	// Check utilizations, in report order
	Utilizations []Utilization
}

// Utilization is the ratio of demand to capacity of one check
type Utilization struct {
	Check string
	Ratio float64
}

// Number of stations sampled along the span
const stationCount = 61

func stations(data BeamDiagramData) []analysis.Station {
	return analysis.Profile(data.Span, data.Moment, data.Deflection, data.LoadType, stationCount)
}

func series(data BeamDiagramData, pick func(analysis.Station) float64) []float64 {
	st := stations(data)
	out := make([]float64, len(st))
	for i, s := range st {
		out[i] = pick(s)
	}
	return out
}

func graph(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// DrawMomentDiagram plots M(x) along the span
func DrawMomentDiagram(data BeamDiagramData) string {
	m := series(data, func(s analysis.Station) float64 { return s.Moment })
	return graph(m, fmt.Sprintf("Bending moment (kN-m), max %.2f at midspan, L = %.2f m", data.Moment, data.Span))
}

// DrawShearDiagram plots V(x) along the span
func DrawShearDiagram(data BeamDiagramData) string {
	v := series(data, func(s analysis.Station) float64 { return s.Shear })
	return graph(v, fmt.Sprintf("Shear force (kN), max %.2f at supports", data.Shear))
}

// DrawDeflectionDiagram plots the deflected shape, sagging downward
func DrawDeflectionDiagram(data BeamDiagramData) string {
	d := series(data, func(s analysis.Station) float64 { return -s.Deflection })
	return graph(d, fmt.Sprintf("Deflection (mm), max %.2f at midspan", data.Deflection))
}

// DrawASCIISectionDiagram draws the cross-section to scale with its
// principal dimensions
func DrawASCIISectionDiagram(p section.Properties) string {
	var sb strings.Builder

	// terminal cells are about twice as tall as they are wide
	rows := 14
	cols := int(math.Round(2 * float64(rows) * p.Width / p.Height))
	cols = min(max(cols, 12), 48)

	outline := p.Outline()
	cellW := p.Width / float64(cols)
	cellH := p.Height / float64(rows)

	const sub = 4
	filled := func(r, c int) bool {
		// row 0 is the top of the section
		y0 := p.Height - float64(r+1)*cellH
		x0 := float64(c) * cellW
		for i := 0; i < sub; i++ {
			for j := 0; j < sub; j++ {
				x := x0 + (float64(j)+0.5)*cellW/sub
				y := y0 + (float64(i)+0.5)*cellH/sub
				if section.Contains(outline, x, y) {
					return true
				}
			}
		}
		return false
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s (%s)\n", p.Name, p.Type))
	sb.WriteString("  " + strings.Repeat("─", len(p.Name)+len(p.Type.String())+3) + "\n\n")

	sb.WriteString(fmt.Sprintf("   ◄%s►\n", centred(fmt.Sprintf(" b = %.0f ", p.Width), cols, '─')))
	for r := 0; r < rows; r++ {
		line := make([]rune, cols)
		for c := range line {
			line[c] = ' '
			if filled(r, c) {
				line[c] = '█'
			}
		}
		marker := "│"
		switch {
		case r == 0:
			marker = "┬"
		case r == rows-1:
			marker = "┴"
		}
		note := ""
		switch r {
		case 0:
			note = fmt.Sprintf("tf = %.0f mm", p.FlangeThickness)
		case rows / 2:
			note = fmt.Sprintf("h = %.0f mm", p.Height)
		case rows/2 + 1:
			note = fmt.Sprintf("tw = %.0f mm", p.WebThickness)
		}
		sb.WriteString(fmt.Sprintf("    %s  %s %s\n", string(line), marker, note))
	}
	sb.WriteString("\n")

	return sb.String()
}

func centred(label string, width int, fill rune) string {
	n := len([]rune(label))
	if n >= width {
		return label
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(fill), left) + label + strings.Repeat(string(fill), right)
}

// DrawUtilizationBars draws one bar per check against the 1.0 limit
func DrawUtilizationBars(items []Utilization) string {
	var sb strings.Builder

	const scale = 40 // characters per 1.0
	labelWidth := 0
	for _, it := range items {
		labelWidth = max(labelWidth, len(it.Check))
	}

	sb.WriteString("\n")
	sb.WriteString("  UTILIZATION (limit 1.00 at │)\n")
	sb.WriteString("  ────────────────────────────\n")
	for _, it := range items {
		n := int(math.Round(it.Ratio * scale))
		n = min(max(n, 0), 2*scale)

		bar := []rune(strings.Repeat("█", n) + strings.Repeat(" ", max(scale-n, 0)))
		if n <= scale {
			bar = append(bar[:scale], '│')
		} else {
			bar[scale] = '┃'
		}
		flag := ""
		if it.Ratio > 1.0 {
			flag = " ✗"
		}
		sb.WriteString(fmt.Sprintf("  %-*s %s %.2f%s\n", labelWidth, it.Check, string(bar), it.Ratio, flag))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := len([]rune(title))
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
