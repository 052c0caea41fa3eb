package report

import (
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosteel/internal/check"
)

// core fonts are cp1252; superscripts beyond ³ have no glyph
var superscripts = strings.NewReplacer("⁴", "^4", "⁶", "^6", "≤", "<=")

const (
	pageMargin = 20.0 // mm
	labelWidth = 75.0
	valueWidth = 60.0
	unitWidth  = 25.0
	rowHeight  = 7.0
)

// WritePDF saves the design as an A4 calculation report: design details,
// results grouped as in the workbook, and any diagrams
func WritePDF(doc Document, path string) error {
	if doc.Result == nil {
		return fmt.Errorf("report: no design result")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(superscripts.Replace(s)) }

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text(doc.title()), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, doc.date().Format("02 Jan 2006"), "B", 1, "C", false, 0, "")
	pdf.Ln(6)

	heading := func(s string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetFillColor(79, 129, 189)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(labelWidth+valueWidth+unitWidth, 8, text(s), "1", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	table := func(rows []row) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, r := range rows {
			pdf.CellFormat(labelWidth, rowHeight, text(r.label), "1", 0, "L", true, 0, "")
			pdf.CellFormat(valueWidth, rowHeight, text(formatValue(r.value)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(unitWidth, rowHeight, text(r.unit), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(5)
	}

	details := []row{}
	if doc.Project != "" {
		details = append(details, row{"Project", doc.Project, ""})
	}
	if doc.Author != "" {
		details = append(details, row{"Prepared by", doc.Author, ""})
	}
	details = append(details, row{"Design Type", doc.Kind(), ""})
	details = append(details, doc.inputRows()...)
	heading("Design Details")
	table(details)

	if doc.Purlin != nil {
		heading("Load Combinations")
		var rows []row
		for _, c := range doc.Purlin.Critical.Combinations {
			label := c.Case
			if c.Case == doc.Purlin.Critical.Case {
				label += " (governs)"
			}
			rows = append(rows, row{label, c.Moment, "kN·m"})
		}
		table(rows)
	}

	for _, g := range doc.resultGroups() {
		heading(g.heading)
		table(g.rows)
	}

	if len(doc.Diagrams) > 0 {
		pdf.AddPage()
		heading("Diagrams")
		pdf.Ln(2)
		for _, d := range doc.Diagrams {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, text(d.Caption), "", 1, "L", false, 0, "")
			pdf.ImageOptions(d.File, pageMargin, pdf.GetY(), 150, 0, true, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(4)
		}
	}

	// Verdict
	pdf.SetFont("Helvetica", "B", 14)
	if doc.Result.OverallStatus == check.Safe {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(192, 0, 0)
	}
	pdf.CellFormat(0, 10, "Overall Design Status: "+doc.Result.OverallStatus.String(), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return pdf.OutputFileAndClose(path)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		switch {
		case x == 0:
			return "0"
		case x >= 1e5 || x <= -1e5:
			return fmt.Sprintf("%.4g", x)
		default:
			return fmt.Sprintf("%.3f", x)
		}
	default:
		return fmt.Sprint(v)
	}
}
