package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosteel/internal/design"
)

// Sheet names of the design workbook
const (
	SummarySheet      = "Summary"
	InputsSheet       = "Inputs"
	ResultsSheet      = "Results"
	CombinationsSheet = "Combinations"
	ScreeningSheet    = "Screening"
)

type styles struct {
	header  int
	section int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D7E4BC"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return styles{}, err
	}
	section, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return styles{}, err
	}
	return styles{header: header, section: section}, nil
}

// writeTable writes a header row followed by rows starting at A1
func writeTable(f *excelize.File, sheet string, st styles, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

func tableRows(rows []row) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{r.label, r.value, r.unit}
	}
	return out
}

// WriteExcel saves the design as a workbook with Summary, Inputs and
// Results sheets, plus the load combinations of a purlin
func WriteExcel(doc Document, path string) error {
	if doc.Result == nil {
		return fmt.Errorf("report: no design result")
	}

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	summary := make([][]any, 0, 20)
	if doc.Project != "" {
		summary = append(summary, []any{"Project", doc.Project})
	}
	if doc.Author != "" {
		summary = append(summary, []any{"Author", doc.Author})
	}
	summary = append(summary, []any{"Date", doc.date().Format("02 Jan 2006")})
	for _, r := range doc.summaryRows() {
		summary = append(summary, []any{r.label, r.value, r.unit})
	}
	if err := writeTable(f, SummarySheet, st, []any{"Parameter", "Value", "Unit"}, summary); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 20); err != nil {
		return err
	}

	if _, err := f.NewSheet(InputsSheet); err != nil {
		return err
	}
	if err := writeTable(f, InputsSheet, st, []any{"Input Parameter", "Value", "Unit"}, tableRows(doc.inputRows())); err != nil {
		return err
	}
	if err := f.SetColWidth(InputsSheet, "A", "A", 25); err != nil {
		return err
	}

	if _, err := f.NewSheet(ResultsSheet); err != nil {
		return err
	}
	if err := writeResults(f, st, doc); err != nil {
		return err
	}

	if doc.Purlin != nil {
		if _, err := f.NewSheet(CombinationsSheet); err != nil {
			return err
		}
		var rows [][]any
		for _, c := range doc.Purlin.Critical.Combinations {
			governs := ""
			if c.Case == doc.Purlin.Critical.Case {
				governs = "GOVERNS"
			}
			rows = append(rows, []any{c.Case, c.Moment, governs})
		}
		if err := writeTable(f, CombinationsSheet, st, []any{"Combination", "Moment (kN·m)", ""}, rows); err != nil {
			return err
		}
		if err := f.SetColWidth(CombinationsSheet, "A", "A", 30); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeResults(f *excelize.File, st styles, doc Document) error {
	r := 1
	for gi, g := range doc.resultGroups() {
		if gi > 0 {
			r++ // blank spacer row
		}
		a, _ := excelize.CoordinatesToCellName(1, r)
		c, _ := excelize.CoordinatesToCellName(3, r)
		if err := f.SetCellValue(ResultsSheet, a, g.heading); err != nil {
			return err
		}
		if err := f.SetCellStyle(ResultsSheet, a, c, st.section); err != nil {
			return err
		}
		r++
		for _, row := range g.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r)
			values := []any{row.label, row.value, row.unit}
			if err := f.SetSheetRow(ResultsSheet, cell, &values); err != nil {
				return err
			}
			r++
		}
	}

	if err := f.SetColWidth(ResultsSheet, "A", "A", 34); err != nil {
		return err
	}
	if err := f.SetColWidth(ResultsSheet, "B", "B", 20); err != nil {
		return err
	}
	return f.SetColWidth(ResultsSheet, "C", "C", 10)
}

// WriteScreening saves screening outcomes as one row per alternative
func WriteScreening(outcomes []design.Outcome, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}
	if err := f.SetSheetName("Sheet1", ScreeningSheet); err != nil {
		return err
	}

	header := []any{"#", "Name", "Grade", "Code", "Section", "Area (mm²)", "Zreq (mm³)", "Zx (mm³)",
		"Capacity", "Deflection", "LTB", "Compactness", "Status", "Error"}
	rows := make([][]any, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			rows = append(rows, []any{o.Index + 1, o.Demand.Name, o.Demand.Grade.Name, o.Demand.Code.Title(),
				o.Demand.SectionType.String(), "", "", "", "", "", "", "", "Error", o.Err.Error()})
			continue
		}
		r := o.Result
		ltb := any(r.LTBCheck.Status.String())
		if r.LTBCheck.Utilization != nil {
			ltb = *r.LTBCheck.Utilization
		}
		rows = append(rows, []any{o.Index + 1, r.Name, r.SteelGrade, r.Code.Title(), r.SectionProperties.Name,
			r.SectionProperties.Area, r.RequiredSectionModulus, r.ProvidedSectionModulus,
			r.CapacityCheck.Utilization, r.DeflectionCheck.Utilization, ltb,
			r.CompactnessCheck.Classification.String(), r.OverallStatus.String(), ""})
	}
	if err := writeTable(f, ScreeningSheet, st, header, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(ScreeningSheet, "B", "E", 16); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// Columns recognised by ImportRequests, matched case-insensitively against
// the header row
var importColumns = []string{
	"name", "span", "moment", "loads", "load_type", "steel_grade",
	"code", "section_type", "category", "accessible",
}

// ImportRequests reads design requests from the first sheet of a workbook.
// The first row names the columns; blank rows are skipped and blank cells
// keep the defaults of design.DefaultRequest. Loads are written as
// "value[:unit[:kind]]" separated by ';'.
func ImportRequests(path string, log logrus.FieldLogger) ([]design.Request, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no data rows", path, sheet)
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		index[key] = i
	}
	if _, ok := index["span"]; !ok {
		return nil, fmt.Errorf("%s: missing required column %q (known: %s)", path, "span", strings.Join(importColumns, ", "))
	}

	var requests []design.Request
	for n, cells := range rows[1:] {
		rowNum := n + 2
		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[i])
		}

		if strings.Join(cells, "") == "" {
			log.WithField("row", rowNum).Debug("skipping blank row")
			continue
		}

		r, err := requestFromRow(cell)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, rowNum, err)
		}
		if r.Name == "" {
			r.Name = fmt.Sprintf("Row %d", rowNum)
		}
		requests = append(requests, r)
	}

	log.WithFields(logrus.Fields{"file": path, "sheet": sheet, "requests": len(requests)}).Debug("imported requests")
	return requests, nil
}

func requestFromRow(cell func(string) string) (design.Request, error) {
	r := design.DefaultRequest()
	r.Name = cell("name")

	span, err := strconv.ParseFloat(cell("span"), 64)
	if err != nil {
		return r, fmt.Errorf("span: %w", err)
	}
	r.Span = span

	if s := cell("moment"); s != "" {
		m, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r, fmt.Errorf("moment: %w", err)
		}
		r.Moment = &m
	}
	if s := cell("loads"); s != "" {
		for _, part := range strings.Split(s, ";") {
			if part = strings.TrimSpace(part); part != "" {
				r.Loads = append(r.Loads, part)
			}
		}
	}

	set := func(dst *string, col string) {
		if s := cell(col); s != "" {
			*dst = s
		}
	}
	set(&r.LoadType, "load_type")
	set(&r.Grade, "steel_grade")
	set(&r.Code, "code")
	set(&r.SectionType, "section_type")
	set(&r.Category, "category")

	if s := cell("accessible"); s != "" {
		switch strings.ToLower(s) {
		case "yes", "y", "true", "1":
			v := true
			r.Accessible = &v
		case "no", "n", "false", "0":
			v := false
			r.Accessible = &v
		default:
			return r, fmt.Errorf("accessible: %q is not yes or no", s)
		}
	}
	return r, nil
}
