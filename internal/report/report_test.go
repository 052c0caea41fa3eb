package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/loads"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

func beamDocument(t *testing.T) Document {
	t.Helper()
	req := design.DefaultRequest()
	req.Span = 6
	req.Loads = []string{"8:kN/m:dead", "4:kN/m:live"}
	d, err := req.Parse()
	require.NoError(t, err)
	r, err := design.Run(d)
	require.NoError(t, err)
	return Document{
		Project: "Warehouse",
		Author:  "J. Engineer",
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Result:  r,
		Loads:   d.Loads,
	}
}

func purlinDocument(t *testing.T) Document {
	t.Helper()
	p, err := design.Purlin(loads.PurlinLoads{Dead: 2, Live: 3, Wind: 4, Maintenance: 1}, 5, design.DefaultPurlinOptions())
	require.NoError(t, err)
	return Document{Result: p.Design, Purlin: p}
}

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.xlsx")
	doc := beamDocument(t)
	require.NoError(t, WriteExcel(doc, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, InputsSheet, ResultsSheet}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Parameter", "Value", "Unit"}, rows[0])
	assert.Equal(t, []string{"Project", "Warehouse"}, rows[1])

	found := false
	for _, r := range rows {
		if len(r) > 1 && r[0] == "Selected Section" {
			assert.Equal(t, doc.Result.SectionProperties.Name, r[1])
			found = true
		}
	}
	assert.True(t, found)

	status, err := f.GetCellValue(ResultsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Moment Analysis", status)
}

func TestWriteExcel_Purlin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purlin.xlsx")
	require.NoError(t, WriteExcel(purlinDocument(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(CombinationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Dead + Live + Maintenance", rows[3][0])
	assert.Equal(t, "GOVERNS", rows[3][2])
}

func TestWriteExcel_NoResult(t *testing.T) {
	require.Error(t, WriteExcel(Document{}, filepath.Join(t.TempDir(), "x.xlsx")))
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	for name, doc := range map[string]Document{"beam": beamDocument(t), "purlin": purlinDocument(t)} {
		path := filepath.Join(dir, name+".pdf")
		require.NoError(t, WritePDF(doc, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	}
}

func TestImportRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demands.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Name", "Span", "Moment", "Loads", "Load Type", "Steel Grade", "Code", "Section Type", "Accessible"},
		{"B1", 6, 40, "", "", "", "", "", ""},
		{},
		{"", 4.5, "", "2:kN/m:dead; 150:kg/m:live", "uniform", "S355", "american", "channel", "no"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reqs, err := ImportRequests(path, nil)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "B1", reqs[0].Name)
	require.NotNil(t, reqs[0].Moment)
	assert.Equal(t, 40.0, *reqs[0].Moment)
	assert.Equal(t, "St37", reqs[0].Grade)

	assert.Equal(t, "Row 4", reqs[1].Name)
	assert.Equal(t, []string{"2:kN/m:dead", "150:kg/m:live"}, reqs[1].Loads)

	d, err := reqs[1].Parse()
	require.NoError(t, err)
	assert.Equal(t, steel.American, d.Code)
	assert.False(t, d.Deflection.Accessible)
}

func TestImportRequests_BadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Span", "Moment"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"six", 10}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ImportRequests(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteScreening(t *testing.T) {
	base := beamDocument(t)
	req := design.DefaultRequest()
	req.Span = 6
	m := 30.0
	req.Moment = &m
	d, err := req.Parse()
	require.NoError(t, err)

	outcomes := []design.Outcome{
		{Index: 0, Demand: d, Result: base.Result},
		{Index: 1, Demand: d, Err: steel.ErrUnknownSteelGrade},
	}
	path := filepath.Join(t.TempDir(), "screen.xlsx")
	require.NoError(t, WriteScreening(outcomes, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(ScreeningSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Error", rows[2][12])
}
