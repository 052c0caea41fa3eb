package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/section"
)

func sampleData(t *testing.T, lt analysis.LoadType) BeamDiagramData {
	t.Helper()
	props, err := section.Build(section.IBeam, 300, 150, 7, 11)
	require.NoError(t, err)
	return BeamDiagramData{
		Span:       6,
		Moment:     54,
		Shear:      36,
		Deflection: 12.1,
		LoadType:   lt,
		Section:    props,
		Utilizations: []Utilization{
			{Check: "Capacity", Ratio: 0.82},
			{Check: "Deflection", Ratio: 1.12},
			{Check: "LTB", Ratio: 0.4},
		},
	}
}

func TestDrawCurves(t *testing.T) {
	for _, lt := range []analysis.LoadType{analysis.Uniform, analysis.PointCenter} {
		data := sampleData(t, lt)

		m := DrawMomentDiagram(data)
		assert.Contains(t, m, "Bending moment")
		assert.Contains(t, m, "54.00")

		assert.Contains(t, DrawShearDiagram(data), "Shear force")
		assert.Contains(t, DrawDeflectionDiagram(data), "-12.10")
	}
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	for _, typ := range []section.Type{section.IBeam, section.Channel} {
		props, err := section.Build(typ, 200, 100, 6, 10)
		require.NoError(t, err)

		out := DrawASCIISectionDiagram(props)
		assert.Contains(t, out, props.Name)
		assert.Contains(t, out, "h = 200 mm")
		assert.Contains(t, out, "b = 100")

		var body []string
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, "┬") || strings.Contains(line, "┴") || strings.Contains(line, "│") {
				body = append(body, line)
			}
		}
		require.Len(t, body, 14)

		// flanges are drawn full width, the web row is mostly empty
		top := strings.Count(body[0], "█")
		mid := strings.Count(body[7], "█")
		assert.Greater(t, top, mid)
		assert.Positive(t, mid)
	}
}

func TestDrawUtilizationBars(t *testing.T) {
	out := DrawUtilizationBars(sampleData(t, analysis.Uniform).Utilizations)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "0.82")
	assert.NotContains(t, lines[2], "✗")
	assert.Contains(t, lines[3], "1.12 ✗")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Section: I-300x150x7x11", "Status: Safe"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t, analysis.Uniform)

	files, err := ExportAll(data, filepath.Join(dir, "out", "beam"), "svg")
	require.NoError(t, err)
	require.Len(t, files, 5)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err, f)
		assert.Positive(t, info.Size())
		assert.Equal(t, ".svg", filepath.Ext(f))
	}
}

func TestExportSectionProfile_PNG(t *testing.T) {
	dir := t.TempDir()
	props, err := section.Build(section.Channel, 160, 65, 5, 7)
	require.NoError(t, err)

	require.NoError(t, ExportSectionProfile(props, filepath.Join(dir, "c.png")))
	_, err = os.Stat(filepath.Join(dir, "c.png"))
	require.NoError(t, err)

	// unknown extensions fall back to PNG
	require.NoError(t, ExportSectionProfile(props, filepath.Join(dir, "c.img")))
	_, err = os.Stat(filepath.Join(dir, "c.img.png"))
	require.NoError(t, err)
}
