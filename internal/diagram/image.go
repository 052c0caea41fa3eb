package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/section"
)

var (
	momentColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	shearColor      = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	deflectionColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	sectionFill     = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	sectionEdge     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportMomentDiagram exports the bending moment diagram to an image file
func ExportMomentDiagram(data BeamDiagramData, filename string) error {
	return exportCurve(data, "Moment Diagram", "Moment (kN-m)", momentColor, filename,
		func(s analysis.Station) float64 { return s.Moment })
}

// ExportShearDiagram exports the shear force diagram to an image file
func ExportShearDiagram(data BeamDiagramData, filename string) error {
	return exportCurve(data, "Shear Force Diagram", "Shear (kN)", shearColor, filename,
		func(s analysis.Station) float64 { return s.Shear })
}

// ExportDeflectionDiagram exports the deflected shape to an image file
func ExportDeflectionDiagram(data BeamDiagramData, filename string) error {
	return exportCurve(data, "Deflection Diagram", "Deflection (mm)", deflectionColor, filename,
		func(s analysis.Station) float64 { return -s.Deflection })
}

func exportCurve(data BeamDiagramData, title, ylabel string, c color.Color, filename string, pick func(analysis.Station) float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along span (m)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	st := stations(data)
	pts := make(plotter.XYs, 0, len(st)+2)
	pts = append(pts, plotter.XY{X: 0, Y: 0})
	for _, s := range st {
		pts = append(pts, plotter.XY{X: s.X, Y: pick(s)})
	}
	pts = append(pts, plotter.XY{X: data.Span, Y: 0})

	area, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	r, g, b, _ := c.RGBA()
	area.Color = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 70}
	area.LineStyle.Width = 0
	p.Add(area)

	curve, err := plotter.NewLine(pts[1 : len(pts)-1])
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = c
	p.Add(curve)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: data.Span, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Supports
	supports, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}, {X: data.Span, Y: 0}})
	if err != nil {
		return err
	}
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	supports.GlyphStyle.Radius = vg.Points(6)
	supports.GlyphStyle.Color = color.Black
	p.Add(supports)

	// Peak annotation
	peakIdx := 0
	for i, s := range st {
		if math.Abs(pick(s)) > math.Abs(pick(st[peakIdx])) {
			peakIdx = i
		}
	}
	peak := st[peakIdx]
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: peak.X, Y: pick(peak)}},
		Labels: []string{fmt.Sprintf("%.2f", math.Abs(pick(peak)))},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportSectionProfile exports the cross-section drawing to an image file
func ExportSectionProfile(props section.Properties, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Section Profile (%s)", props.Type, props.Name)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := props.Outline()
	pts := make(plotter.XYs, len(outline))
	for i, v := range outline {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}

	shape, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	shape.Color = sectionFill
	shape.LineStyle.Color = sectionEdge
	shape.LineStyle.Width = vg.Points(2)
	p.Add(shape)

	// Centroidal axes
	_, cx, cy := section.PolygonArea(outline)
	minX, maxX, minY, maxY := section.Bounds(outline)
	for _, xys := range []plotter.XYs{
		{{X: minX - 20, Y: cy}, {X: maxX + 20, Y: cy}},
		{{X: cx, Y: minY - 20}, {X: cx, Y: maxY + 20}},
	} {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = color.RGBA{R: 255, A: 255}
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
	}

	annotations := []struct {
		x, y float64
		text string
	}{
		{maxX + 25, cy, "x"},
		{cx, maxY + 25, "y"},
		{(minX + maxX) / 2, minY - 30, fmt.Sprintf("b = %.0f mm", props.Width)},
		{maxX + 25, maxY - props.FlangeThickness/2, fmt.Sprintf("tf = %.0f mm", props.FlangeThickness)},
		{maxX + 25, (minY+maxY)/2 - 25, fmt.Sprintf("h = %.0f mm", props.Height)},
		{cx, (minY+maxY)/2 + 25, fmt.Sprintf("tw = %.0f mm", props.WebThickness)},
	}
	for _, a := range annotations {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: a.x, Y: a.y}},
			Labels: []string{a.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Keep the drawing to scale
	span := max(maxX-minX, maxY-minY) + 120
	p.X.Min, p.X.Max = (minX+maxX)/2-span/2, (minX+maxX)/2+span/2
	p.Y.Min, p.Y.Max = (minY+maxY)/2-span/2, (minY+maxY)/2+span/2

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportUtilizationChart exports a bar chart of check utilizations with the
// 1.0 limit marked
func ExportUtilizationChart(items []Utilization, filename string) error {
	p := plot.New()
	p.Title.Text = "Design Check Utilization"
	p.Y.Label.Text = "Utilization ratio"

	values := make(plotter.Values, len(items))
	names := make([]string, len(items))
	for i, it := range items {
		values[i] = it.Ratio
		names[i] = it.Check
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = momentColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	limit, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 1}, {X: float64(len(items)) - 0.5, Y: 1}})
	if err != nil {
		return err
	}
	limit.LineStyle.Color = deflectionColor
	limit.LineStyle.Width = vg.Points(1.5)
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limit)
	p.Y.Min = 0

	return save(p, 7*vg.Inch, 4*vg.Inch, filename)
}

// ExportAll writes the moment, shear, deflection, section and utilization
// drawings next to each other using base as the file name prefix. ext is
// one of png, svg or pdf.
func ExportAll(data BeamDiagramData, base, ext string) ([]string, error) {
	ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	files := []string{
		base + "-moment" + ext,
		base + "-shear" + ext,
		base + "-deflection" + ext,
		base + "-section" + ext,
	}

	if err := ExportMomentDiagram(data, files[0]); err != nil {
		return nil, err
	}
	if err := ExportShearDiagram(data, files[1]); err != nil {
		return nil, err
	}
	if err := ExportDeflectionDiagram(data, files[2]); err != nil {
		return nil, err
	}
	if err := ExportSectionProfile(data.Section, files[3]); err != nil {
		return nil, err
	}
	if len(data.Utilizations) > 0 {
		f := base + "-utilization" + ext
		if err := ExportUtilizationChart(data.Utilizations, f); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// save writes the plot in the format implied by the file extension,
// defaulting to PNG
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
