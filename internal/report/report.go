package report

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gosteel/internal/design"
	"github.com/alexiusacademia/gosteel/internal/loads"
)

// Document is everything a report prints about one design
type Document struct {
	Title   string
	Project string
	Author  string
	Date    time.Time

	Result *design.Result
	Loads  []loads.LoadComponent // input loads of a floor beam, if given
	Purlin *design.PurlinResult  // set for purlin designs

	// PNG images embedded in the PDF, in order
	Diagrams []Diagram
}

// Diagram is an image file with its caption
type Diagram struct {
	Caption string
	File    string
}

// Kind is the design type shown in headings
func (d Document) Kind() string {
	if d.Purlin != nil {
		return "Purlin"
	}
	return "Floor Beam"
}

func (d Document) title() string {
	if d.Title != "" {
		return d.Title
	}
	return "Steel Structure Design Report"
}

func (d Document) date() time.Time {
	if d.Date.IsZero() {
		return time.Now()
	}
	return d.Date
}

// row is a label, value, unit triple shared by the Excel and PDF writers
type row struct {
	label string
	value any
	unit  string
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (d Document) summaryRows() []row {
	r := d.Result
	p := r.SectionProperties
	return []row{
		{"Design Type", d.Kind(), ""},
		{"Span", r.Span, "m"},
		{"Design Code", r.Code.Title(), ""},
		{"Steel Grade", r.SteelGrade, ""},
		{"Maximum Moment", r.Moment, "kN·m"},
		{"Maximum Shear Force", r.Shear, "kN"},
		{"Maximum Deflection", r.Deflection, "mm"},
		{"Selected Section", p.Name, ""},
		{"Section Height", p.Height, "mm"},
		{"Section Width", p.Width, "mm"},
		{"Web Thickness", p.WebThickness, "mm"},
		{"Flange Thickness", p.FlangeThickness, "mm"},
		{"Section Area", p.Area, "mm²"},
		{"Section Modulus", p.Zx, "mm³"},
		{"Overall Design Status", r.OverallStatus.String(), ""},
	}
}

func (d Document) inputRows() []row {
	r := d.Result
	rows := []row{
		{"Span", r.Span, "m"},
		{"Load Type", r.LoadType.String(), ""},
	}
	if d.Purlin != nil {
		l := d.Purlin.Loads
		rows = append(rows,
			row{"Dead Load", l.Dead, "kN/m"},
			row{"Live Load", l.Live, "kN/m"},
			row{"Wind Load", l.Wind, "kN/m"},
			row{"Maintenance Load", l.Maintenance, "kN"},
		)
	}
	for i, c := range d.Loads {
		rows = append(rows, row{fmt.Sprintf("Load %d (%s)", i+1, c.Kind), c.Value, string(c.Unit)})
	}
	rows = append(rows,
		row{"Deflection Category", r.DeflectionCriteria.Category.String(), ""},
		row{"Accessible", yesNo(r.DeflectionCriteria.Accessible), ""},
		row{"Steel Grade", r.SteelGrade, ""},
		row{"Yield Strength", r.Fy, "MPa"},
		row{"Design Code", r.Code.Title(), ""},
	)
	return rows
}

// group is a titled block of result rows
type group struct {
	heading string
	rows    []row
}

func (d Document) resultGroups() []group {
	r := d.Result
	p := r.SectionProperties

	moment := []row{{"Maximum Moment", r.Moment, "kN·m"}}
	if d.Purlin != nil {
		moment = append(moment, row{"Critical Load Case", d.Purlin.Critical.Case, ""})
	}

	ltbUtil := any("n/a")
	if r.LTBCheck.Utilization != nil {
		ltbUtil = *r.LTBCheck.Utilization
	}

	return []group{
		{"Moment Analysis", moment},
		{"Shear Force Analysis", []row{{"Maximum Shear Force", r.Shear, "kN"}}},
		{"Section Properties", []row{
			{"Height", p.Height, "mm"},
			{"Width", p.Width, "mm"},
			{"Web Thickness", p.WebThickness, "mm"},
			{"Flange Thickness", p.FlangeThickness, "mm"},
			{"Area", p.Area, "mm²"},
			{"Ix", p.Ix, "mm⁴"},
			{"Iy", p.Iy, "mm⁴"},
			{"Zx", p.Zx, "mm³"},
			{"J", p.J, "mm⁴"},
			{"Cw", p.Cw, "mm⁶"},
		}},
		{"Design Checks", []row{
			{"Required Section Modulus", r.RequiredSectionModulus, "mm³"},
			{"Provided Section Modulus", r.ProvidedSectionModulus, "mm³"},
			{"Moment Capacity Check", r.CapacityCheck.Status.String(), ""},
			{"Moment Capacity Utilization", r.CapacityCheck.Utilization, ""},
			{"Moment Capacity", r.CapacityCheck.MomentCapacity, "kN·m"},
			{"Deflection Check", r.DeflectionCheck.Status.String(), ""},
			{"Maximum Deflection", r.Deflection, "mm"},
			{"Allowable Deflection (" + r.DeflectionCheck.LimitRatio + ")", r.DeflectionCheck.AllowableDeflection, "mm"},
			{"Deflection Utilization", r.DeflectionCheck.Utilization, ""},
			{"Compactness Check", r.CompactnessCheck.Classification.String(), ""},
			{"Flange Width-to-Thickness Ratio", r.CompactnessCheck.FlangeRatio, ""},
			{"Web Height-to-Thickness Ratio", r.CompactnessCheck.WebRatio, ""},
			{"Lateral Torsional Buckling Check", r.LTBCheck.Status.String(), ""},
			{"LTB Utilization", ltbUtil, ""},
			{"Overall Design Status", r.OverallStatus.String(), ""},
		}},
	}
}
