package design

import (
	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Result is the complete outcome of one design pass. It is built once and
// not modified afterwards.
type Result struct {
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Span     float64           `json:"span" yaml:"span"`     // m
	Moment   float64           `json:"moment" yaml:"moment"` // kN·m
	Shear    float64           `json:"shear" yaml:"shear"`   // kN
	LoadType analysis.LoadType `json:"load_type" yaml:"load_type"`

	SteelGrade string     `json:"steel_grade" yaml:"steel_grade"`
	Fy         float64    `json:"fy" yaml:"fy"`
	Code       steel.Code `json:"code" yaml:"code"`

	SectionProperties      section.Properties `json:"section_properties" yaml:"section_properties"`
	RequiredSectionModulus float64            `json:"required_section_modulus" yaml:"required_section_modulus"` // mm³
	ProvidedSectionModulus float64            `json:"provided_section_modulus" yaml:"provided_section_modulus"` // mm³

	Deflection         float64        `json:"deflection" yaml:"deflection"` // mm
	DeflectionFormula  string         `json:"deflection_formula" yaml:"deflection_formula"`
	DeflectionCriteria check.Criteria `json:"deflection_criteria" yaml:"deflection_criteria"`

	CapacityCheck    check.CapacityResult    `json:"capacity_check" yaml:"capacity_check"`
	DeflectionCheck  check.DeflectionResult  `json:"deflection_check" yaml:"deflection_check"`
	CompactnessCheck check.CompactnessResult `json:"compactness_check" yaml:"compactness_check"`
	LTBCheck         check.LTBResult         `json:"ltb_check" yaml:"ltb_check"`

	OverallStatus check.Status `json:"overall_status" yaml:"overall_status"`
}

// Run sizes a section for the demand and checks it.
//
//	Zreq = M·sf·1e6/fy → Synthesize → δ(Ix) → capacity, deflection,
//	compactness and LTB checks → overall verdict
//
// There is a single pass: an Unsafe result is returned as is.
func Run(d Demand) (*Result, error) {
	moment, _ := d.Forces()
	zreq, err := check.RequiredModulus(moment, d.Grade, d.Code)
	if err != nil {
		return nil, err
	}

	props, err := section.Synthesize(d.SectionType, zreq)
	if err != nil {
		return nil, err
	}
	return evaluate(d, props, zreq)
}

// Check verifies a given section against the demand instead of sizing one
func Check(d Demand, props section.Properties) (*Result, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	moment, _ := d.Forces()
	zreq, err := check.RequiredModulus(moment, d.Grade, d.Code)
	if err != nil {
		return nil, err
	}
	return evaluate(d, props, zreq)
}

func evaluate(d Demand, props section.Properties, zreq float64) (*Result, error) {
	moment, shear := d.Forces()

	e := d.E
	if e == 0 {
		e = steel.E
	}
	deflection := analysis.ComputeDeflection(d.Span, moment, e, props.Ix, d.LoadType)

	capacity, err := check.Capacity(moment, props.Zx, d.Grade, d.Code)
	if err != nil {
		return nil, err
	}
	compactness, err := check.Compactness(props, d.Grade, d.Code)
	if err != nil {
		return nil, err
	}
	ltb, err := check.LTB(d.Span, props, d.Grade, moment, d.Code)
	if err != nil {
		return nil, err
	}
	deflectionCheck := check.Deflection(d.Span, deflection.Value, d.Deflection)
	if !deflection.Known {
		// formula only, no Ix to evaluate it with
		deflectionCheck.Status = check.Indeterminate
		deflectionCheck.Utilization = 0
	}

	r := &Result{
		Name:                   d.Name,
		Span:                   d.Span,
		Moment:                 moment,
		Shear:                  shear,
		LoadType:               d.LoadType,
		SteelGrade:             d.Grade.Name,
		Fy:                     d.Grade.Fy,
		Code:                   d.Code,
		SectionProperties:      props,
		RequiredSectionModulus: zreq,
		ProvidedSectionModulus: props.Zx,
		Deflection:             deflection.Value,
		DeflectionFormula:      deflection.Formula,
		DeflectionCriteria:     d.Deflection,
		CapacityCheck:          capacity,
		DeflectionCheck:        deflectionCheck,
		CompactnessCheck:       compactness,
		LTBCheck:               ltb,
	}
	r.OverallStatus = overall(r)
	return r, nil
}

// overall is Safe when capacity, deflection and LTB all pass. Compactness
// is reported but does not decide the verdict.
func overall(r *Result) check.Status {
	if r.CapacityCheck.Status == check.Safe &&
		r.DeflectionCheck.Status == check.Safe &&
		r.LTBCheck.Status == check.Safe {
		return check.Safe
	}
	return check.Unsafe
}
