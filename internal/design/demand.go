package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/loads"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Request is a design demand as entered on the command line, in a demand
// file or in a spreadsheet row. Enumerations are still names and loads are
// still "value[:unit[:kind]]" strings; Parse validates all of it.
type Request struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Span        float64  `json:"span" yaml:"span"`                         // m
	Moment      *float64 `json:"moment,omitempty" yaml:"moment,omitempty"` // kN·m
	Loads       []string `json:"loads,omitempty" yaml:"loads,omitempty"`
	LoadType    string   `json:"load_type" yaml:"load_type"`
	Grade       string   `json:"steel_grade" yaml:"steel_grade"`
	Code        string   `json:"code" yaml:"code"`
	SectionType string   `json:"section_type" yaml:"section_type"`

	// Empty category means floor for uniform loads and roof for a point load
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	Accessible *bool  `json:"accessible,omitempty" yaml:"accessible,omitempty"`

	// Modulus of elasticity (MPa), zero means steel.E
	Elasticity float64 `json:"elasticity,omitempty" yaml:"elasticity,omitempty"`
}

// Default request values
const (
	DefaultCode        = "egyptian"
	DefaultGrade       = "St37"
	DefaultSectionType = "I-Beam"
	DefaultLoadType    = "uniform"
)

// DefaultRequest returns a request with every option at its default
func DefaultRequest() Request {
	accessible := true
	return Request{
		LoadType:    DefaultLoadType,
		Grade:       DefaultGrade,
		Code:        DefaultCode,
		SectionType: DefaultSectionType,
		Accessible:  &accessible,
	}
}

// Demand is a validated design demand
type Demand struct {
	Name        string
	Span        float64 // m
	Moment      float64 // kN·m, used when Loads is empty
	Loads       []loads.LoadComponent
	LoadType    analysis.LoadType
	Grade       steel.Grade
	Code        steel.Code
	SectionType section.Type
	Deflection  check.Criteria
	E           float64 // MPa
}

// Forces returns the design moment (kN·m) and shear (kN)
func (d Demand) Forces() (moment, shear float64) {
	if len(d.Loads) > 0 {
		total := loads.TotalLoad(d.Loads)
		return analysis.Moment(d.Span, total, d.LoadType), analysis.Shear(d.Span, total, d.LoadType)
	}
	return d.Moment, analysis.ShearFromMoment(d.Span, d.Moment, d.LoadType)
}

// Parse validates the request and resolves every name it contains.
// Blank enumeration fields take their defaults.
func (r Request) Parse() (Demand, error) {
	def := DefaultRequest()
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}

	if !(r.Span > 0) || math.IsInf(r.Span, 0) {
		return Demand{}, &ValidationError{Field: "span", Msg: fmt.Sprintf("must be a positive length in meters, got %v", r.Span)}
	}

	d := Demand{Name: r.Name, Span: r.Span, E: r.Elasticity}
	if d.E == 0 {
		d.E = steel.E
	}
	if d.E < 0 {
		return Demand{}, &ValidationError{Field: "elasticity", Msg: "must be positive"}
	}

	var err error
	if d.LoadType, err = analysis.ParseLoadType(pick(r.LoadType, def.LoadType)); err != nil {
		return Demand{}, err
	}
	if d.Grade, err = steel.LookupGrade(pick(r.Grade, def.Grade)); err != nil {
		return Demand{}, err
	}
	if d.Code, err = steel.ParseCode(pick(r.Code, def.Code)); err != nil {
		return Demand{}, err
	}
	if d.SectionType, err = section.ParseType(pick(r.SectionType, def.SectionType)); err != nil {
		return Demand{}, err
	}

	d.Deflection = check.DefaultCriteria(d.LoadType)
	if r.Category != "" {
		if d.Deflection.Category, err = check.ParseCategory(r.Category); err != nil {
			return Demand{}, err
		}
	}
	if r.Accessible != nil {
		d.Deflection.Accessible = *r.Accessible
	}

	switch {
	case r.Moment != nil && len(r.Loads) > 0:
		return Demand{}, &ValidationError{Field: "moment", Msg: "give either a moment or loads, not both"}
	case r.Moment != nil:
		if *r.Moment < 0 || math.IsNaN(*r.Moment) || math.IsInf(*r.Moment, 0) {
			return Demand{}, &ValidationError{Field: "moment", Msg: fmt.Sprintf("must be a non-negative number, got %v", *r.Moment)}
		}
		d.Moment = *r.Moment
	case len(r.Loads) > 0:
		for _, s := range r.Loads {
			c, err := loads.ParseComponent(s)
			if err != nil {
				return Demand{}, err
			}
			if c.Unit.PerLength() != (d.LoadType == analysis.Uniform) {
				return Demand{}, &ValidationError{Field: "loads", Msg: fmt.Sprintf("unit %s does not match a %s load", c.Unit, d.LoadType)}
			}
			d.Loads = append(d.Loads, c)
		}
		if loads.TotalLoad(d.Loads) < 0 {
			return Demand{}, &ValidationError{Field: "loads", Msg: "net load acts upward"}
		}
	default:
		return Demand{}, &ValidationError{Field: "moment", Msg: "a moment or at least one load is required"}
	}

	return d, nil
}

// ValidationError reports an invalid field of a request
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}
