package design

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/loads"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// PurlinOptions are the design settings of a purlin other than its loads
type PurlinOptions struct {
	Name        string
	Grade       steel.Grade
	Code        steel.Code
	SectionType section.Type

	// nil selects an accessible roof
	Deflection *check.Criteria
}

// DefaultPurlinOptions is St37 to the Egyptian code with a channel section
func DefaultPurlinOptions() PurlinOptions {
	g, _ := steel.LookupGrade(DefaultGrade)
	return PurlinOptions{Grade: g, Code: steel.Egyptian, SectionType: section.Channel}
}

// PurlinResult is the governing combination and the design made for it
type PurlinResult struct {
	Loads    loads.PurlinLoads `json:"loads" yaml:"loads"`
	Critical loads.Critical    `json:"critical" yaml:"critical"`
	Design   *Result           `json:"design" yaml:"design"`
}

// Purlin designs a roof purlin of span (m) for the governing load
// combination. The maintenance point case is designed as a midspan point
// load, every other case as a uniform load.
func Purlin(l loads.PurlinLoads, span float64, opts PurlinOptions) (*PurlinResult, error) {
	if !(span > 0) {
		return nil, &ValidationError{Field: "span", Msg: fmt.Sprintf("must be a positive length in meters, got %v", span)}
	}

	crit := loads.CriticalMoment(l, span)
	lt := analysis.Uniform
	if crit.Point {
		lt = analysis.PointCenter
	}

	d := Demand{
		Name:        opts.Name,
		Span:        span,
		Moment:      crit.Moment,
		LoadType:    lt,
		Grade:       opts.Grade,
		Code:        opts.Code,
		SectionType: opts.SectionType,
		Deflection:  check.Criteria{Category: check.Roof, Accessible: true},
		E:           steel.E,
	}
	if opts.Deflection != nil {
		d.Deflection = *opts.Deflection
	}

	r, err := Run(d)
	if err != nil {
		return nil, err
	}
	return &PurlinResult{Loads: l, Critical: crit, Design: r}, nil
}
