package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Width-to-thickness coefficients on √(E/fy). Both codes use the same
// simplified limits.
const (
	flangeLimitCoefficient = 0.38
	webLimitCoefficient    = 3.76
)

// CompactnessResult classifies the flange outstand and the web
type CompactnessResult struct {
	Classification     Classification `json:"classification" yaml:"classification"`
	FlangeRatio        float64        `json:"flange_ratio" yaml:"flange_ratio"`
	WebRatio           float64        `json:"web_ratio" yaml:"web_ratio"`
	FlangeCompactLimit float64        `json:"flange_compact_limit" yaml:"flange_compact_limit"`
	WebCompactLimit    float64        `json:"web_compact_limit" yaml:"web_compact_limit"`
	FlangeStatus       Classification `json:"flange_status" yaml:"flange_status"`
	WebStatus          Classification `json:"web_status" yaml:"web_status"`
}

// Compactness compares (b/2)/tf and hw/tw with their compact limits.
// The section is Compact only if both elements are.
func Compactness(props section.Properties, grade steel.Grade, code steel.Code) (CompactnessResult, error) {
	if err := requireGrade(grade); err != nil {
		return CompactnessResult{}, err
	}
	if props.Width <= 0 || props.FlangeThickness <= 0 || props.WebThickness <= 0 || props.WebHeight() <= 0 {
		return CompactnessResult{}, fmt.Errorf("%w: width, flange_thickness, web_thickness", section.ErrMissingSectionProperties)
	}

	flange, web := CompactLimits(grade)
	r := CompactnessResult{
		FlangeRatio:        props.Width / 2 / props.FlangeThickness,
		WebRatio:           props.WebHeight() / props.WebThickness,
		FlangeCompactLimit: flange,
		WebCompactLimit:    web,
	}

	r.FlangeStatus = classify(r.FlangeRatio, r.FlangeCompactLimit)
	r.WebStatus = classify(r.WebRatio, r.WebCompactLimit)
	if r.FlangeStatus == Compact && r.WebStatus == Compact {
		r.Classification = Compact
	} else {
		r.Classification = NonCompact
	}
	return r, nil
}

// CompactLimits returns the flange and web slenderness limits of a
// compact section for the grade
func CompactLimits(grade steel.Grade) (flange, web float64) {
	root := math.Sqrt(steel.E / grade.Fy)
	return flangeLimitCoefficient * root, webLimitCoefficient * root
}

func classify(ratio, limit float64) Classification {
	if ratio <= limit {
		return Compact
	}
	return NonCompact
}
