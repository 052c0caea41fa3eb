package check

import "fmt"

// DeflectionResult is the outcome of the serviceability check
type DeflectionResult struct {
	Status              Status  `json:"status" yaml:"status"`
	Utilization         float64 `json:"utilization" yaml:"utilization"`
	AllowableDeflection float64 `json:"allowable_deflection" yaml:"allowable_deflection"` // mm
	LimitRatio          string  `json:"limit_ratio" yaml:"limit_ratio"`
}

// Deflection compares a midspan deflection (mm) with the span/ratio limit
// selected by the criteria. span is in meters.
func Deflection(span, deflection float64, c Criteria) DeflectionResult {
	ratio := c.Ratio()
	allowable := span * 1000 / ratio
	utilization := deflection / allowable

	return DeflectionResult{
		Status:              statusFor(utilization),
		Utilization:         utilization,
		AllowableDeflection: allowable,
		LimitRatio:          fmt.Sprintf("L/%.0f", ratio),
	}
}
