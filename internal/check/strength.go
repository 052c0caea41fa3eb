package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// CapacityResult is the outcome of the bending strength check
type CapacityResult struct {
	Status         Status  `json:"status" yaml:"status"`
	Utilization    float64 `json:"utilization" yaml:"utilization"`
	MomentCapacity float64 `json:"moment_capacity" yaml:"moment_capacity"` // kN·m
	SafetyFactor   float64 `json:"safety_factor" yaml:"safety_factor"`
}

// Capacity checks a design moment (kN·m) against fy·Zx/sf for a section
// modulus zx (mm³).
func Capacity(moment, zx float64, grade steel.Grade, code steel.Code) (CapacityResult, error) {
	if err := requireGrade(grade); err != nil {
		return CapacityResult{}, err
	}
	if zx <= 0 {
		return CapacityResult{}, fmt.Errorf("%w: Zx", section.ErrMissingSectionProperties)
	}

	sf := code.SafetyFactor()
	capacity := grade.Fy * zx / sf // N·mm
	utilization := moment * 1e6 / capacity

	return CapacityResult{
		Status:         statusFor(utilization),
		Utilization:    utilization,
		MomentCapacity: capacity / 1e6,
		SafetyFactor:   sf,
	}, nil
}

// RequiredModulus is the section modulus (mm³) needed to carry moment
// (kN·m) at the allowable stress fy/sf.
func RequiredModulus(moment float64, grade steel.Grade, code steel.Code) (float64, error) {
	if err := requireGrade(grade); err != nil {
		return 0, err
	}
	return moment * code.SafetyFactor() * 1e6 / grade.Fy, nil
}

// LTBResult is the outcome of the lateral-torsional buckling check.
// Utilization is nil when the check is Indeterminate.
type LTBResult struct {
	Status         Status   `json:"status" yaml:"status"`
	Utilization    *float64 `json:"utilization" yaml:"utilization"`
	CriticalMoment float64  `json:"critical_moment,omitempty" yaml:"critical_moment,omitempty"` // kN·m
	DesignCapacity float64  `json:"design_capacity,omitempty" yaml:"design_capacity,omitempty"` // kN·m
	Note           string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// LTB checks the design moment against the elastic critical moment of the
// unbraced span (m):
//
//	Mcr = (π/Lb)·√(E·Iy·G·J),  G = E/(2(1+ν))
func LTB(span float64, props section.Properties, grade steel.Grade, moment float64, code steel.Code) (LTBResult, error) {
	if err := requireGrade(grade); err != nil {
		return LTBResult{}, err
	}
	if !props.HasTorsionProperties() {
		return LTBResult{
			Status: Indeterminate,
			Note:   "Detailed section properties (Iy, J, Cw) required for LTB check",
		}, nil
	}

	lb := span * 1000
	g := steel.E / (2 * (1 + steel.Poisson))
	mcr := math.Pi / lb * math.Sqrt(steel.E*props.Iy*g*props.J) / 1e6
	design := mcr / code.SafetyFactor()
	utilization := moment / design

	return LTBResult{
		Status:         statusFor(utilization),
		Utilization:    &utilization,
		CriticalMoment: mcr,
		DesignCapacity: design,
	}, nil
}

func requireGrade(g steel.Grade) error {
	if !g.Valid() {
		return fmt.Errorf("%w: %q has no yield strength", steel.ErrUnknownSteelGrade, g.Name)
	}
	return nil
}
