package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// LoadType selects the closed-form formulas for a simply supported beam
type LoadType int

const (
	Uniform     LoadType = iota // w (kN/m) over the whole span
	PointCenter                 // P (kN) at midspan
)

// ErrUnsupportedLoadType is returned for an unrecognised load type
var ErrUnsupportedLoadType = errors.New("unsupported load type")

// ParseLoadType resolves "uniform" or "point_center"
func ParseLoadType(s string) (LoadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "udl":
		return Uniform, nil
	case "point_center", "point-center", "point":
		return PointCenter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLoadType, s)
}

func (lt LoadType) String() string {
	if lt == PointCenter {
		return "point_center"
	}
	return "uniform"
}

func (lt LoadType) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

func (lt *LoadType) UnmarshalText(text []byte) error {
	parsed, err := ParseLoadType(string(text))
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// Moment returns the maximum moment (kN-m) for span (m) and load w (kN/m) or P (kN)
func Moment(span, load float64, lt LoadType) float64 {
	if lt == PointCenter {
		// M = PL/4
		return load * span / 4
	}
	// M = wL²/8
	return load * span * span / 8
}

// Shear returns the maximum shear force (kN)
func Shear(span, load float64, lt LoadType) float64 {
	if lt == PointCenter {
		// V = P/2
		return load / 2
	}
	// V = wL/2
	return load * span / 2
}

// LoadFromMoment recovers w (kN/m) or P (kN) from the maximum moment
func LoadFromMoment(span, moment float64, lt LoadType) float64 {
	if lt == PointCenter {
		// P = 4M/L
		return 4 * moment / span
	}
	// w = 8M/L²
	return 8 * moment / (span * span)
}

// ShearFromMoment returns the maximum shear implied by a maximum moment
func ShearFromMoment(span, moment float64, lt LoadType) float64 {
	return Shear(span, LoadFromMoment(span, moment, lt), lt)
}

// Formula is the deflection expression used for the load type
func Formula(lt LoadType) string {
	if lt == PointCenter {
		return "PL³/(48EI)"
	}
	return "5wL⁴/(384EI)"
}

// Deflection is a midspan deflection, or only its formula when the
// second moment of area was not available.
type Deflection struct {
	Value   float64 `json:"value" yaml:"value"` // mm
	Formula string  `json:"formula" yaml:"formula"`
	Known   bool    `json:"known" yaml:"known"`
}

func (d Deflection) String() string {
	if !d.Known {
		return d.Formula
	}
	return fmt.Sprintf("%.2f mm", d.Value)
}

// ComputeDeflection returns the maximum deflection for a span (m) carrying
// moment (kN-m), with E in MPa and inertia in mm⁴. A non-positive inertia
// yields the formula only.
func ComputeDeflection(span, moment, e, inertia float64, lt LoadType) Deflection {
	d := Deflection{Formula: Formula(lt)}
	if inertia <= 0 {
		return d
	}

	spanMM := span * 1000
	load := LoadFromMoment(span, moment, lt)

	if lt == PointCenter {
		pN := load * 1000 // kN -> N
		d.Value = pN * math.Pow(spanMM, 3) / (48 * e * inertia)
	} else {
		wNmm := load // 1 kN/m = 1 N/mm
		d.Value = 5 * wNmm * math.Pow(spanMM, 4) / (384 * e * inertia)
	}
	d.Known = true
	return d
}
