package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Unit is a load magnitude unit, either a force or a force per length
type Unit string

const (
	KG  Unit = "kg"
	KN  Unit = "kN"
	N   Unit = "N"
	KGM Unit = "kg/m"
	KNM Unit = "kN/m"
	NM  Unit = "N/m"
)

// ErrUnsupportedUnit is returned for unit strings outside the accepted set
var ErrUnsupportedUnit = errors.New("unsupported unit")

// ParseUnit resolves a unit string case-insensitively
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kn":
		return KN, nil
	case "kg":
		return KG, nil
	case "n":
		return N, nil
	case "kn/m":
		return KNM, nil
	case "kg/m":
		return KGM, nil
	case "n/m":
		return NM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

// PerLength reports whether the unit is a distributed (per metre) unit
func (u Unit) PerLength() bool {
	return strings.HasSuffix(string(u), "/m")
}

// ToKN converts a value in unit u to kN (or kN/m for per-length units)
func ToKN(value float64, u Unit) float64 {
	switch u {
	case KG, KGM:
		return value * steel.KgToKN
	case N, NM:
		return value / 1000
	default:
		return value
	}
}

// Convert parses unit and converts value to kN in one step
func Convert(value float64, unit string) (float64, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return ToKN(value, u), nil
}
