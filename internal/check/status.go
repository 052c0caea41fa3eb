package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Status is the verdict of a single check
type Status int

const (
	Safe Status = iota
	Unsafe
	// Indeterminate means the check could not be evaluated from the
	// available section properties
	Indeterminate
)

// statusFor maps a utilization ratio to a verdict; 1.0 exactly is Safe
func statusFor(utilization float64) Status {
	if utilization <= 1.0 {
		return Safe
	}
	return Unsafe
}

func (s Status) String() string {
	switch s {
	case Safe:
		return "Safe"
	case Unsafe:
		return "Unsafe"
	default:
		return "Indeterminate"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "safe":
		*s = Safe
	case "unsafe":
		*s = Unsafe
	case "indeterminate":
		*s = Indeterminate
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Classification is the local-buckling class of a section element
type Classification int

const (
	Compact Classification = iota
	NonCompact
)

func (c Classification) String() string {
	if c == NonCompact {
		return "Non-Compact"
	}
	return "Compact"
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "compact":
		*c = Compact
	case "non-compact", "noncompact":
		*c = NonCompact
	default:
		return fmt.Errorf("unknown classification %q", text)
	}
	return nil
}

// LoadCategory selects the deflection limit of a member
type LoadCategory int

const (
	Floor LoadCategory = iota
	Roof
)

// ErrUnsupportedCategory is returned for a category other than floor or roof
var ErrUnsupportedCategory = errors.New("unsupported load category")

// ParseCategory resolves "floor" or "roof" (any case)
func ParseCategory(s string) (LoadCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor":
		return Floor, nil
	case "roof":
		return Roof, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCategory, s)
}

func (c LoadCategory) String() string {
	if c == Roof {
		return "roof"
	}
	return "floor"
}

func (c LoadCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *LoadCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Criteria selects the serviceability limit for the deflection check
type Criteria struct {
	Category   LoadCategory `json:"category" yaml:"category"`
	Accessible bool         `json:"accessible" yaml:"accessible"`
}

// DefaultCriteria is floor for distributed loads and roof for a point
// load, both accessible
func DefaultCriteria(lt analysis.LoadType) Criteria {
	if lt == analysis.PointCenter {
		return Criteria{Category: Roof, Accessible: true}
	}
	return Criteria{Category: Floor, Accessible: true}
}

// Ratio is the L/x denominator applied by the criteria
func (c Criteria) Ratio() float64 {
	if c.Category == Floor || c.Accessible {
		return steel.DeflectionRatioFloor
	}
	return steel.DeflectionRatioRoof
}
