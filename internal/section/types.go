package section

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the cross-section family
type Type int

const (
	IBeam Type = iota
	Channel
)

var (
	// ErrUnsupportedSectionType is returned for section families other than I-Beam and Channel
	ErrUnsupportedSectionType = errors.New("unsupported section type")

	// ErrMissingSectionProperties is returned when a geometric property is absent or non-positive
	ErrMissingSectionProperties = errors.New("missing section properties")
)

// ParseType resolves a section type name (case-insensitive)
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i-beam", "ibeam", "i", "i_beam":
		return IBeam, nil
	case "channel", "c":
		return Channel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedSectionType, s)
}

func (t Type) String() string {
	if t == Channel {
		return "Channel"
	}
	return "I-Beam"
}

// Prefix is the leading letter of generated section names
func (t Type) Prefix() string {
	if t == Channel {
		return "C"
	}
	return "I"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Properties holds the dimensions and derived properties of a steel section
type Properties struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`

	// Dimensions (mm)
	Height          float64 `json:"height" yaml:"height"`
	Width           float64 `json:"width" yaml:"width"`
	WebThickness    float64 `json:"web_thickness" yaml:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness" yaml:"flange_thickness"`

	// Derived properties
	Area float64 `json:"area" yaml:"area"` // mm²
	Ix   float64 `json:"Ix" yaml:"Ix"`     // mm⁴
	Iy   float64 `json:"Iy" yaml:"Iy"`     // mm⁴
	Zx   float64 `json:"Zx" yaml:"Zx"`     // mm³
	J    float64 `json:"J" yaml:"J"`       // mm⁴
	Cw   float64 `json:"Cw" yaml:"Cw"`     // mm⁶
}

// WebHeight is the clear height of the web between flanges
func (p Properties) WebHeight() float64 {
	return p.Height - 2*p.FlangeThickness
}

// Validate checks that every geometric dimension is present and consistent
func (p Properties) Validate() error {
	missing := []string{}
	if p.Height <= 0 {
		missing = append(missing, "height")
	}
	if p.Width <= 0 {
		missing = append(missing, "width")
	}
	if p.WebThickness <= 0 {
		missing = append(missing, "web_thickness")
	}
	if p.FlangeThickness <= 0 {
		missing = append(missing, "flange_thickness")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSectionProperties, strings.Join(missing, ", "))
	}
	if p.WebHeight() <= 0 {
		return &ValidationError{msg: fmt.Sprintf("flanges (2 x %.0f mm) leave no web in a %.0f mm deep section", p.FlangeThickness, p.Height)}
	}
	if p.WebThickness >= p.Width {
		return &ValidationError{msg: fmt.Sprintf("web thickness %.0f mm must be less than width %.0f mm", p.WebThickness, p.Width)}
	}
	return nil
}

// HasTorsionProperties reports whether Iy, J and Cw are all available
func (p Properties) HasTorsionProperties() bool {
	return p.Iy > 0 && p.J > 0 && p.Cw > 0
}

// ValidationError represents an inconsistent section definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
