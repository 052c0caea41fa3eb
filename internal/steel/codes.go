package steel

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the design code whose safety factor is applied
type Code int

const (
	Egyptian Code = iota
	American
)

// Safety factors per code
const (
	SafetyFactorEgyptian = 1.5
	SafetyFactorAmerican = 1.67
)

// ErrUnsupportedCode is returned for a design code name that is not recognised
var ErrUnsupportedCode = errors.New("unsupported design code")

// ParseCode resolves "egyptian" or "american" (any case)
func ParseCode(s string) (Code, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "egyptian", "ecp":
		return Egyptian, nil
	case "american", "aisc":
		return American, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCode, s)
}

// SafetyFactor is the divisor applied to nominal capacities
func (c Code) SafetyFactor() float64 {
	if c == American {
		return SafetyFactorAmerican
	}
	return SafetyFactorEgyptian
}

func (c Code) String() string {
	if c == American {
		return "american"
	}
	return "egyptian"
}

// Title is the display form used in reports
func (c Code) Title() string {
	if c == American {
		return "American"
	}
	return "Egyptian"
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
