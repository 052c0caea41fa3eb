package loads

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/units"
)

// Kind classifies the origin of a load component
type Kind string

const (
	Dead        Kind = "dead"
	Live        Kind = "live"
	Wind        Kind = "wind"
	Maintenance Kind = "maintenance"
	Other       Kind = "other"
)

// ErrUnsupportedKind is returned for an unrecognised load kind
var ErrUnsupportedKind = errors.New("unsupported load kind")

// ParseKind resolves a load kind name; empty means Other
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Dead, Live, Wind, Maintenance, Other:
		return k, nil
	case "":
		return Other, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// LoadComponent is a single load magnitude with its unit
type LoadComponent struct {
	Value float64    `json:"value" yaml:"value"`
	Unit  units.Unit `json:"unit" yaml:"unit"`
	Kind  Kind       `json:"kind" yaml:"kind"`
}

// KN returns the component magnitude in kN (or kN/m)
func (c LoadComponent) KN() float64 {
	return units.ToKN(c.Value, c.Unit)
}

// ParseComponent reads "value[:unit[:kind]]", e.g. "2.5:kN/m:dead".
// The unit defaults to kN/m and the kind to other.
func ParseComponent(s string) (LoadComponent, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return LoadComponent{}, fmt.Errorf("invalid load %q: expected value[:unit[:kind]]", s)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LoadComponent{}, fmt.Errorf("invalid load value %q: %w", parts[0], err)
	}

	c := LoadComponent{Value: value, Unit: units.KNM, Kind: Other}
	if len(parts) > 1 {
		if c.Unit, err = units.ParseUnit(parts[1]); err != nil {
			return LoadComponent{}, err
		}
	}
	if len(parts) > 2 {
		if c.Kind, err = ParseKind(parts[2]); err != nil {
			return LoadComponent{}, err
		}
	}
	return c, nil
}

// TotalLoad sums all components in kN, keeping their signs
func TotalLoad(components []LoadComponent) float64 {
	var total float64
	for _, c := range components {
		total += c.KN()
	}
	return total
}

// ByKind holds per-kind totals in kN (or kN/m)
type ByKind map[Kind]float64

// Totals groups the components by kind
func Totals(components []LoadComponent) ByKind {
	totals := ByKind{}
	for _, c := range components {
		kind := c.Kind
		if kind == "" {
			kind = Other
		}
		totals[kind] += c.KN()
	}
	return totals
}

// Purlin maps the totals onto purlin loads; other loads count as dead load
func (b ByKind) Purlin() PurlinLoads {
	return PurlinLoads{
		Dead:        b[Dead] + b[Other],
		Live:        b[Live],
		Wind:        b[Wind],
		Maintenance: b[Maintenance],
	}
}

// PurlinTotals maps components onto purlin loads like Totals(...).Purlin,
// rejecting units that do not fit their kind: dead, live, wind and other
// loads are line loads, the maintenance load is a point force.
func PurlinTotals(components []LoadComponent) (PurlinLoads, error) {
	for _, c := range components {
		if c.Kind == Maintenance && c.Unit.PerLength() {
			return PurlinLoads{}, fmt.Errorf("%s load %v %s: expected a force unit (kN, kg, N)", c.Kind, c.Value, c.Unit)
		}
		if c.Kind != Maintenance && !c.Unit.PerLength() {
			return PurlinLoads{}, fmt.Errorf("%s load %v %s: expected a per-length unit (kN/m, kg/m, N/m)", c.Kind, c.Value, c.Unit)
		}
	}
	return Totals(components).Purlin(), nil
}

// DeadLoad is the total dead load (kN) of a member weighing wpm kN/m
func DeadLoad(span, wpm float64) float64 {
	return wpm * span
}

// LiveLoad is the total live load (kN) of perSqm kN/m² over a strip of the given width (m)
func LiveLoad(span, perSqm, width float64) float64 {
	return perSqm * span * width
}

// WindLoad converts a wind pressure (kN/m²) to a line load (kN/m) on a purlin
func WindLoad(pressure, spacing float64) float64 {
	return pressure * spacing
}
