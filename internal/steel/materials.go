package steel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Material constants shared by every check
const (
	// Modulus of elasticity (MPa)
	E = 200000.0

	// Poisson's ratio
	Poisson = 0.3

	// Gravitational acceleration (m/s²)
	Gravity = 9.81

	// 1 kg-force in kN
	KgToKN = Gravity / 1000

	// Deflection limit denominators (L/x)
	DeflectionRatioFloor = 360.0
	DeflectionRatioRoof  = 240.0

	// Default maintenance load on a purlin (kg)
	DefaultMaintenanceLoadKg = 100.0
)

// ErrUnknownSteelGrade is returned when a grade name is not in the table
var ErrUnknownSteelGrade = errors.New("unknown steel grade")

// Grade holds the strength properties of a steel designation
type Grade struct {
	Name string  `json:"name" yaml:"name"`
	Fy   float64 `json:"fy" yaml:"fy"` // Yield strength (MPa)
	Fu   float64 `json:"fu" yaml:"fu"` // Ultimate strength (MPa)
	Code Code    `json:"code" yaml:"code"`
}

// grades is initialised once and never written afterwards.
var grades = map[string]Grade{
	// Egyptian code
	"St37": {Name: "St37", Fy: 240, Fu: 360, Code: Egyptian},
	"St44": {Name: "St44", Fy: 280, Fu: 430, Code: Egyptian},
	"St52": {Name: "St52", Fy: 360, Fu: 520, Code: Egyptian},
	"St60": {Name: "St60", Fy: 420, Fu: 600, Code: Egyptian},
	"St70": {Name: "St70", Fy: 490, Fu: 700, Code: Egyptian},

	// American / European designations
	"A36":  {Name: "A36", Fy: 250, Fu: 400, Code: American},
	"A572": {Name: "A572", Fy: 345, Fu: 450, Code: American},
	"A992": {Name: "A992", Fy: 345, Fu: 450, Code: American},
	"S235": {Name: "S235", Fy: 235, Fu: 360, Code: American},
	"S275": {Name: "S275", Fy: 275, Fu: 430, Code: American},
	"S355": {Name: "S355", Fy: 355, Fu: 510, Code: American},
	"S450": {Name: "S450", Fy: 440, Fu: 550, Code: American},
	"S500": {Name: "S500", Fy: 500, Fu: 625, Code: American},
}

// LookupGrade returns the properties of a named steel grade.
// Names are matched case-insensitively ("st37" resolves to St37).
func LookupGrade(name string) (Grade, error) {
	if g, ok := grades[name]; ok {
		return g, nil
	}
	for key, g := range grades {
		if strings.EqualFold(key, strings.TrimSpace(name)) {
			return g, nil
		}
	}
	return Grade{}, fmt.Errorf("%w: %q", ErrUnknownSteelGrade, name)
}

// Valid reports whether the grade was resolved from the table
func (g Grade) Valid() bool {
	return g.Fy > 0
}

// Grades lists every known grade, Egyptian designations first
func Grades() []Grade {
	list := make([]Grade, 0, len(grades))
	for _, g := range grades {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Code != list[j].Code {
			return list[i].Code < list[j].Code
		}
		if list[i].Fy != list[j].Fy {
			return list[i].Fy < list[j].Fy
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// GradesFor lists the grades customarily used with a design code
func GradesFor(code Code) []Grade {
	var list []Grade
	for _, g := range Grades() {
		if g.Code == code {
			list = append(list, g)
		}
	}
	return list
}
