package loads

// Combination is a purlin load combination.
// Uniform combinations act as w (kN/m) over the span; a Point
// combination applies its net load as P (kN) at midspan.
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead        float64
	Live        float64
	Wind        float64 // negative for uplift
	Maintenance float64
	Point       bool
}

// PurlinCombinations are evaluated in this order; on equal moments the
// earlier combination governs.
var PurlinCombinations = []Combination{
	{
		ID:          "1",
		Description: "Dead + Live",
		Dead:        1.0,
		Live:        1.0,
	},
	{
		ID:          "2",
		Description: "Dead + Wind (upward)",
		Dead:        1.0,
		Wind:        -1.0,
	},
	{
		ID:          "3",
		Description: "Dead + Live + Maintenance",
		Dead:        1.0,
		Live:        1.0,
		Maintenance: 1.0,
	},
	{
		ID:          "4",
		Description: "Maintenance (point load)",
		Maintenance: 1.0,
		Point:       true,
	},
}

// PurlinLoads holds unfactored purlin loads.
// Dead, Live and Wind are kN/m; Maintenance is read as kN/m by the
// uniform combinations and as a kN point load by the point combination.
type PurlinLoads struct {
	Dead        float64 `json:"dead" yaml:"dead"`
	Live        float64 `json:"live" yaml:"live"`
	Wind        float64 `json:"wind" yaml:"wind"`
	Maintenance float64 `json:"maintenance" yaml:"maintenance"`
}

// NetLoad is the combined load for this combination
func (c Combination) NetLoad(l PurlinLoads) float64 {
	return c.Dead*l.Dead +
		c.Live*l.Live +
		c.Wind*l.Wind +
		c.Maintenance*l.Maintenance
}

// Moment is the midspan moment (kN-m) for this combination over span (m).
// A net load that is zero or upward gives no moment.
func (c Combination) Moment(l PurlinLoads, span float64) float64 {
	net := c.NetLoad(l)
	if net <= 0 {
		return 0
	}
	if c.Point {
		return net * span / 4
	}
	return net * span * span / 8
}

// CombinationMoment is the moment produced by one combination
type CombinationMoment struct {
	Case   string  `json:"case" yaml:"case"`
	Moment float64 `json:"moment" yaml:"moment"`
}

// Critical holds the governing purlin moment
type Critical struct {
	Moment       float64             `json:"critical_moment" yaml:"critical_moment"`
	Case         string              `json:"critical_case" yaml:"critical_case"`
	Point        bool                `json:"point_load" yaml:"point_load"`
	Combinations []CombinationMoment `json:"combinations" yaml:"combinations"`
}

// CriticalMoment evaluates PurlinCombinations and returns the governing case
func CriticalMoment(l PurlinLoads, span float64) Critical {
	result := Critical{
		Combinations: make([]CombinationMoment, 0, len(PurlinCombinations)),
	}

	for i, combo := range PurlinCombinations {
		m := combo.Moment(l, span)
		result.Combinations = append(result.Combinations, CombinationMoment{
			Case:   combo.Description,
			Moment: m,
		})
		if i == 0 || m > result.Moment {
			result.Moment = m
			result.Case = combo.Description
			result.Point = combo.Point
		}
	}

	return result
}
