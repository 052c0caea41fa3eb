package loads

import (
	"testing"

	"github.com/alexiusacademia/gosteel/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalLoad(t *testing.T) {
	components := []LoadComponent{
		{Value: 2, Unit: units.KNM, Kind: Dead},
		{Value: 100, Unit: units.KGM, Kind: Live},
		{Value: 500, Unit: units.NM, Kind: Other},
		{Value: -1.2, Unit: units.KNM, Kind: Wind},
	}
	assert.InDelta(t, 2+0.981+0.5-1.2, TotalLoad(components), 1e-12)
	assert.Zero(t, TotalLoad(nil))
}

func TestTotals_Purlin(t *testing.T) {
	components := []LoadComponent{
		{Value: 1.5, Unit: units.KNM, Kind: Dead},
		{Value: 0.5, Unit: units.KNM, Kind: Other},
		{Value: 3, Unit: units.KNM, Kind: Live},
		{Value: 4, Unit: units.KNM, Kind: Wind},
		{Value: 100, Unit: units.KG, Kind: Maintenance},
	}
	p := Totals(components).Purlin()
	assert.InDelta(t, 2.0, p.Dead, 1e-12)
	assert.InDelta(t, 3.0, p.Live, 1e-12)
	assert.InDelta(t, 4.0, p.Wind, 1e-12)
	assert.InDelta(t, 0.981, p.Maintenance, 1e-12)
}

func TestParseComponent(t *testing.T) {
	c, err := ParseComponent("2.5:kN/m:dead")
	require.NoError(t, err)
	assert.Equal(t, LoadComponent{Value: 2.5, Unit: units.KNM, Kind: Dead}, c)

	c, err = ParseComponent("150:KG")
	require.NoError(t, err)
	assert.Equal(t, units.KG, c.Unit)
	assert.Equal(t, Other, c.Kind)

	c, err = ParseComponent("4")
	require.NoError(t, err)
	assert.Equal(t, units.KNM, c.Unit)

	_, err = ParseComponent("4:psf")
	require.ErrorIs(t, err, units.ErrUnsupportedUnit)

	_, err = ParseComponent("4:kN:snow")
	require.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = ParseComponent("abc")
	require.Error(t, err)
}

func TestCriticalMoment(t *testing.T) {
	l := PurlinLoads{Dead: 2, Live: 3, Wind: 4, Maintenance: 1}
	got := CriticalMoment(l, 5)

	require.Len(t, got.Combinations, 4)
	assert.InDelta(t, 15.625, got.Combinations[0].Moment, 1e-12)
	assert.Zero(t, got.Combinations[1].Moment, "uplift must not flip into a positive moment")
	assert.InDelta(t, 18.75, got.Combinations[2].Moment, 1e-12)
	assert.InDelta(t, 1.25, got.Combinations[3].Moment, 1e-12)

	assert.InDelta(t, 18.75, got.Moment, 1e-12)
	assert.Equal(t, "Dead + Live + Maintenance", got.Case)
	assert.False(t, got.Point)
}

func TestCriticalMoment_TieKeepsEvaluationOrder(t *testing.T) {
	// Without maintenance, Dead + Live and Dead + Live + Maintenance are equal.
	got := CriticalMoment(PurlinLoads{Dead: 1, Live: 1}, 4)
	assert.Equal(t, "Dead + Live", got.Case)
	assert.InDelta(t, 4.0, got.Moment, 1e-12)

	// Everything zero: first combination is reported.
	got = CriticalMoment(PurlinLoads{}, 4)
	assert.Equal(t, "Dead + Live", got.Case)
	assert.Zero(t, got.Moment)
}

func TestCriticalMoment_PointGoverns(t *testing.T) {
	got := CriticalMoment(PurlinLoads{Dead: 0.05, Maintenance: 2}, 1)
	// uniform: (0.05+2)/8 = 0.25625, point: 2/4 = 0.5
	assert.Equal(t, "Maintenance (point load)", got.Case)
	assert.True(t, got.Point)
	assert.InDelta(t, 0.5, got.Moment, 1e-12)
}

func TestHelperLoads(t *testing.T) {
	assert.InDelta(t, 12.0, DeadLoad(6, 2), 1e-12)
	assert.InDelta(t, 15.0, LiveLoad(5, 2, 1.5), 1e-12)
	assert.InDelta(t, 1.8, WindLoad(1.2, 1.5), 1e-12)
}

func TestPurlinTotals(t *testing.T) {
	var components []LoadComponent
	for _, s := range []string{"0.5:kN/m:dead", "0.2", "60:kg/m:live", "100:kg:maintenance"} {
		c, err := ParseComponent(s)
		require.NoError(t, err)
		components = append(components, c)
	}
	l, err := PurlinTotals(components)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, l.Dead, 1e-12)
	assert.InDelta(t, 0.5886, l.Live, 1e-12)
	assert.InDelta(t, 0.981, l.Maintenance, 1e-12)

	for _, bad := range []string{"2:kN:dead", "1:kg:wind", "3:N:live", "1:kN/m:maintenance"} {
		c, err := ParseComponent(bad)
		require.NoError(t, err)
		_, err = PurlinTotals([]LoadComponent{c})
		assert.Error(t, err, bad)
	}
}
