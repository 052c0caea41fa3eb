package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentAndShear_Uniform(t *testing.T) {
	for _, span := range []float64{1, 3.5, 6, 12} {
		for _, w := range []float64{0.5, 2, 17.3} {
			assert.InDelta(t, w*span*span/8, Moment(span, w, Uniform), 1e-12)
			assert.InDelta(t, w*span/2, Shear(span, w, Uniform), 1e-12)
		}
	}
}

func TestMomentAndShear_PointCenter(t *testing.T) {
	for _, span := range []float64{1, 3.5, 6, 12} {
		for _, p := range []float64{0.5, 2, 17.3} {
			assert.InDelta(t, p*span/4, Moment(span, p, PointCenter), 1e-12)
			assert.InDelta(t, p/2, Shear(span, p, PointCenter), 1e-12)
		}
	}
}

func TestShearFromMoment(t *testing.T) {
	m := Moment(6, 10, Uniform)
	assert.InDelta(t, 30.0, ShearFromMoment(6, m, Uniform), 1e-9)

	m = Moment(6, 10, PointCenter)
	assert.InDelta(t, 5.0, ShearFromMoment(6, m, PointCenter), 1e-9)
}

func TestComputeDeflection_UniformRoundTrip(t *testing.T) {
	const (
		span = 6.0     // m
		w    = 12.0    // kN/m
		e    = 200000. // MPa
		ix   = 8.36e7  // mm⁴
	)
	m := Moment(span, w, Uniform)
	got := ComputeDeflection(span, m, e, ix, Uniform)
	require.True(t, got.Known)

	// Direct: w in N/mm, L in mm
	want := 5 * w * math.Pow(span*1000, 4) / (384 * e * ix)
	assert.InDelta(t, want, got.Value, 1e-9)
	assert.InDelta(t, 12.11, got.Value, 0.01)
}

func TestComputeDeflection_PointCenter(t *testing.T) {
	const (
		span = 4.0
		p    = 20.0
		e    = 200000.
		ix   = 2.5e7
	)
	m := Moment(span, p, PointCenter)
	got := ComputeDeflection(span, m, e, ix, PointCenter)
	require.True(t, got.Known)

	want := p * 1000 * math.Pow(span*1000, 3) / (48 * e * ix)
	assert.InDelta(t, want, got.Value, 1e-9)
}

func TestComputeDeflection_NoInertia(t *testing.T) {
	got := ComputeDeflection(6, 50, 200000, 0, Uniform)
	assert.False(t, got.Known)
	assert.Zero(t, got.Value)
	assert.Equal(t, "5wL⁴/(384EI)", got.Formula)
	assert.Equal(t, "5wL⁴/(384EI)", got.String())

	got = ComputeDeflection(6, 50, 200000, 0, PointCenter)
	assert.Equal(t, "PL³/(48EI)", got.Formula)
}

func TestParseLoadType(t *testing.T) {
	lt, err := ParseLoadType("Uniform")
	require.NoError(t, err)
	assert.Equal(t, Uniform, lt)

	lt, err = ParseLoadType("point_center")
	require.NoError(t, err)
	assert.Equal(t, PointCenter, lt)

	_, err = ParseLoadType("triangular")
	require.ErrorIs(t, err, ErrUnsupportedLoadType)
}

func TestProfile(t *testing.T) {
	stations := Profile(6, 54, 12, Uniform, 101)
	require.Len(t, stations, 101)

	mid := stations[50]
	assert.InDelta(t, 3.0, mid.X, 1e-12)
	assert.InDelta(t, 54.0, mid.Moment, 1e-9)
	assert.InDelta(t, 0.0, mid.Shear, 1e-9)
	assert.InDelta(t, 12.0, mid.Deflection, 1e-9)

	assert.InDelta(t, 36.0, stations[0].Shear, 1e-9)
	assert.InDelta(t, 0.0, stations[0].Moment, 1e-12)
	assert.InDelta(t, 0.0, stations[100].Deflection, 1e-9)

	point := Profile(4, 20, 5, PointCenter, 5)
	assert.InDelta(t, 20.0, point[2].Moment, 1e-9)
	assert.InDelta(t, 5.0, point[2].Deflection, 1e-9)
	assert.InDelta(t, 10.0, point[1].Shear, 1e-9)
	assert.InDelta(t, -10.0, point[3].Shear, 1e-9)
}
