package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		unit  string
		value float64
		want  float64
	}{
		{"kN", 5, 5},
		{"KN", 5, 5},
		{"kg", 100, 0.981},
		{"N", 2500, 2.5},
		{"kN/m", 3.2, 3.2},
		{"KG/M", 200, 1.962},
		{"n/m", 750, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := Convert(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestConvert_Unsupported(t *testing.T) {
	for _, unit := range []string{"lb", "kN/m2", "", "tonne"} {
		_, err := Convert(1, unit)
		require.ErrorIs(t, err, ErrUnsupportedUnit, "unit %q", unit)
	}
}

func TestUnit_PerLength(t *testing.T) {
	assert.True(t, KNM.PerLength())
	assert.True(t, KGM.PerLength())
	assert.False(t, KN.PerLength())
	assert.False(t, KG.PerLength())
}
