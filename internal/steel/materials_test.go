package steel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGrade(t *testing.T) {
	tests := []struct {
		name string
		fy   float64
		fu   float64
	}{
		{"St37", 240, 360},
		{"St52", 360, 520},
		{"A36", 250, 400},
		{"A992", 345, 450},
		{"S450", 440, 550},
		{"s355", 355, 510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := LookupGrade(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.fy, g.Fy)
			assert.Equal(t, tt.fu, g.Fu)
			assert.True(t, g.Valid())
		})
	}
}

func TestLookupGrade_Unknown(t *testing.T) {
	_, err := LookupGrade("XYZ99")
	require.ErrorIs(t, err, ErrUnknownSteelGrade)
	assert.Contains(t, err.Error(), "XYZ99")
}

func TestGrades_Listing(t *testing.T) {
	all := Grades()
	require.Len(t, all, 13)
	assert.Equal(t, "St37", all[0].Name)

	egyptian := GradesFor(Egyptian)
	require.Len(t, egyptian, 5)
	for _, g := range egyptian {
		assert.Equal(t, Egyptian, g.Code)
	}
	assert.Len(t, GradesFor(American), 8)
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("Egyptian")
	require.NoError(t, err)
	assert.Equal(t, Egyptian, c)
	assert.Equal(t, 1.5, c.SafetyFactor())

	c, err = ParseCode("AMERICAN")
	require.NoError(t, err)
	assert.Equal(t, American, c)
	assert.Equal(t, 1.67, c.SafetyFactor())

	_, err = ParseCode("eurocode")
	require.ErrorIs(t, err, ErrUnsupportedCode)
}

func TestCode_TextRoundTrip(t *testing.T) {
	var c Code
	require.NoError(t, c.UnmarshalText([]byte("american")))
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "american", string(text))
}
