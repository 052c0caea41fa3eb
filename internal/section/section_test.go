package section

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_IBeamMinimum(t *testing.T) {
	p, err := Synthesize(IBeam, 100000)
	require.NoError(t, err)

	// √(100000/20) = 70.7 → clamped to 160
	assert.Equal(t, 160.0, p.Height)
	assert.Equal(t, 85.0, p.Width) // max(82, 80) = 82 → 85
	assert.Equal(t, 5.0, p.WebThickness)
	assert.Equal(t, 7.0, p.FlangeThickness)
	assert.Equal(t, "I-160x85x5x7", p.Name)
	assert.Equal(t, IBeam, p.Type)

	assert.InDelta(t, 2*85*7+5*146, p.Area, 1e-9)
	wantIx := 85*math.Pow(160, 3)/12 - 80*math.Pow(146, 3)/12
	assert.InDelta(t, wantIx, p.Ix, 1e-6)
	assert.InDelta(t, wantIx/80, p.Zx, 1e-6)
	assert.InDelta(t, p.Iy*math.Pow(153, 2)/4, p.Cw, 1e-3)
}

func TestSynthesize_IBeamLarge(t *testing.T) {
	// √(2e6/20) = 316.2 → 317
	p, err := Synthesize(IBeam, 2e6)
	require.NoError(t, err)
	assert.Equal(t, 320.0, p.Height)
	assert.Equal(t, 160.0, p.Width)          // ceil(317/2) = 159 → 160
	assert.Equal(t, 8.0, p.WebThickness)     // ceil(317/40) = 8
	assert.Equal(t, 13.0, p.FlangeThickness) // ceil(317/25) = 13
	assert.Equal(t, "I-320x160x8x13", p.Name)
}

func TestSynthesize_Channel(t *testing.T) {
	p, err := Synthesize(Channel, 10000)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Height)
	assert.Equal(t, 50.0, p.Width)
	assert.Equal(t, 4.0, p.WebThickness)
	assert.Equal(t, 5.0, p.FlangeThickness)
	assert.Equal(t, "C-100x50x4x5", p.Name)

	// √(500000/8) = 250 → h=250, b=ceil(250/3)=84 → 85, tw=5, tf=ceil(8.33)=9
	p, err = Synthesize(Channel, 500000)
	require.NoError(t, err)
	assert.Equal(t, "C-250x85x5x9", p.Name)
}

func TestSynthesize_RoundsUpOnly(t *testing.T) {
	for _, typ := range []Type{IBeam, Channel} {
		s := sizings[typ]
		for _, z := range []float64{0, 1e4, 3.3e5, 1.25e6, 7.7e6, 4e7} {
			p, err := Synthesize(typ, z)
			require.NoError(t, err)

			h0 := math.Max(s.minHeight, math.Sqrt(z/s.heightDivisor))
			assert.GreaterOrEqual(t, p.Height, h0)
			assert.GreaterOrEqual(t, p.Width, math.Max(s.minWidth, h0/s.widthRatio))
			assert.GreaterOrEqual(t, p.WebThickness, math.Max(s.minWeb, h0/s.webRatio))
			assert.GreaterOrEqual(t, p.FlangeThickness, math.Max(s.minFlange, h0/s.flangeRatio))

			assert.Zero(t, math.Mod(p.Height, HeightIncrement))
			assert.Zero(t, math.Mod(p.Width, WidthIncrement))
			assert.Positive(t, p.WebHeight())
			assert.InDelta(t, p.Ix/(p.Height/2), p.Zx, 1e-6)
		}
	}
}

func TestSynthesize_MonotoneInDemand(t *testing.T) {
	prev, err := Synthesize(IBeam, 0)
	require.NoError(t, err)
	for z := 1e5; z < 5e7; z *= 1.7 {
		p, err := Synthesize(IBeam, z)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Zx, prev.Zx, "z=%v", z)
		prev = p
	}
}

func TestSynthesize_InvalidDemand(t *testing.T) {
	_, err := Synthesize(IBeam, -1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = Synthesize(IBeam, math.NaN())
	require.ErrorAs(t, err, &verr)

	_, err = Synthesize(Type(7), 1000)
	require.ErrorIs(t, err, ErrUnsupportedSectionType)
}

func TestBuild_AreaMatchesOutline(t *testing.T) {
	for _, typ := range []Type{IBeam, Channel} {
		p, err := Build(typ, 300, 150, 7, 11)
		require.NoError(t, err)

		area, cx, cy := PolygonArea(p.Outline())
		assert.InDelta(t, p.Area, area, 1e-6, typ.String())
		assert.InDelta(t, 150.0, cy, 1e-6, "section is symmetric about x")
		if typ == IBeam {
			assert.InDelta(t, 75.0, cx, 1e-6)
		} else {
			assert.Less(t, cx, 75.0, "channel centroid sits toward the web")
		}
	}
}

func TestBuild_ChannelIyAboutOwnCentroid(t *testing.T) {
	p, err := Build(Channel, 200, 80, 6, 10)
	require.NoError(t, err)
	// parallel axis theorem from the back of the web
	hw := 180.0
	atBack := hw*math.Pow(6, 3)/3 + 2*10*math.Pow(80, 3)/3
	_, cx, _ := PolygonArea(p.Outline())
	assert.InDelta(t, atBack-p.Area*cx*cx, p.Iy, 1e-3)
}

func TestProperties_Validate(t *testing.T) {
	err := Properties{Height: 200, Width: 100, FlangeThickness: 10}.Validate()
	require.ErrorIs(t, err, ErrMissingSectionProperties)
	assert.Contains(t, err.Error(), "web_thickness")

	_, err = Build(IBeam, 20, 100, 5, 10)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{"I-Beam": IBeam, "ibeam": IBeam, "CHANNEL": Channel, "c": Channel} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseType("Angle")
	require.ErrorIs(t, err, ErrUnsupportedSectionType)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "purlin.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: C-ROOF\ntype: channel\nheight: 160\nwidth: 65\nweb_thickness: 5\nflange_thickness: 7\n"), 0644))
	p, err := LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "C-ROOF", p.Name)
	assert.Equal(t, Channel, p.Type)
	assert.Positive(t, p.Ix)

	jsonPath := filepath.Join(dir, "beam.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"type":"I-Beam","height":300,"width":150,"web_thickness":7,"flange_thickness":11}`), 0644))
	p, err = LoadFromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "I-300x150x7x11", p.Name)

	badPath := filepath.Join(dir, "angle.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"type":"Angle","height":100,"width":100,"web_thickness":8,"flange_thickness":8}`), 0644))
	_, err = LoadFromFile(badPath)
	require.ErrorIs(t, err, ErrUnsupportedSectionType)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestContains(t *testing.T) {
	p, err := Build(IBeam, 200, 100, 6, 10)
	require.NoError(t, err)
	outline := p.Outline()

	assert.True(t, Contains(outline, 50, 100), "web")
	assert.True(t, Contains(outline, 5, 5), "bottom flange")
	assert.True(t, Contains(outline, 95, 195), "top flange")
	assert.False(t, Contains(outline, 10, 100), "beside the web")
	assert.False(t, Contains(outline, 150, 100), "outside")
}
