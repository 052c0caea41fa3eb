package design

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

func TestAlternatives(t *testing.T) {
	base := momentDemand(t, 20, 5)
	base.Name = "B1"
	ds := Alternatives(base, steel.GradesFor(steel.Egyptian)[:2], []section.Type{section.IBeam, section.Channel})

	require.Len(t, ds, 4)
	assert.Equal(t, "St37", ds[0].Grade.Name)
	assert.Equal(t, section.IBeam, ds[0].SectionType)
	assert.Equal(t, section.Channel, ds[1].SectionType)
	assert.Equal(t, "St44", ds[2].Grade.Name)
	assert.Equal(t, "B1 St44 Channel", ds[3].Name)
	assert.Equal(t, 20.0, ds[3].Moment)
}

func TestScreen_KeepsOrderAndErrors(t *testing.T) {
	base := momentDemand(t, 20, 5)
	ds := Alternatives(base, steel.Grades(), []section.Type{section.IBeam, section.Channel})
	ds = append(ds, Demand{Span: 5, Moment: 20, Grade: steel.Grade{Name: "XYZ99"}})

	outcomes, err := Screen(context.Background(), ds, 3)
	require.NoError(t, err)
	require.Len(t, outcomes, len(ds))

	for i, o := range outcomes[:len(ds)-1] {
		assert.Equal(t, i, o.Index)
		require.NoError(t, o.Err)
		assert.Equal(t, ds[i].Grade.Name, o.Result.SteelGrade)
		assert.Equal(t, ds[i].SectionType, o.Result.SectionProperties.Type)

		// each outcome matches a sequential run
		want, err := Run(ds[i])
		require.NoError(t, err)
		assert.Equal(t, want, o.Result)
	}

	last := outcomes[len(ds)-1]
	assert.Nil(t, last.Result)
	assert.ErrorIs(t, last.Err, steel.ErrUnknownSteelGrade)
}

func TestScreen_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Screen(ctx, []Demand{momentDemand(t, 20, 5)}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLightest(t *testing.T) {
	base := momentDemand(t, 5, 3)
	ds := Alternatives(base, steel.GradesFor(steel.Egyptian), []section.Type{section.IBeam, section.Channel})
	outcomes, err := Screen(context.Background(), ds, 0)
	require.NoError(t, err)

	best, ok := Lightest(outcomes)
	require.True(t, ok)
	for _, o := range outcomes {
		if o.Err == nil && o.Result.OverallStatus == check.Safe {
			assert.LessOrEqual(t, best.Result.SectionProperties.Area, o.Result.SectionProperties.Area)
		}
	}

	_, ok = Lightest(nil)
	assert.False(t, ok)
}

func TestLoadRequests(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "beams.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- name: B1
  span: 6
  moment: 40
- name: B2
  span: 4.5
  loads: ["2:kN/m:dead", "150:kg/m:live"]
  steel_grade: S355
  code: american
  section_type: channel
  accessible: false
  category: roof
`), 0644))

	reqs, err := LoadRequests(yamlPath)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "St37", reqs[0].Grade, "defaults fill omitted fields")
	require.NotNil(t, reqs[0].Moment)
	assert.Equal(t, 40.0, *reqs[0].Moment)

	d, err := reqs[1].Parse()
	require.NoError(t, err)
	assert.Equal(t, steel.American, d.Code)
	assert.Equal(t, section.Channel, d.SectionType)
	assert.False(t, d.Deflection.Accessible)
	assert.Len(t, d.Loads, 2)

	jsonPath := filepath.Join(dir, "beam.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"span": 5, "moment": 12.5, "load_type": "point_center"}`), 0644))
	reqs, err = LoadRequests(jsonPath)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "point_center", reqs[0].LoadType)
	assert.Equal(t, "I-Beam", reqs[0].SectionType)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`[{"span": "six"}]`), 0644))
	_, err = LoadRequests(badPath)
	require.Error(t, err)
}
