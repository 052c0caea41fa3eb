package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/analysis"
	"github.com/alexiusacademia/gosteel/internal/design"
)

func sampleResult(t *testing.T, name string, moment float64) *design.Result {
	t.Helper()
	req := design.DefaultRequest()
	req.Name = name
	req.Span = 6
	req.Moment = &moment
	d, err := req.Parse()
	require.NoError(t, err)
	r, err := design.Run(d)
	require.NoError(t, err)
	return r
}

func TestNewDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	db, err := NewDB(path)
	require.NoError(t, err)
	defer db.Close()

	// migrating twice is harmless
	require.NoError(t, migrate(db))
}

func TestDesignRepo_InsertGet(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	repo := &DesignRepo{}

	res := sampleResult(t, "B1", 50)
	rec, err := NewRecord("beam", "Warehouse", res)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.NoError(t, repo.Insert(ctx, db, rec))

	got, err := repo.Get(ctx, db, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "B1", got.Name)
	assert.Equal(t, "Warehouse", got.Project)
	assert.Equal(t, "beam", got.Kind)
	assert.Equal(t, res.SectionProperties.Name, got.SectionName)
	assert.Equal(t, res.OverallStatus.String(), got.OverallStatus)
	assert.Equal(t, rec.CreatedAt.Unix(), got.CreatedAt.Unix())

	decoded, err := got.Result()
	require.NoError(t, err)
	assert.Equal(t, res.SectionProperties.Name, decoded.SectionProperties.Name)
	assert.Equal(t, analysis.Uniform, decoded.LoadType)
	assert.Equal(t, res.OverallStatus, decoded.OverallStatus)
	assert.InDelta(t, res.CapacityCheck.Utilization, decoded.CapacityCheck.Utilization, 1e-9)
}

func TestDesignRepo_GetMissing(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := &DesignRepo{}
	_, err = repo.Get(context.Background(), db, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(context.Background(), db, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDesignRepo_ListNewestFirst(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	repo := &DesignRepo{}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, p := range []string{"A", "B", "A"} {
		rec, err := NewRecord("beam", p, sampleResult(t, p, 20+float64(i)*10))
		require.NoError(t, err)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Insert(ctx, db, rec))
	}

	all, err := repo.List(ctx, db, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.InDelta(t, 40.0, all[0].Moment, 1e-9)
	assert.InDelta(t, 20.0, all[2].Moment, 1e-9)

	onlyA, err := repo.List(ctx, db, "A", 0)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, r := range onlyA {
		assert.Equal(t, "A", r.Project)
	}

	limited, err := repo.List(ctx, db, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	require.NoError(t, repo.Delete(ctx, db, all[0].ID))
	all, err = repo.List(ctx, db, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
