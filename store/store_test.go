package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/regions"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "names.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportAndLoadRecords(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	records := []dataset.BirthRecord{
		{State: "CA", Gender: "M", Year: 1980, Name: "Michael", Births: 300},
		{State: "NY", Gender: "F", Year: 1990, Name: "Jessica", Births: 250},
		{State: "CA", Gender: "M", Year: 1980, Name: "Michael", Births: 10}, // duplicates allowed raw
	}
	require.NoError(t, s.ImportRecords(ctx, records))

	loaded, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded) // insertion order preserved

	n, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestImportRecordsRejectsInvalidBatch(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	err := s.ImportRecords(ctx, []dataset.BirthRecord{
		{State: "CA", Gender: "M", Year: 1980, Name: "Michael", Births: 300},
		{State: "CA", Gender: "X", Year: 1980, Name: "John", Births: 50},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrInvalidGender)

	// Nothing from the failed batch lands.
	n, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportRegionsReplacesTable(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ImportRegions(ctx, []regions.StateRegion{
		{State: "CA", Region: "Pacific"},
		{State: "TX", Region: "South"},
	}))
	require.NoError(t, s.ImportRegions(ctx, []regions.StateRegion{
		{State: "OH", Region: "Midwest"},
	}))

	mappings, err := s.LoadRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []regions.StateRegion{{State: "OH", Region: "Midwest"}}, mappings)
}

func TestLoadRegionsEmptyWithoutImport(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	mappings, err := s.LoadRegions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.db")

	s1, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s1.ImportRecords(context.Background(), []dataset.BirthRecord{
		{State: "CA", Gender: "M", Year: 1980, Name: "Michael", Births: 300},
	}))
	require.NoError(t, s1.Close())

	// Reopening runs the schema again without clobbering data.
	s2, err := Open(path, nil)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
