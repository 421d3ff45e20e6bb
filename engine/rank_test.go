package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(dims map[string]string, value float64) Row {
	return Row{Dims: dims, Value: value}
}

func TestDenseRankSinglePartition(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"name": "Emma"}, 50),
		row(map[string]string{"name": "Olivia"}, 80),
		row(map[string]string{"name": "Ava"}, 30),
	}

	ranked := DenseRank(rows, []string{"gender"}, true)
	require.Len(t, ranked, 3)

	// Largest value first, rank 1.
	assert.Equal(t, "Olivia", ranked[0].Dim("name"))
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Emma", ranked[1].Dim("name"))
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Ava", ranked[2].Dim("name"))
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestDenseRankTiesShareRankWithoutGaps(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"name": "A"}, 100),
		row(map[string]string{"name": "B"}, 100),
		row(map[string]string{"name": "C"}, 90),
		row(map[string]string{"name": "D"}, 90),
		row(map[string]string{"name": "E"}, 10),
	}

	ranked := DenseRank(rows, nil, true)
	require.Len(t, ranked, 5)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 2, ranked[2].Rank) // next distinct value: previous rank + 1
	assert.Equal(t, 2, ranked[3].Rank)
	assert.Equal(t, 3, ranked[4].Rank)
}

func TestDenseRankPartitionsAreIndependent(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"gender": "M", "name": "Liam"}, 10),
		row(map[string]string{"gender": "M", "name": "Noah"}, 20),
		row(map[string]string{"gender": "F", "name": "Emma"}, 5),
		row(map[string]string{"gender": "F", "name": "Ava"}, 15),
	}

	ranked := DenseRank(rows, []string{"gender"}, true)
	require.Len(t, ranked, 4)

	byName := make(map[string]int)
	for _, r := range ranked {
		byName[r.Dim("name")] = r.Rank
	}
	assert.Equal(t, 1, byName["Noah"])
	assert.Equal(t, 2, byName["Liam"])
	assert.Equal(t, 1, byName["Ava"]) // F partition ranked on its own
	assert.Equal(t, 2, byName["Emma"])
}

// The set of ranks inside a partition must be exactly {1..k} for k distinct
// values, whatever the input order.
func TestDenseRankNoGapsProperty(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"year": "1990", "name": "A"}, 7),
		row(map[string]string{"year": "1990", "name": "B"}, 7),
		row(map[string]string{"year": "1990", "name": "C"}, 3),
		row(map[string]string{"year": "1990", "name": "D"}, 1),
		row(map[string]string{"year": "1991", "name": "A"}, 2),
		row(map[string]string{"year": "1991", "name": "B"}, 2),
	}

	ranked := DenseRank(rows, []string{"year"}, true)

	seen := make(map[string]map[int]bool)
	for _, r := range ranked {
		year := r.Dim("year")
		if seen[year] == nil {
			seen[year] = make(map[int]bool)
		}
		seen[year][r.Rank] = true
	}

	// 1990 has 3 distinct values, 1991 has 1.
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen["1990"])
	assert.Equal(t, map[int]bool{1: true}, seen["1991"])
}

func TestDenseRankAscending(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"name": "A"}, 30),
		row(map[string]string{"name": "B"}, 10),
	}

	ranked := DenseRank(rows, nil, false)
	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Dim("name"))
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestDenseRankEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Nil(t, DenseRank(nil, []string{"gender"}, true))
}

func TestLagByPartition(t *testing.T) {
	t.Parallel()

	rows := []Row{
		row(map[string]string{"name": "John", "year": "2009"}, 1),
		row(map[string]string{"name": "John", "year": "1980"}, 5),
		row(map[string]string{"name": "Mary", "year": "1980"}, 2),
	}

	lagged := LagByPartition(rows, "name", "year")
	require.Len(t, lagged, 3)

	type key struct{ name, year string }
	got := make(map[key]LaggedRow)
	for _, r := range lagged {
		got[key{r.Dim("name"), r.Dim("year")}] = r
	}

	// First row of each partition has no predecessor.
	assert.False(t, got[key{"John", "1980"}].HasPrev)
	assert.False(t, got[key{"Mary", "1980"}].HasPrev)

	// Years sort numerically ascending, so 2009 sees the 1980 value.
	john2009 := got[key{"John", "2009"}]
	require.True(t, john2009.HasPrev)
	assert.InDelta(t, 5, john2009.Prev, 0)
	assert.InDelta(t, 1, john2009.Value, 0)
}

func TestLagByPartitionSingleRowPartition(t *testing.T) {
	t.Parallel()

	lagged := LagByPartition([]Row{
		row(map[string]string{"name": "Zoe", "year": "1999"}, 4),
	}, "name", "year")

	require.Len(t, lagged, 1)
	assert.False(t, lagged[0].HasPrev)
}
