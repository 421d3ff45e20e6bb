package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{Dimensions: map[string]string{"state": "CA", "gender": "F", "name": "Marina"}, Measures: map[string]float64{"births": 10}},
		{Dimensions: map[string]string{"state": "CA", "gender": "F", "name": "Ann"}, Measures: map[string]float64{"births": 90}},
		{Dimensions: map[string]string{"state": "NY", "gender": "F", "name": "Ann"}, Measures: map[string]float64{"births": 40}},
		// Duplicate full key: must collapse into one summed row.
		{Dimensions: map[string]string{"state": "NY", "gender": "F", "name": "Ann"}, Measures: map[string]float64{"births": 5}},
	}
}

func TestGroupSumSingleKey(t *testing.T) {
	t.Parallel()

	view := NewSliceView(testRecords())
	rows := GroupSum(view, []string{"name"}, "births")
	require.Len(t, rows, 2)

	// First-seen order preserved.
	assert.Equal(t, "Marina", rows[0].Dim("name"))
	assert.InDelta(t, 10, rows[0].Value, 0)
	assert.Equal(t, "Ann", rows[1].Dim("name"))
	assert.InDelta(t, 135, rows[1].Value, 0)
}

func TestGroupSumCompositeKeyCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	view := NewSliceView(testRecords())
	rows := GroupSum(view, []string{"state", "name"}, "births")
	require.Len(t, rows, 3)

	byKey := make(map[string]float64)
	for _, r := range rows {
		byKey[r.Dim("state")+"/"+r.Dim("name")] = r.Value
	}
	assert.InDelta(t, 10, byKey["CA/Marina"], 0)
	assert.InDelta(t, 90, byKey["CA/Ann"], 0)
	assert.InDelta(t, 45, byKey["NY/Ann"], 0)
}

func TestGroupSumEmptyView(t *testing.T) {
	t.Parallel()
	assert.Nil(t, GroupSum(NewSliceView(nil), []string{"name"}, "births"))
}

func TestSumMeasure(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 145, SumMeasure(NewSliceView(testRecords()), "births"), 0)
}

func TestUniqueValues(t *testing.T) {
	t.Parallel()

	view := NewSliceView(testRecords())
	assert.Equal(t, []string{"Marina", "Ann"}, UniqueValues(view, "name"))
	assert.Equal(t, []string{"CA", "NY"}, UniqueValues(view, "state"))
}

func TestSortRowsByValue(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Dims: map[string]string{"name": "B"}, Value: 10},
		{Dims: map[string]string{"name": "A"}, Value: 10},
		{Dims: map[string]string{"name": "C"}, Value: 30},
	}
	SortRowsByValue(rows, true, "name")

	assert.Equal(t, "C", rows[0].Dim("name"))
	assert.Equal(t, "A", rows[1].Dim("name")) // tie broken alphabetically
	assert.Equal(t, "B", rows[2].Dim("name"))
}
