package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatMergesViews(t *testing.T) {
	t.Parallel()

	a := NewSliceView([]Record{
		{Dimensions: map[string]string{"state": "CA"}, Measures: map[string]float64{"births": 1}},
	})
	b := NewSliceView([]Record{
		{Dimensions: map[string]string{"state": "NY"}, Measures: map[string]float64{"births": 2}},
		{Dimensions: map[string]string{"state": "TX"}, Measures: map[string]float64{"births": 3}},
	})

	merged := Concat(a, b)
	require.Equal(t, 3, merged.Len())
	assert.Equal(t, "CA", merged.Dimension(0, "state"))
	assert.Equal(t, "NY", merged.Dimension(1, "state"))
	assert.Equal(t, "TX", merged.Dimension(2, "state"))
	assert.InDelta(t, 6, SumMeasure(merged, "births"), 0)
}

func TestConcatDegenerateCases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Concat().Len())

	single := NewSliceView([]Record{{Dimensions: map[string]string{"x": "1"}}})
	assert.Equal(t, single, Concat(single))
}

func TestLookupViewResolvesAndFallsBack(t *testing.T) {
	t.Parallel()

	parent := NewSliceView([]Record{
		{Dimensions: map[string]string{"state": "CT"}, Measures: map[string]float64{"births": 1}},
		{Dimensions: map[string]string{"state": "ZZ"}, Measures: map[string]float64{"births": 1}},
	})

	joined := NewLookupView(parent, "state", "region", map[string]string{"CT": "New_England"}, "Unmapped")

	assert.Equal(t, "New_England", joined.Dimension(0, "region"))
	assert.Equal(t, "Unmapped", joined.Dimension(1, "region")) // left join keeps the row
	assert.Equal(t, "CT", joined.Dimension(0, "state"))        // parent dims untouched
	assert.Contains(t, joined.DimensionKeys(), "region")
}

func TestDomainAdapterBindsTypedStructs(t *testing.T) {
	t.Parallel()

	type rec struct {
		Name   string
		Births int
	}

	adapter := NewDomainAdapter[rec]().
		Dimension("name", func(r rec) string { return r.Name }).
		Measure("births", func(r rec) float64 { return float64(r.Births) })

	view := adapter.Bind([]rec{{"Emma", 10}, {"Liam", 20}})
	require.Equal(t, 2, view.Len())
	assert.Equal(t, "Emma", view.Dimension(0, "name"))
	assert.InDelta(t, 20, view.Measure(1, "births"), 0)
	assert.Equal(t, []string{"name"}, view.DimensionKeys())
	assert.Equal(t, []string{"births"}, view.MeasureKeys())
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	view := NewSliceView([]Record{
		{Dimensions: map[string]string{"gender": "M", "name": "Liam"}, Measures: map[string]float64{"births": 1}},
		{Dimensions: map[string]string{"gender": "F", "name": "Emma"}, Measures: map[string]float64{"births": 2}},
		{Dimensions: map[string]string{"gender": "F", "name": "Ava"}, Measures: map[string]float64{"births": 3}},
	})

	females := ApplyFilters(view, Filters{Dimensions: map[string][]string{"gender": {"F"}}})
	assert.Equal(t, 2, females.Len())

	// Case-insensitive, AND across dimensions.
	ava := ApplyFilters(view, Filters{Dimensions: map[string][]string{
		"gender": {"f"},
		"name":   {"AVA"},
	}})
	require.Equal(t, 1, ava.Len())
	assert.Equal(t, "Ava", ava.Dimension(0, "name"))

	// Unknown value: empty view, not an error.
	none := ApplyFilters(view, Filters{Dimensions: map[string][]string{"name": {"Zzz"}}})
	assert.Equal(t, 0, none.Len())

	// Empty filter returns the original view.
	assert.Equal(t, view, ApplyFilters(view, Filters{}))
}
