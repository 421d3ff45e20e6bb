package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCoversAllStatesPlusDC(t *testing.T) {
	t.Parallel()

	normalized := Normalize(Default())
	assert.Len(t, normalized, 51) // 50 states + DC

	// The raw table omits Michigan; normalization injects it.
	assert.Equal(t, Midwest, normalized["MI"])
}

func TestNormalizeRelabelsNewEngland(t *testing.T) {
	t.Parallel()

	normalized := Normalize(Default())
	assert.Equal(t, NewEngland, normalized["CT"])
	assert.Equal(t, NewEngland, normalized["ME"])

	for state, region := range normalized {
		assert.NotEqual(t, "New England", region, "state %s kept the raw label", state)
	}
}

func TestNormalizeProducesOnlyCanonicalLabels(t *testing.T) {
	t.Parallel()

	canonical := make(map[string]bool)
	for _, label := range Canonical() {
		canonical[label] = true
	}
	require.Len(t, canonical, 6)

	seen := make(map[string]bool)
	for _, region := range Normalize(Default()) {
		assert.True(t, canonical[region], "unexpected region label %q", region)
		seen[region] = true
	}
	assert.Len(t, seen, 6) // every canonical region is inhabited
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Normalize(Default())

	roundTripped := make([]StateRegion, 0, len(once))
	for state, region := range once {
		roundTripped = append(roundTripped, StateRegion{State: state, Region: region})
	}
	twice := Normalize(roundTripped)

	assert.Equal(t, once, twice)
}

func TestNormalizeSyntheticMichiganOverridesRawRow(t *testing.T) {
	t.Parallel()

	normalized := Normalize([]StateRegion{
		{State: "MI", Region: "Pacific"}, // inconsistent raw row
		{State: "OH", Region: Midwest},
	})

	assert.Equal(t, Midwest, normalized["MI"])
	assert.Len(t, normalized, 2)
}
