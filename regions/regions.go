// Package regions maps state codes to geographic regions and canonicalizes
// the region labels used by the regional views.
//
// The raw table mirrors the source data faithfully, including its two known
// defects: Michigan is absent, and the New England label carries a space.
// Normalize fixes both; every regional view consumes the normalized form.
package regions

// StateRegion is one raw state→region mapping row.
type StateRegion struct {
	State  string `json:"state"`
	Region string `json:"region"`
}

// Canonical region labels produced by Normalize.
const (
	South       = "South"
	Pacific     = "Pacific"
	Mountain    = "Mountain"
	NewEngland  = "New_England"
	MidAtlantic = "Mid_Atlantic"
	Midwest     = "Midwest"

	// Unmapped buckets records whose state is absent from the mapping.
	// Left-join semantics: such records are kept, not dropped.
	Unmapped = "Unmapped"
)

// rawNewEngland is the label as it appears in the source data.
const rawNewEngland = "New England"

// Canonical returns the six canonical region labels.
func Canonical() []string {
	return []string{South, Pacific, Mountain, NewEngland, MidAtlantic, Midwest}
}

// Default returns the raw built-in table: 50 states plus DC, minus Michigan,
// with the source's "New England" spelling.
func Default() []StateRegion {
	return []StateRegion{
		{"AL", South}, {"AK", Pacific}, {"AZ", Mountain}, {"AR", South},
		{"CA", Pacific}, {"CO", Mountain}, {"CT", rawNewEngland},
		{"DC", MidAtlantic}, {"DE", South}, {"FL", South}, {"GA", South},
		{"HI", Pacific}, {"ID", Mountain}, {"IL", Midwest}, {"IN", Midwest},
		{"IA", Midwest}, {"KS", Midwest}, {"KY", South}, {"LA", South},
		{"ME", rawNewEngland}, {"MD", South}, {"MA", rawNewEngland},
		{"MN", Midwest}, {"MS", South}, {"MO", Midwest}, {"MT", Mountain},
		{"NE", Midwest}, {"NV", Mountain}, {"NH", rawNewEngland},
		{"NJ", MidAtlantic}, {"NM", Mountain}, {"NY", MidAtlantic},
		{"NC", South}, {"ND", Midwest}, {"OH", Midwest}, {"OK", South},
		{"OR", Pacific}, {"PA", MidAtlantic}, {"RI", rawNewEngland},
		{"SC", South}, {"SD", Midwest}, {"TN", South}, {"TX", South},
		{"UT", Mountain}, {"VT", rawNewEngland}, {"VA", South},
		{"WA", Pacific}, {"WV", South}, {"WI", Midwest}, {"WY", Mountain},
	}
}

// Normalize canonicalizes the raw mapping:
//
//  1. "New England" is relabeled "New_England"; all other labels pass
//     through unchanged, so applying Normalize twice is a no-op.
//  2. The missing Michigan row is injected as MI→Midwest. The synthetic
//     entry overrides any raw MI row, so the result always contains exactly
//     one MI mapping regardless of input.
//
// The returned map resolves each state to exactly one region — safe to join
// against without multiplying rows.
func Normalize(raw []StateRegion) map[string]string {
	normalized := make(map[string]string, len(raw)+1)
	for _, m := range raw {
		region := m.Region
		if region == rawNewEngland {
			region = NewEngland
		}
		normalized[m.State] = region
	}
	normalized["MI"] = Midwest
	return normalized
}
