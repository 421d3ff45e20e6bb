package engine

// ============================================================================
// ENGINE TYPES — Aggregation Primitives over Generic Records
// ============================================================================
// The engine is domain-agnostic: rows carry string dimensions and numeric
// measures. Typed datasets bind through DomainAdapter (view.go).
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// Row is one grouped/aggregated result: the grouping key tuple plus the
// aggregated measure value.
type Row struct {
	Dims  map[string]string `json:"dims"`
	Value float64           `json:"value"`
}

// Dim returns the value of a single key dimension ("" if absent).
func (r Row) Dim(key string) string { return r.Dims[key] }

// RankedRow is a Row with its dense rank within a partition.
// Rank 1 is the best (largest value when ranking descending); ties share a
// rank and the next distinct value gets the previous rank plus one.
type RankedRow struct {
	Row
	Rank int `json:"rank"`
}

// LaggedRow is a Row with its partition predecessor's value attached.
// HasPrev is false for the first row of each partition.
type LaggedRow struct {
	Row
	Prev    float64 `json:"prev"`
	HasPrev bool    `json:"hasPrev"`
}

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if f.Dimensions == nil {
		return false
	}
	vals, ok := f.Dimensions[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	if f.Dimensions == nil {
		return true
	}
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}
