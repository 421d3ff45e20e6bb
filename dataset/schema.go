package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Column Resolution for Delimited Input
// ============================================================================
// The dataset schema is fixed: five canonical columns. Source exports name
// them inconsistently ("State Code", "Count", "Sex"), so headers resolve
// through an alias table. Identifier columns are skipped.
// ============================================================================

// Canonical column identifiers used during loading.
const (
	colState  = "state"
	colGender = "gender"
	colYear   = "year"
	colName   = "name"
	colBirths = "births"
)

// headerAliases maps snake-cased header names to canonical columns.
var headerAliases = map[string]string{
	"state":      colState,
	"state_code": colState,
	"gender":     colGender,
	"sex":        colGender,
	"year":       colYear,
	"name":       colName,
	"births":     colBirths,
	"count":      colBirths,
}

// skippedHeaders are recognized but carry no analytical value.
var skippedHeaders = map[string]bool{
	"id":     true,
	"row_id": true,
}

// ErrMissingColumn reports a required column absent from the header row.
var ErrMissingColumn = errors.New("missing required column")

// resolveHeader maps CSV column positions to canonical columns.
// Every canonical column must be present exactly once; unknown headers are
// an error rather than silently dropped — a misread header would corrupt
// every downstream ranking.
func resolveHeader(headers []string) (map[int]string, error) {
	mapping := make(map[int]string, len(headers))
	seen := make(map[string]bool, len(headers))

	for i, h := range headers {
		key := toSnakeCase(strings.TrimSpace(h))
		if skippedHeaders[key] {
			continue
		}
		canonical, ok := headerAliases[key]
		if !ok {
			return nil, fmt.Errorf("unrecognized column %q", h)
		}
		if seen[canonical] {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
		seen[canonical] = true
		mapping[i] = canonical
	}

	for _, required := range []string{colState, colGender, colYear, colName, colBirths} {
		if !seen[required] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	return mapping, nil
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
