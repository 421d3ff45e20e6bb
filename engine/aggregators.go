package engine

import (
	"sort"
	"strings"
)

// ============================================================================
// AGGREGATORS — Group-by-Sum over RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Grouping preserves first-seen key order; callers sort as needed.
// ============================================================================

// keySep joins dimension values into composite group keys. Unit separator —
// never appears in dataset values.
const keySep = "\x1f"

// GroupSum groups view rows by the given key dimensions and sums measure
// across each group. Rows sharing the full key tuple collapse into one Row.
// An empty view produces no rows.
func GroupSum(view RecordView, keyDims []string, measure string) []Row {
	if view.Len() == 0 {
		return nil
	}

	totals := make(map[string]*Row)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := compositeKey(view, i, keyDims)
		row, exists := totals[key]
		if !exists {
			dims := make(map[string]string, len(keyDims))
			for _, d := range keyDims {
				dims[d] = view.Dimension(i, d)
			}
			row = &Row{Dims: dims}
			totals[key] = row
			order = append(order, key)
		}
		row.Value += view.Measure(i, measure)
	}

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		rows = append(rows, *totals[key])
	}
	return rows
}

func compositeKey(view RecordView, i int, dims []string) string {
	if len(dims) == 1 {
		return view.Dimension(i, dims[0])
	}
	parts := make([]string, len(dims))
	for j, d := range dims {
		parts[j] = view.Dimension(i, d)
	}
	return strings.Join(parts, keySep)
}

// rowKey is compositeKey for already-aggregated rows.
func rowKey(row Row, dims []string) string {
	if len(dims) == 1 {
		return row.Dims[dims[0]]
	}
	parts := make([]string, len(dims))
	for j, d := range dims {
		parts[j] = row.Dims[d]
	}
	return strings.Join(parts, keySep)
}

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// UniqueValues returns distinct non-empty values for a dimension across a
// view, in first-seen order.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// partition buckets rows by a partition key, preserving first-seen partition
// order. Shared by DenseRank and LagByPartition.
func partition(rows []Row, partitionDims []string) ([]string, map[string][]Row) {
	order := make([]string, 0)
	buckets := make(map[string][]Row)
	for _, row := range rows {
		key := rowKey(row, partitionDims)
		if _, exists := buckets[key]; !exists {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], row)
	}
	return order, buckets
}

// SortRowsByValue sorts aggregated rows by value, descending or ascending.
// Ties are broken by the tieDim dimension for deterministic output.
func SortRowsByValue(rows []Row, descending bool, tieDim string) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			if descending {
				return rows[i].Value > rows[j].Value
			}
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Dims[tieDim] < rows[j].Dims[tieDim]
	})
}
