package engine

import (
	"sort"
	"strconv"
)

// ============================================================================
// WINDOWED PRIMITIVES — Dense Rank and Lag per Partition
// ============================================================================
// Rows arrive pre-aggregated (GroupSum output). Both primitives bucket rows
// by a partition key tuple, order within each bucket, and emit partitions in
// first-seen order. Empty input produces no rows.
// ============================================================================

// DenseRank assigns a dense rank to every row within its partition.
// Rows inside a partition are ordered by Value (descending by default, so
// rank 1 is the largest). Equal values share a rank; the next distinct value
// gets the previous rank plus one — no gaps. The set of ranks inside a
// partition is therefore exactly {1, …, k} for k distinct values.
func DenseRank(rows []Row, partitionDims []string, descending bool) []RankedRow {
	if len(rows) == 0 {
		return nil
	}

	order, buckets := partition(rows, partitionDims)

	ranked := make([]RankedRow, 0, len(rows))
	for _, key := range order {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			if descending {
				return bucket[i].Value > bucket[j].Value
			}
			return bucket[i].Value < bucket[j].Value
		})

		rank := 0
		var prev float64
		for i, row := range bucket {
			if i == 0 || row.Value != prev {
				rank++
				prev = row.Value
			}
			ranked = append(ranked, RankedRow{Row: row, Rank: rank})
		}
	}
	return ranked
}

// LagByPartition attaches each row's predecessor value within its partition.
// Rows inside a partition are ordered ascending by the orderDim dimension
// (numeric when it parses as an integer, lexicographic otherwise). The first
// row of every partition has HasPrev false; a single-row partition therefore
// yields one lag-less row.
func LagByPartition(rows []Row, partitionDim, orderDim string) []LaggedRow {
	if len(rows) == 0 {
		return nil
	}

	order, buckets := partition(rows, []string{partitionDim})

	lagged := make([]LaggedRow, 0, len(rows))
	for _, key := range order {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return orderLess(bucket[i].Dims[orderDim], bucket[j].Dims[orderDim])
		})

		for i, row := range bucket {
			out := LaggedRow{Row: row}
			if i > 0 {
				out.Prev = bucket[i-1].Value
				out.HasPrev = true
			}
			lagged = append(lagged, out)
		}
	}
	return lagged
}

// orderLess compares order-dimension values numerically when both parse as
// integers (years, decades), lexicographically otherwise.
func orderLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
