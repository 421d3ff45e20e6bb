// Package reports implements the analytical views over the names dataset.
//
// Every view is a pure function of an immutable record view (plus an
// optional normalized region mapping) and returns an ordered slice of typed
// rows. Views share nothing at runtime; each builds its own intermediate
// aggregates from the engine primitives, so they can run concurrently over
// the same input (see Suite).
package reports

import (
	"fmt"
	"strconv"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// DefaultTopN is the per-partition row limit for the top-N views.
const DefaultTopN = 3

// DefaultLengthCount is how many longest/shortest names the length view reports.
const DefaultLengthCount = 5

// TopName is one row of TopNamesByGender.
type TopName struct {
	Gender string `json:"gender"`
	Name   string `json:"name"`
	Births int    `json:"births"`
}

// TrendPoint is one row of NameTrend: the name's rank within a year.
type TrendPoint struct {
	Year int `json:"year"`
	Rank int `json:"rank"`
}

// DeltaRow is one row of RankDelta. Delta is signed: negative means the name
// rose in popularity between the two years (rank numbers shrink upward).
type DeltaRow struct {
	Name      string `json:"name"`
	FirstRank int    `json:"firstRank"`
	LastRank  int    `json:"lastRank"`
	Delta     int    `json:"delta"`
}

// PeriodTopName is one row of TopPerYear/TopPerDecade. Period is the year or
// the decade start.
type PeriodTopName struct {
	Period int    `json:"period"`
	Gender string `json:"gender"`
	Name   string `json:"name"`
	Births int    `json:"births"`
	Rank   int    `json:"rank"`
}

// RegionBirths is one row of BirthsByRegion.
type RegionBirths struct {
	Region string `json:"region"`
	Births int    `json:"births"`
}

// RegionTopName is one row of TopPerRegion.
type RegionTopName struct {
	Region string `json:"region"`
	Gender string `json:"gender"`
	Name   string `json:"name"`
	Births int    `json:"births"`
	Rank   int    `json:"rank"`
}

// NameLength pairs a distinct name with its character length.
type NameLength struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// LengthExtremes holds the longest and shortest distinct names.
type LengthExtremes struct {
	Longest  []NameLength `json:"longest"`
	Shortest []NameLength `json:"shortest"`
}

// NameBirths is one row of PopularityByLength.
type NameBirths struct {
	Name   string `json:"name"`
	Births int    `json:"births"`
}

// StateShare is one row of the per-state percentage view.
type StateShare struct {
	State   string  `json:"state"`
	Percent float64 `json:"percent"`
}

// validateView scans the input snapshot against the dataset invariants.
// A view refuses to aggregate invalid input: skipping bad records silently
// would corrupt every ranking derived from the sums.
func validateView(view engine.RecordView) error {
	for i := 0; i < view.Len(); i++ {
		rec := dataset.BirthRecord{
			State:  view.Dimension(i, dataset.DimState),
			Gender: view.Dimension(i, dataset.DimGender),
			Name:   view.Dimension(i, dataset.DimName),
			Births: int(view.Measure(i, dataset.MeasureBirths)),
		}
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// atoi converts a numeric dimension value; aggregated dimensions always come
// from strconv.Itoa, so failures indicate a programming error upstream.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
