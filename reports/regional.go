package reports

import (
	"log/slog"
	"sort"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
	"github.com/onoma-org/onoma/regions"
)

// BirthsByRegion sums births per region after resolving each record's state
// through the normalized mapping. States absent from the mapping land in the
// explicit Unmapped bucket rather than being dropped, so the per-region
// totals always add up to the dataset's grand total. Output is ordered
// descending by births.
func BirthsByRegion(view engine.RecordView, mapping map[string]string) ([]RegionBirths, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	joined := engine.NewLookupView(view, dataset.DimState, dataset.DimRegion, mapping, regions.Unmapped)
	rows := engine.GroupSum(joined, []string{dataset.DimRegion}, dataset.MeasureBirths)
	engine.SortRowsByValue(rows, true, dataset.DimRegion)

	var totals []RegionBirths
	for _, r := range rows {
		region := r.Dim(dataset.DimRegion)
		if region == regions.Unmapped {
			slog.Warn("records with no region mapping kept in unmapped bucket",
				"births", int(r.Value))
		}
		totals = append(totals, RegionBirths{Region: region, Births: int(r.Value)})
	}
	return totals, nil
}

// TopPerRegion returns the n most popular names per (region, gender)
// partition, using the same left-join as BirthsByRegion. The Unmapped bucket
// forms its own partitions when present.
func TopPerRegion(view engine.RecordView, mapping map[string]string, n int) ([]RegionTopName, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	joined := engine.NewLookupView(view, dataset.DimState, dataset.DimRegion, mapping, regions.Unmapped)
	rows := engine.GroupSum(joined, []string{dataset.DimRegion, dataset.DimGender, dataset.DimName}, dataset.MeasureBirths)
	ranked := engine.DenseRank(rows, []string{dataset.DimRegion, dataset.DimGender}, true)

	var top []RegionTopName
	for _, r := range ranked {
		if r.Rank > n {
			continue
		}
		top = append(top, RegionTopName{
			Region: r.Dim(dataset.DimRegion),
			Gender: r.Dim(dataset.DimGender),
			Name:   r.Dim(dataset.DimName),
			Births: int(r.Value),
			Rank:   r.Rank,
		})
	}

	sort.Slice(top, func(i, j int) bool {
		a, b := top[i], top[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Gender != b.Gender {
			return a.Gender < b.Gender
		}
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.Name < b.Name
	})
	return top, nil
}
