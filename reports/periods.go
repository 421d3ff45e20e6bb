package reports

import (
	"sort"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// TopPerYear returns the n most popular names per (year, gender) partition.
// A partition with fewer than n distinct names returns fewer rows — no
// padding. Ties share a rank, so a partition can exceed n rows when the
// cut-off rank is tied.
func TopPerYear(view engine.RecordView, n int) ([]PeriodTopName, error) {
	return topPerPeriod(view, dataset.DimYear, n)
}

// TopPerDecade is TopPerYear with the partition keyed on the decade start,
// floor(year/10)*10. The decade is a virtual dimension of the record view.
func TopPerDecade(view engine.RecordView, n int) ([]PeriodTopName, error) {
	return topPerPeriod(view, dataset.DimDecade, n)
}

func topPerPeriod(view engine.RecordView, periodDim string, n int) ([]PeriodTopName, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	rows := engine.GroupSum(view, []string{periodDim, dataset.DimGender, dataset.DimName}, dataset.MeasureBirths)
	ranked := engine.DenseRank(rows, []string{periodDim, dataset.DimGender}, true)

	var top []PeriodTopName
	for _, r := range ranked {
		if r.Rank > n {
			continue
		}
		top = append(top, PeriodTopName{
			Period: atoi(r.Dim(periodDim)),
			Gender: r.Dim(dataset.DimGender),
			Name:   r.Dim(dataset.DimName),
			Births: int(r.Value),
			Rank:   r.Rank,
		})
	}

	sort.Slice(top, func(i, j int) bool {
		a, b := top[i], top[j]
		if a.Period != b.Period {
			return a.Period < b.Period
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
