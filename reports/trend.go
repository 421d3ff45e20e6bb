package reports

import (
	"sort"
	"strings"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// NameTrend traces one name's popularity rank across every year it appears.
// Records are restricted to the target gender before ranking, then names are
// ranked within each year by total births. An unknown name or gender yields
// an empty sequence, not an error.
func NameTrend(view engine.RecordView, name, gender string) ([]TrendPoint, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	filtered := engine.ApplyFilters(view, engine.Filters{
		Dimensions: map[string][]string{dataset.DimGender: {gender}},
	})

	rows := engine.GroupSum(filtered, []string{dataset.DimName, dataset.DimYear}, dataset.MeasureBirths)
	ranked := engine.DenseRank(rows, []string{dataset.DimYear}, true)

	var trend []TrendPoint
	for _, r := range ranked {
		if !strings.EqualFold(r.Dim(dataset.DimName), name) {
			continue
		}
		trend = append(trend, TrendPoint{
			Year: atoi(r.Dim(dataset.DimYear)),
			Rank: r.Rank,
		})
	}

	sort.Slice(trend, func(i, j int) bool { return trend[i].Year < trend[j].Year })
	return trend, nil
}
