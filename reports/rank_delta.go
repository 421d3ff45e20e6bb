package reports

import (
	"sort"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// RankDelta compares every name's popularity rank between two years.
// Names are ranked within each year by total births across all genders and
// states. Only names present in BOTH years produce a row; the lag of the
// first-year row is absent, so it is dropped. Delta = lastRank − firstRank:
// negative means the name rose in popularity. Output is ordered ascending by
// delta (biggest risers first), then by name.
func RankDelta(view engine.RecordView, firstYear, lastYear int) ([]DeltaRow, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	rows := engine.GroupSum(view, []string{dataset.DimName, dataset.DimYear}, dataset.MeasureBirths)
	ranked := engine.DenseRank(rows, []string{dataset.DimYear}, true)

	// Restrict to the two target years; each year partition was ranked in
	// full, so dropping other years does not disturb the rank numbers.
	lagInput := make([]engine.Row, 0, len(ranked))
	for _, r := range ranked {
		year := atoi(r.Dim(dataset.DimYear))
		if year != firstYear && year != lastYear {
			continue
		}
		lagInput = append(lagInput, engine.Row{Dims: r.Dims, Value: float64(r.Rank)})
	}

	lagged := engine.LagByPartition(lagInput, dataset.DimName, dataset.DimYear)

	var deltas []DeltaRow
	for _, r := range lagged {
		if !r.HasPrev {
			continue
		}
		first := int(r.Prev)
		last := int(r.Value)
		deltas = append(deltas, DeltaRow{
			Name:      r.Dim(dataset.DimName),
			FirstRank: first,
			LastRank:  last,
			Delta:     last - first,
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Delta != deltas[j].Delta {
			return deltas[i].Delta < deltas[j].Delta
		}
		return deltas[i].Name < deltas[j].Name
	})
	return deltas, nil
}
