package reports

import (
	"sort"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// StatePercentage computes, for each state, the percentage of all recorded births
// carrying the target name. Inner-join semantics: states where the name
// never appears are excluded rather than shown as 0%. Every returned
// percentage therefore lies in (0, 100]. Output is ordered descending by
// percentage, ties alphabetical by state.
func StatePercentage(view engine.RecordView, name string) ([]StateShare, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	totals := engine.GroupSum(view, []string{dataset.DimState}, dataset.MeasureBirths)
	totalByState := make(map[string]float64, len(totals))
	for _, r := range totals {
		totalByState[r.Dim(dataset.DimState)] = r.Value
	}

	filtered := engine.ApplyFilters(view, engine.Filters{
		Dimensions: map[string][]string{dataset.DimName: {name}},
	})
	target := engine.GroupSum(filtered, []string{dataset.DimState}, dataset.MeasureBirths)

	var shares []StateShare
	for _, r := range target {
		state := r.Dim(dataset.DimState)
		total := totalByState[state]
		if r.Value <= 0 || total <= 0 {
			continue
		}
		shares = append(shares, StateShare{
			State:   state,
			Percent: r.Value / total * 100,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].State < shares[j].State
	})
	return shares, nil
}
