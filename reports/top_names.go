package reports

import (
	"sort"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// TopNamesByGender returns, for each gender, the most popular name overall
// by total births. The ranking is computed independently per gender; genders
// never mix. Ties for the top spot all appear, so a gender can contribute
// more than one row.
func TopNamesByGender(view engine.RecordView) ([]TopName, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	rows := engine.GroupSum(view, []string{dataset.DimGender, dataset.DimName}, dataset.MeasureBirths)
	ranked := engine.DenseRank(rows, []string{dataset.DimGender}, true)

	var top []TopName
	for _, r := range ranked {
		if r.Rank != 1 {
			continue
		}
		top = append(top, TopName{
			Gender: r.Dim(dataset.DimGender),
			Name:   r.Dim(dataset.DimName),
			Births: int(r.Value),
		})
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Gender != top[j].Gender {
			return top[i].Gender < top[j].Gender
		}
		return top[i].Name < top[j].Name
	})
	return top, nil
}
