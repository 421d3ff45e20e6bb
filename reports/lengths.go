package reports

import (
	"sort"
	"unicode/utf8"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// NameLengthExtremes reports the k longest and k shortest distinct names in
// the dataset. Names of equal length are included up to the limit; the
// secondary alphabetical order only makes the output deterministic.
func NameLengthExtremes(view engine.RecordView, k int) (*LengthExtremes, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = DefaultLengthCount
	}

	names := engine.UniqueValues(view, dataset.DimName)
	lengths := make([]NameLength, 0, len(names))
	for _, name := range names {
		lengths = append(lengths, NameLength{Name: name, Length: utf8.RuneCountInString(name)})
	}

	byLength := func(descending bool) []NameLength {
		sorted := make([]NameLength, len(lengths))
		copy(sorted, lengths)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Length != sorted[j].Length {
				if descending {
					return sorted[i].Length > sorted[j].Length
				}
				return sorted[i].Length < sorted[j].Length
			}
			return sorted[i].Name < sorted[j].Name
		})
		if len(sorted) > k {
			sorted = sorted[:k]
		}
		return sorted
	}

	return &LengthExtremes{
		Longest:  byLength(true),
		Shortest: byLength(false),
	}, nil
}

// PopularityByLength sums births per name, restricted to names whose length
// is one of the targets (typically the extreme lengths found by
// NameLengthExtremes). Output is ordered descending by total births.
func PopularityByLength(view engine.RecordView, targetLengths []int) ([]NameBirths, error) {
	if err := validateView(view); err != nil {
		return nil, err
	}

	wanted := make(map[int]bool, len(targetLengths))
	for _, l := range targetLengths {
		wanted[l] = true
	}

	rows := engine.GroupSum(view, []string{dataset.DimName}, dataset.MeasureBirths)

	matched := rows[:0:0]
	for _, r := range rows {
		if wanted[utf8.RuneCountInString(r.Dim(dataset.DimName))] {
			matched = append(matched, r)
		}
	}
	engine.SortRowsByValue(matched, true, dataset.DimName)

	var result []NameBirths
	for _, r := range matched {
		result = append(result, NameBirths{Name: r.Dim(dataset.DimName), Births: int(r.Value)})
	}
	return result, nil
}
