package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/onoma-org/onoma/render"
	"github.com/onoma-org/onoma/reports"
)

// ============================================================================
// TABLE BUILDERS — report rows → render.Table
// ============================================================================

func topNamesTable(rows []reports.TopName) *render.Table {
	t := &render.Table{
		Title: "Most popular name per gender",
		Columns: []render.Column{
			{Key: "gender", Label: "Gender", Align: "left"},
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "births", Label: "Births", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Gender, r.Name, render.FormatInt(r.Births)})
	}
	return t
}

func trendTable(label string, rows []reports.TrendPoint) *render.Table {
	t := &render.Table{
		Title: fmt.Sprintf("Popularity rank of %s by year", label),
		Columns: []render.Column{
			{Key: "year", Label: "Year", Align: "left"},
			{Key: "rank", Label: "Rank", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.Year), strconv.Itoa(r.Rank)})
	}
	return t
}

func deltaTable(first, last int, rows []reports.DeltaRow) *render.Table {
	firstLabel, lastLabel := "First", "Last"
	title := "Rank change between years (negative = rose)"
	if first != 0 && last != 0 {
		firstLabel, lastLabel = strconv.Itoa(first), strconv.Itoa(last)
		title = fmt.Sprintf("Rank change %d to %d (negative = rose)", first, last)
	}
	t := &render.Table{
		Title: title,
		Columns: []render.Column{
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "first", Label: firstLabel, Align: "right"},
			{Key: "last", Label: lastLabel, Align: "right"},
			{Key: "delta", Label: "Delta", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Name,
			strconv.Itoa(r.FirstRank),
			strconv.Itoa(r.LastRank),
			render.FormatSigned(r.Delta),
		})
	}
	return t
}

func periodTable(title, periodLabel string, rows []reports.PeriodTopName) *render.Table {
	t := &render.Table{
		Title: title,
		Columns: []render.Column{
			{Key: "period", Label: periodLabel, Align: "left"},
			{Key: "gender", Label: "Gender", Align: "left"},
			{Key: "rank", Label: "Rank", Align: "right"},
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "births", Label: "Births", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Period), r.Gender, strconv.Itoa(r.Rank), r.Name, render.FormatInt(r.Births),
		})
	}
	return t
}

func regionBirthsTable(rows []reports.RegionBirths) *render.Table {
	t := &render.Table{
		Title: "Total births by region",
		Columns: []render.Column{
			{Key: "region", Label: "Region", Align: "left"},
			{Key: "births", Label: "Births", Align: "right"},
		},
	}
	total := 0
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Region, render.FormatInt(r.Births)})
		total += r.Births
	}
	t.Summary = &render.Summary{
		Label:  "Total",
		Values: map[string]string{"births": render.FormatInt(total)},
	}
	return t
}

func regionTopTable(rows []reports.RegionTopName) *render.Table {
	t := &render.Table{
		Title: "Top names by region",
		Columns: []render.Column{
			{Key: "region", Label: "Region", Align: "left"},
			{Key: "gender", Label: "Gender", Align: "left"},
			{Key: "rank", Label: "Rank", Align: "right"},
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "births", Label: "Births", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Region, r.Gender, strconv.Itoa(r.Rank), r.Name, render.FormatInt(r.Births),
		})
	}
	return t
}

func lengthsTable(extremes *reports.LengthExtremes) *render.Table {
	t := &render.Table{
		Title: "Name length extremes",
		Columns: []render.Column{
			{Key: "kind", Label: "Kind", Align: "left"},
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "length", Label: "Length", Align: "right"},
		},
	}
	for _, r := range extremes.Longest {
		t.Rows = append(t.Rows, []string{"longest", r.Name, strconv.Itoa(r.Length)})
	}
	for _, r := range extremes.Shortest {
		t.Rows = append(t.Rows, []string{"shortest", r.Name, strconv.Itoa(r.Length)})
	}
	return t
}

func lengthPopularityTable(lengths []int, rows []reports.NameBirths) *render.Table {
	title := "Popularity of names at the extreme lengths"
	if len(lengths) > 0 {
		title = fmt.Sprintf("Popularity of names with length %v", lengths)
	}
	t := &render.Table{
		Title: title,
		Columns: []render.Column{
			{Key: "name", Label: "Name", Align: "left"},
			{Key: "births", Label: "Births", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Name, render.FormatInt(r.Births)})
	}
	return t
}

func shareTable(name string, rows []reports.StateShare) *render.Table {
	t := &render.Table{
		Title: fmt.Sprintf("Share of births named %s by state", name),
		Columns: []render.Column{
			{Key: "state", Label: "State", Align: "left"},
			{Key: "percent", Label: "Percent", Align: "right"},
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.State, render.FormatPercent(r.Percent)})
	}
	return t
}

// ============================================================================
// SUITE OUTPUT
// ============================================================================

func writeSuiteJSON(w io.Writer, results *reports.Results) error {
	return render.WriteJSON(w, results, true)
}

func writeSuiteTables(a *app, results *reports.Results) error {
	w, closeFn, err := a.output()
	if err != nil {
		return err
	}
	defer closeFn()

	tables := []*render.Table{}
	if results.TopNames != nil {
		tables = append(tables, topNamesTable(results.TopNames))
	}
	for key, trend := range results.Trends {
		tables = append(tables, trendTable(key, trend))
	}
	if results.RankDeltas != nil {
		tables = append(tables, deltaTable(a.settings.Reports.Delta.FirstYear, a.settings.Reports.Delta.LastYear, results.RankDeltas))
	}
	if results.TopPerYear != nil {
		tables = append(tables, periodTable("Top names by year", "Year", results.TopPerYear))
	}
	if results.TopPerDecade != nil {
		tables = append(tables, periodTable("Top names by decade", "Decade", results.TopPerDecade))
	}
	if results.BirthsByRegion != nil {
		tables = append(tables, regionBirthsTable(results.BirthsByRegion))
	}
	if results.TopPerRegion != nil {
		tables = append(tables, regionTopTable(results.TopPerRegion))
	}
	if results.NameLengths != nil {
		tables = append(tables, lengthsTable(results.NameLengths))
	}
	if results.LengthPopularity != nil {
		tables = append(tables, lengthPopularityTable(nil, results.LengthPopularity))
	}
	if results.StateShares != nil {
		tables = append(tables, shareTable(a.settings.Reports.Share.Name, results.StateShares))
	}

	for i, table := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		var writeErr error
		if a.settings.Output.Format == "csv" {
			writeErr = table.WriteCSV(w)
		} else {
			writeErr = table.WriteText(w)
		}
		if writeErr != nil {
			return writeErr
		}
	}
	return nil
}
