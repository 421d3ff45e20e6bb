package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onoma-org/onoma/reports"
)

// ============================================================================
// REPORT COMMANDS — one subcommand per analytical view
// ============================================================================

func newTopNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top-names",
		Short: "Most popular name per gender over the whole dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.TopNamesByGender(view)
			if err != nil {
				return err
			}
			return a.emit(topNamesTable(rows), rows)
		},
	}
}

func newTrendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend [name]",
		Short: "Trace a name's yearly popularity rank",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.settings.Reports.Trend.Name
			if len(args) == 1 {
				name = args[0]
			}
			gender, _ := cmd.Flags().GetString("gender")
			if gender == "" {
				gender = a.settings.Reports.Trend.Gender
			}

			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.NameTrend(view, name, gender)
			if err != nil {
				return err
			}
			return a.emit(trendTable(fmt.Sprintf("%s (%s)", name, gender), rows), rows)
		},
	}
	cmd.Flags().StringP("gender", "g", "", "gender partition to rank within (M or F)")
	return cmd
}

func newRankDeltaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank-delta",
		Short: "Rank change for names present in both compared years",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, _ := cmd.Flags().GetInt("first")
			last, _ := cmd.Flags().GetInt("last")
			if first == 0 {
				first = a.settings.Reports.Delta.FirstYear
			}
			if last == 0 {
				last = a.settings.Reports.Delta.LastYear
			}
			if first == 0 || last == 0 {
				return fmt.Errorf("both --first and --last years are required")
			}

			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.RankDelta(view, first, last)
			if err != nil {
				return err
			}
			return a.emit(deltaTable(first, last, rows), rows)
		},
	}
	cmd.Flags().Int("first", 0, "first year to compare")
	cmd.Flags().Int("last", 0, "last year to compare")
	return cmd
}

func newTopByYearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-by-year",
		Short: "Top N names per year and gender",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := topN(cmd, a)
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.TopPerYear(view, n)
			if err != nil {
				return err
			}
			return a.emit(periodTable("Top names by year", "Year", rows), rows)
		},
	}
	cmd.Flags().IntP("top", "n", 0, "names per partition")
	return cmd
}

func newTopByDecadeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-by-decade",
		Short: "Top N names per decade and gender",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := topN(cmd, a)
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.TopPerDecade(view, n)
			if err != nil {
				return err
			}
			return a.emit(periodTable("Top names by decade", "Decade", rows), rows)
		},
	}
	cmd.Flags().IntP("top", "n", 0, "names per partition")
	return cmd
}

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Total births per region (unmapped states bucketed, not dropped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, mapping, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.BirthsByRegion(view, mapping)
			if err != nil {
				return err
			}
			return a.emit(regionBirthsTable(rows), rows)
		},
	}
}

func newTopByRegionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-by-region",
		Short: "Top N names per region and gender",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := topN(cmd, a)
			view, mapping, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.TopPerRegion(view, mapping, n)
			if err != nil {
				return err
			}
			return a.emit(regionTopTable(rows), rows)
		},
	}
	cmd.Flags().IntP("top", "n", 0, "names per partition")
	return cmd
}

func newNameLengthsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name-lengths",
		Short: "Longest and shortest distinct names",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, _ := cmd.Flags().GetInt("count")
			if k == 0 {
				k = a.settings.Reports.Lengths.Count
			}
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			extremes, err := reports.NameLengthExtremes(view, k)
			if err != nil {
				return err
			}
			return a.emit(lengthsTable(extremes), extremes)
		},
	}
	cmd.Flags().IntP("count", "k", 0, "names to keep per extreme")
	return cmd
}

func newLengthPopularityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "length-popularity",
		Short: "Total births per name, restricted to the extreme name lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			lengths, _ := cmd.Flags().GetIntSlice("length")
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			if len(lengths) == 0 {
				extremes, err := reports.NameLengthExtremes(view, 1)
				if err != nil {
					return err
				}
				for _, nl := range extremes.Shortest {
					lengths = append(lengths, nl.Length)
				}
				for _, nl := range extremes.Longest {
					lengths = append(lengths, nl.Length)
				}
			}
			rows, err := reports.PopularityByLength(view, lengths)
			if err != nil {
				return err
			}
			return a.emit(lengthPopularityTable(lengths, rows), rows)
		},
	}
	cmd.Flags().IntSlice("length", nil, "exact name lengths to include (default: the extremes)")
	return cmd
}

func newStateShareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state-share [name]",
		Short: "Per-state percentage of births carrying a name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.settings.Reports.Share.Name
			if len(args) == 1 {
				name = args[0]
			}
			view, _, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := reports.StatePercentage(view, name)
			if err != nil {
				return err
			}
			return a.emit(shareTable(name, rows), rows)
		},
	}
}

// topN resolves the per-partition limit: flag first, then config.
func topN(cmd *cobra.Command, a *app) int {
	n, _ := cmd.Flags().GetInt("top")
	if n == 0 {
		n = a.settings.Reports.TopN
	}
	return n
}
