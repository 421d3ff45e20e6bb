package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/regions"
	"github.com/onoma-org/onoma/reports"
	"github.com/onoma-org/onoma/store"
)

// newImportCmd creates the one-time load: CSV files into a SQLite snapshot,
// together with the raw state→region table.
func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.csv ...]",
		Short: "Load CSV files into a SQLite snapshot (one-time schema/data load)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings.Input.Database == "" {
				return fmt.Errorf("--db is required for import")
			}

			records, err := dataset.LoadFiles(args)
			if err != nil {
				return err
			}

			st, err := store.Open(a.settings.Input.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			if err := st.ImportRecords(ctx, records); err != nil {
				return err
			}
			if err := st.ImportRegions(ctx, regions.Default()); err != nil {
				return err
			}

			count, err := st.CountRecords(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s (%d total)\n",
				len(records), a.settings.Input.Database, count)
			return nil
		},
	}
}

// newAllCmd runs the full report suite concurrently over one snapshot.
func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every analytical view",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, mapping, err := a.loadInputs(cmd.Context())
			if err != nil {
				return err
			}

			cfg := a.settings.Reports
			opts := []reports.Option{
				reports.WithTopN(cfg.TopN),
				reports.WithLengthCount(cfg.Lengths.Count),
				reports.WithShareName(cfg.Share.Name),
				reports.WithLogger(a.logger),
			}
			if cfg.Trend.Name != "" {
				opts = append(opts, reports.WithTrendTarget(cfg.Trend.Name, cfg.Trend.Gender))
			}
			if cfg.Delta.FirstYear != 0 && cfg.Delta.LastYear != 0 {
				opts = append(opts, reports.WithDeltaYears(cfg.Delta.FirstYear, cfg.Delta.LastYear))
			}

			results := reports.NewSuite(view, mapping, opts...).Run(cmd.Context())

			if a.settings.Output.Format == "json" {
				w, closeFn, err := a.output()
				if err != nil {
					return err
				}
				defer closeFn()
				if err := writeSuiteJSON(w, results); err != nil {
					return err
				}
			} else {
				if err := writeSuiteTables(a, results); err != nil {
					return err
				}
			}

			if len(results.Errors) > 0 {
				for name, viewErr := range results.Errors {
					a.logger.Error("view failed", "view", name, "error", viewErr)
				}
				return fmt.Errorf("%d of the views failed", len(results.Errors))
			}
			return nil
		},
	}
}
