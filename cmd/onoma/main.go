package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/onoma-org/onoma/config"
	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
	"github.com/onoma-org/onoma/regions"
	"github.com/onoma-org/onoma/render"
	"github.com/onoma-org/onoma/store"
)

// ============================================================================
// ONOMA CLI — Analytics over the State Baby-Names Dataset
// ============================================================================

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries flag state and resolved settings shared by every subcommand.
type app struct {
	cfgPath string
	files   []string
	dbPath  string
	format  string
	outPath string
	debug   bool

	settings *config.Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "onoma",
		Short:         "Analytics over the state baby-names dataset",
		Long:          "Onoma computes name rankings, rank deltas, regional aggregates and\ndescriptive statistics over a static baby-names dataset.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default ./onoma.yaml)")
	pf.StringSliceVar(&a.files, "file", nil, "CSV input file, repeatable")
	pf.StringVar(&a.dbPath, "db", "", "SQLite snapshot to read instead of CSV files")
	pf.StringVarP(&a.format, "format", "f", "", "output format: table, csv, json")
	pf.StringVarP(&a.outPath, "out", "o", "", "write output to file instead of stdout")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newImportCmd(a),
		newAllCmd(a),
		newTopNamesCmd(a),
		newTrendCmd(a),
		newRankDeltaCmd(a),
		newTopByYearCmd(a),
		newTopByDecadeCmd(a),
		newRegionsCmd(a),
		newTopByRegionCmd(a),
		newNameLengthsCmd(a),
		newLengthPopularityCmd(a),
		newStateShareCmd(a),
	)
	return root
}

// init resolves settings: config file first, CLI flags override.
func (a *app) init() error {
	settings, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	if len(a.files) > 0 {
		settings.Input.Files = a.files
	}
	if a.dbPath != "" {
		settings.Input.Database = a.dbPath
	}
	if a.format != "" {
		settings.Output.Format = a.format
	}
	if a.outPath != "" {
		settings.Output.Path = a.outPath
	}
	if a.debug {
		settings.Debug = true
	}
	a.settings = settings

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

// loadInputs loads the record view and the normalized region mapping from
// whichever source is configured. CSV files win over the database; per-file
// views are merged without copying.
func (a *app) loadInputs(ctx context.Context) (engine.RecordView, map[string]string, error) {
	if files := a.settings.Input.Files; len(files) > 0 {
		views := make([]engine.RecordView, 0, len(files))
		total := 0
		for _, path := range files {
			records, err := dataset.LoadFile(path)
			if err != nil {
				return nil, nil, err
			}
			total += len(records)
			views = append(views, dataset.NewView(records))
		}
		a.logger.Debug("loaded records from CSV", "files", len(files), "records", total)
		return engine.Concat(views...), regions.Normalize(regions.Default()), nil
	}

	if path := a.settings.Input.Database; path != "" {
		st, err := store.Open(path, a.logger)
		if err != nil {
			return nil, nil, err
		}
		defer st.Close()

		records, err := st.LoadRecords(ctx)
		if err != nil {
			return nil, nil, err
		}
		raw, err := st.LoadRegions(ctx)
		if err != nil {
			return nil, nil, err
		}
		if len(raw) == 0 {
			raw = regions.Default()
		}
		a.logger.Debug("loaded records from database", "path", path, "records", len(records))
		return dataset.NewView(records), regions.Normalize(raw), nil
	}

	return nil, nil, fmt.Errorf("no input: pass --file or --db (or set input in the config)")
}

// output opens the configured output writer. The caller must call the
// returned close function.
func (a *app) output() (io.Writer, func() error, error) {
	if a.settings.Output.Path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(a.settings.Output.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// emit renders one table in the configured format. jsonVal is the raw value
// serialized when the format is json (typed rows, not the table shell).
func (a *app) emit(table *render.Table, jsonVal any) error {
	w, closeFn, err := a.output()
	if err != nil {
		return err
	}
	defer closeFn()

	switch a.settings.Output.Format {
	case "csv":
		return table.WriteCSV(w)
	case "json":
		return render.WriteJSON(w, jsonVal, true)
	default:
		return table.WriteText(w)
	}
}
