// Package store persists the names dataset in SQLite. It exists for the
// one-time load: import the source CSV once, then analyses read the snapshot
// back without re-parsing text files. The analytical views never touch the
// database — they operate on the in-memory records this package returns.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/regions"
)

//go:embed schema.sql
var schemaSQL string

// Store provides SQLite-backed persistence for the names dataset.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens a SQLite store at the given path.
// It configures pragmas and runs the schema migration.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single writer; the dataset loads once and is read-only after.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportRecords bulk-loads birth records in a single transaction.
// Records are validated first; invalid input fails the whole import.
func (s *Store) ImportRecords(ctx context.Context, records []dataset.BirthRecord) error {
	if err := dataset.Validate(records); err != nil {
		return fmt.Errorf("validate records: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO birth_records (state, gender, year, name, births) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.State, r.Gender, r.Year, r.Name, r.Births); err != nil {
			return fmt.Errorf("insert record %s/%s/%d/%s: %w", r.State, r.Gender, r.Year, r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	s.logger.Info("imported birth records", "count", len(records))
	return nil
}

// ImportRegions replaces the raw state→region table.
func (s *Store) ImportRegions(ctx context.Context, mappings []regions.StateRegion) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM state_regions`); err != nil {
		return fmt.Errorf("clear state_regions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO state_regions (state, region) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range mappings {
		if _, err := stmt.ExecContext(ctx, m.State, m.Region); err != nil {
			return fmt.Errorf("insert mapping %s: %w", m.State, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	s.logger.Info("imported region mappings", "count", len(mappings))
	return nil
}

// LoadRecords reads the full birth-record snapshot back for analysis.
func (s *Store) LoadRecords(ctx context.Context) ([]dataset.BirthRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT state, gender, year, name, births FROM birth_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query birth_records: %w", err)
	}
	defer rows.Close()

	var records []dataset.BirthRecord
	for rows.Next() {
		var r dataset.BirthRecord
		if err := rows.Scan(&r.State, &r.Gender, &r.Year, &r.Name, &r.Births); err != nil {
			return nil, fmt.Errorf("scan birth_records: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate birth_records: %w", err)
	}
	return records, nil
}

// LoadRegions reads the raw state→region table. An empty table means no
// import has happened yet; callers fall back to regions.Default.
func (s *Store) LoadRegions(ctx context.Context) ([]regions.StateRegion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT state, region FROM state_regions ORDER BY state`)
	if err != nil {
		return nil, fmt.Errorf("query state_regions: %w", err)
	}
	defer rows.Close()

	var mappings []regions.StateRegion
	for rows.Next() {
		var m regions.StateRegion
		if err := rows.Scan(&m.State, &m.Region); err != nil {
			return nil, fmt.Errorf("scan state_regions: %w", err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate state_regions: %w", err)
	}
	return mappings, nil
}

// CountRecords returns the number of stored birth records.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM birth_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count birth_records: %w", err)
	}
	return n, nil
}
