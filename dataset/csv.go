package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ============================================================================
// CSV LOADER — Delimited Text → []BirthRecord
// ============================================================================
// The consumer reads the bytes from wherever they live (file, object store).
// Loading is strict: a malformed row fails the whole load instead of being
// skipped, since silent data loss would corrupt rankings.
// ============================================================================

// ParseCSV parses CSV bytes into validated birth records.
func ParseCSV(data []byte) ([]BirthRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	mapping, err := resolveHeader(headers)
	if err != nil {
		return nil, fmt.Errorf("resolve CSV header: %w", err)
	}

	var records []BirthRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row, mapping)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRow(row []string, mapping map[int]string) (BirthRecord, error) {
	var rec BirthRecord
	for i, canonical := range mapping {
		if i >= len(row) {
			return rec, fmt.Errorf("missing value for column %s", canonical)
		}
		val := strings.TrimSpace(row[i])

		switch canonical {
		case colState:
			rec.State = val
		case colGender:
			rec.Gender = val
		case colName:
			rec.Name = val
		case colYear:
			year, err := strconv.Atoi(val)
			if err != nil {
				return rec, fmt.Errorf("year %q: %w", val, err)
			}
			rec.Year = year
		case colBirths:
			births, err := strconv.Atoi(val)
			if err != nil {
				return rec, fmt.Errorf("births %q: %w", val, err)
			}
			rec.Births = births
		}
	}
	return rec, nil
}

// LoadFile reads and parses a single CSV file.
func LoadFile(path string) ([]BirthRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, err := ParseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// LoadFiles loads several CSV files (source data ships one file per state)
// and returns the combined records.
func LoadFiles(paths []string) ([]BirthRecord, error) {
	var all []BirthRecord
	for _, path := range paths {
		records, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}
