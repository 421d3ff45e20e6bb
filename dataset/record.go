package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/onoma-org/onoma/engine"
)

// ============================================================================
// DATASET — Birth Records and Engine Binding
// ============================================================================
// BirthRecord is the one domain type. Records are loaded once, validated,
// and bound read-only through engine.DomainAdapter. No mutation API exists.
// ============================================================================

// Dimension and measure keys exposed by the record view.
const (
	DimState  = "state"
	DimGender = "gender"
	DimYear   = "year"
	DimDecade = "decade" // virtual: floor(year/10)*10
	DimName   = "name"
	DimRegion = "region" // virtual: attached via regions lookup

	MeasureBirths = "births"
)

// Validation sentinels. Wrapped with row context by Validate.
var (
	ErrInvalidGender  = errors.New("gender must be M or F")
	ErrInvalidState   = errors.New("state must be a two-letter code")
	ErrNegativeBirths = errors.New("births must be non-negative")
)

// BirthRecord is a single row of the names dataset.
// Multiple records may share the full (state, gender, year, name) key in raw
// input; every grouped view sums births across such duplicates.
type BirthRecord struct {
	State  string `json:"state"`
	Gender string `json:"gender"`
	Year   int    `json:"year"`
	Name   string `json:"name"`
	Births int    `json:"births"`
}

// Validate checks a single record against the dataset invariants.
func (r BirthRecord) Validate() error {
	if r.Gender != "M" && r.Gender != "F" {
		return fmt.Errorf("%w: %q", ErrInvalidGender, r.Gender)
	}
	if len(r.State) != 2 || !isUpperAlpha(r.State) {
		return fmt.Errorf("%w: %q", ErrInvalidState, r.State)
	}
	if r.Births < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBirths, r.Births)
	}
	return nil
}

// Validate checks every record, failing on the first invalid one.
// Silent skipping would corrupt rankings, so the whole batch is rejected.
func Validate(records []BirthRecord) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func isUpperAlpha(s string) bool {
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// adapter binds BirthRecord fields as engine dimensions and measures.
// Declared once; Bind is zero-copy. The decade dimension is derived on read,
// the same way a SQL view would compute floor(year/10)*10.
var adapter = engine.NewDomainAdapter[BirthRecord]().
	Dimension(DimState, func(r BirthRecord) string { return r.State }).
	Dimension(DimGender, func(r BirthRecord) string { return r.Gender }).
	Dimension(DimYear, func(r BirthRecord) string { return strconv.Itoa(r.Year) }).
	Dimension(DimDecade, func(r BirthRecord) string { return strconv.Itoa(r.Year / 10 * 10) }).
	Dimension(DimName, func(r BirthRecord) string { return r.Name }).
	Measure(MeasureBirths, func(r BirthRecord) float64 { return float64(r.Births) })

// NewView binds records as a read-only engine view.
func NewView(records []BirthRecord) engine.RecordView {
	return adapter.Bind(records)
}
