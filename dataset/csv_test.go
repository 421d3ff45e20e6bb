package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Source-style export: Id column present, births named Count.
var namesCSV = []byte(`Id,Name,Year,Gender,State,Count
1,Michael,1980,M,CA,120
2,Jessica,1980,F,CA,95
3,Michael,1981,M,NY,80
`)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	records, err := ParseCSV(namesCSV)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, BirthRecord{State: "CA", Gender: "M", Year: 1980, Name: "Michael", Births: 120}, records[0])
	assert.Equal(t, BirthRecord{State: "NY", Gender: "M", Year: 1981, Name: "Michael", Births: 80}, records[2])
}

func TestParseCSVHeaderAliases(t *testing.T) {
	t.Parallel()

	records, err := ParseCSV([]byte(`State Code,Sex,Year,Name,Births
TX,F,1999,Amy,44
`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, BirthRecord{State: "TX", Gender: "F", Year: 1999, Name: "Amy", Births: 44}, records[0])
}

func TestParseCSVMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV([]byte("Name,Year,Gender,State\nAmy,1999,F,TX\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseCSVUnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV([]byte("Name,Year,Gender,State,Count,Mystery\nAmy,1999,F,TX,1,x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mystery")
}

// A malformed row fails the whole load; skipping it would corrupt rankings.
func TestParseCSVMalformedRowFailsLoad(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV([]byte("Name,Year,Gender,State,Count\nAmy,notayear,F,TX,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseCSVRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV([]byte("Name,Year,Gender,State,Count\nAmy,1999,Q,TX,1\n"))
	assert.ErrorIs(t, err, ErrInvalidGender)
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ca := filepath.Join(dir, "ca.csv")
	ny := filepath.Join(dir, "ny.csv")
	require.NoError(t, os.WriteFile(ca, []byte("Name,Year,Gender,State,Count\nEmma,2001,F,CA,9\n"), 0o644))
	require.NoError(t, os.WriteFile(ny, []byte("Name,Year,Gender,State,Count\nLiam,2001,M,NY,7\n"), 0o644))

	records, err := LoadFiles([]string{ca, ny})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CA", records[0].State)
	assert.Equal(t, "NY", records[1].State)
}
