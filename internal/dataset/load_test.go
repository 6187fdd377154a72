package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// writeTSV writes content to a temp file and returns its path.
func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_KeepsCompleteRows(t *testing.T) {
	content := "sample_id\tCountry_of_sample_collection\ttbprofiler_dr_type\n" +
		"s1\tKenya\tSensitive\n" +
		"s2\tKenya\tMDR-TB\n" +
		"s3\tPeru\tRR-TB\n"

	table, err := Load(writeTSV(t, content))
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, types.Sample{Country: "Kenya", ResistanceType: "Sensitive"}, table.Rows[0])
	assert.Equal(t, types.Sample{Country: "Peru", ResistanceType: "RR-TB"}, table.Rows[2])
}

func TestLoad_DropsRowsWithMissingFields(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"empty country", "s1\t\tSensitive"},
		{"empty resistance type", "s2\tKenya\t"},
		{"NA country", "s3\tNA\tSensitive"},
		{"n/a resistance type", "s4\tKenya\tn/a"},
		{"whitespace-only country", "s5\t   \tSensitive"},
		{"null resistance type", "s6\tKenya\tnull"},
		{"None country", "s7\tNone\tSensitive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "sample_id\tCountry_of_sample_collection\ttbprofiler_dr_type\n" +
				tt.row + "\n" +
				"keep\tKenya\tSensitive\n"

			table, err := Load(writeTSV(t, content))
			require.NoError(t, err)
			require.Len(t, table.Rows, 1, "only the complete row should survive")
			assert.Equal(t, "Kenya", table.Rows[0].Country)
		})
	}
}

func TestLoad_PreservesFieldValuesVerbatim(t *testing.T) {
	// Values are not trimmed; a trailing space makes a distinct country for
	// grouping, exactly as the source data has it.
	content := "Country_of_sample_collection\ttbprofiler_dr_type\n" +
		"Kenya \tSensitive\n"

	table, err := Load(writeTSV(t, content))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Kenya ", table.Rows[0].Country)
}

func TestLoad_MissingCountryColumn(t *testing.T) {
	content := "sample_id\ttbprofiler_dr_type\n" +
		"s1\tSensitive\n"

	table, err := Load(writeTSV(t, content))
	assert.Nil(t, table)
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), CountryColumn)
}

func TestLoad_MissingResistanceColumn(t *testing.T) {
	content := "sample_id\tCountry_of_sample_collection\n" +
		"s1\tKenya\n"

	_, err := Load(writeTSV(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ResistanceColumn)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeTSV(t, ""))
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_MalformedRow(t *testing.T) {
	// Wrong delimiter produces a single-column header, then the required
	// columns cannot be found.
	content := "Country_of_sample_collection,tbprofiler_dr_type\n" +
		"Kenya,Sensitive\n"

	_, err := Load(writeTSV(t, content))
	require.Error(t, err)
}

func TestLoad_InconsistentFieldCount(t *testing.T) {
	content := "Country_of_sample_collection\ttbprofiler_dr_type\n" +
		"Kenya\tSensitive\textra\tfields\n"

	_, err := Load(writeTSV(t, content))
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "malformed row")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.tsv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_HeaderOnly(t *testing.T) {
	content := "Country_of_sample_collection\ttbprofiler_dr_type\n"

	table, err := Load(writeTSV(t, content))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}
