// Package dataset loads and cleans the tab-separated tuberculosis sample
// table that feeds the visualization pipeline.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// Required column names in the input header.
const (
	CountryColumn    = "Country_of_sample_collection"
	ResistanceColumn = "tbprofiler_dr_type"
)

// naSentinels are the conventional missing-value spellings. A field equal to
// one of these (case-insensitive, after trimming) is treated as absent.
var naSentinels = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// isMissing reports whether a field value counts as absent.
func isMissing(value string) bool {
	_, ok := naSentinels[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Load reads a tab-delimited sample table from path and returns the rows
// that carry both a country and a resistance type. Rows missing either
// field are dropped; everything else about a row is preserved verbatim.
// Structural problems (missing file, missing required columns, inconsistent
// field counts) are fatal.
func Load(path string) (*types.SampleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	table, err := parse(f, path)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// parse consumes the TSV content. The header row is required; required
// columns are located by exact name.
func parse(r io.Reader, path string) (*types.SampleTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Path: path, Message: "input is empty"}
		}
		return nil, &FormatError{Path: path, Message: "failed to read header row", Cause: err}
	}

	countryIdx, resistanceIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case CountryColumn:
			countryIdx = i
		case ResistanceColumn:
			resistanceIdx = i
		}
	}
	if countryIdx < 0 {
		return nil, &FormatError{Path: path, Message: fmt.Sprintf("required column %q not found in header", CountryColumn)}
	}
	if resistanceIdx < 0 {
		return nil, &FormatError{Path: path, Message: fmt.Sprintf("required column %q not found in header", ResistanceColumn)}
	}

	var rows []types.Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Message: "malformed row", Cause: err}
		}

		country := record[countryIdx]
		resistance := record[resistanceIdx]
		if isMissing(country) || isMissing(resistance) {
			continue
		}
		rows = append(rows, types.Sample{
			Country:        country,
			ResistanceType: resistance,
		})
	}

	return &types.SampleTable{Rows: rows}, nil
}
