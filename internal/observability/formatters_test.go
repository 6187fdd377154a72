package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

func TestPrintDatasetSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	table := &types.SampleTable{
		Rows: []types.Sample{
			{Country: "Kenya", ResistanceType: "Sensitive"},
			{Country: "Kenya", ResistanceType: "MDR-TB"},
			{Country: "India", ResistanceType: "Sensitive"},
		},
	}

	p.PrintDatasetSummary(table)
	output := buf.String()

	assert.Contains(t, output, "LOADED DATASET")
	assert.Contains(t, output, "Samples:          3")
	assert.Contains(t, output, "Countries:        2")
	assert.Contains(t, output, "Resistance types: 2")
}

func TestPrintDatasetSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDatasetSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAggregates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := []types.TypeStat{
		{Country: "Kenya", ResistanceType: "Sensitive", Count: 8, TotalSamples: 10, Percent: 80},
		{Country: "Kenya", ResistanceType: "MDR-TB", Count: 2, TotalSamples: 10, Percent: 20},
	}

	p.PrintAggregates(stats)
	output := buf.String()

	assert.Contains(t, output, "AGGREGATED SHARES")
	assert.Contains(t, output, "Kenya / Sensitive")
	assert.Contains(t, output, "8 of 10 samples (80.0%)")
	assert.Contains(t, output, "2 of 10 samples (20.0%)")
}

func TestPrintAggregates_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := make([]types.TypeStat, 8)
	for i := range stats {
		stats[i] = types.TypeStat{Country: "Kenya", ResistanceType: "Sensitive", Count: 1, TotalSamples: 8}
	}

	p.PrintAggregates(stats)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more pairs")
}

func TestPrintDroppedCountries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDroppedCountries([]string{"Atlantis", "Middle Earth"})
	output := buf.String()

	assert.Contains(t, output, "UNRECOGNIZED COUNTRIES")
	assert.Contains(t, output, "Atlantis")
	assert.Contains(t, output, "Middle Earth")
}

func TestPrintDroppedCountries_NoneDropped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDroppedCountries(nil)
	output := buf.String()

	assert.Contains(t, output, "ALL COUNTRIES RECOGNIZED")
}

func TestPrintCoordinates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	countries := []string{"Kenya", "Atlantis"}
	coords := map[string]types.Coordinate{
		"Kenya": {Lat: -0.1769, Lon: 37.9083},
	}

	p.PrintCoordinates(countries, coords)
	output := buf.String()

	assert.Contains(t, output, "COUNTRY COORDINATES")
	assert.Contains(t, output, "Resolved 1 of 2 countries")
	assert.Contains(t, output, "Kenya")
	assert.Contains(t, output, "-0.1769")
	assert.Contains(t, output, "(default position)")
}

func TestPrintCoordinates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCoordinates(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := []types.TypeStat{
		{Country: "The United Kingdom of Great Britain and Northern Ireland", ResistanceType: "Pre-XDR-TB", Count: 1, TotalSamples: 1, Percent: 100},
	}

	p.PrintAggregates(stats)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
