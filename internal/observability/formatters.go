// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDatasetSummary outputs row and column coverage of the loaded table.
func (p *Printer) PrintDatasetSummary(table *types.SampleTable) {
	if table == nil || len(table.Rows) == 0 {
		return
	}

	countries := make(map[string]bool)
	resistanceTypes := make(map[string]bool)
	for _, row := range table.Rows {
		countries[row.Country] = true
		resistanceTypes[row.ResistanceType] = true
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples:          %d\n", len(table.Rows)))
	sb.WriteString(fmt.Sprintf("Countries:        %d\n", len(countries)))
	sb.WriteString(fmt.Sprintf("Resistance types: %d", len(resistanceTypes)))

	p.printBox("LOADED DATASET", sb.String())
}

// PrintAggregates outputs the per-country shares, a few at a time.
func (p *Printer) PrintAggregates(stats []types.TypeStat) {
	if len(stats) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total (country, type) pairs: %d\n\n", len(stats)))

	count := min(len(stats), maxItemsToShow)
	for i := 0; i < count; i++ {
		stat := stats[i]
		label := fmt.Sprintf("%s / %s", stat.Country, stat.ResistanceType)
		if len(label) > 50 {
			label = label[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", label))
		sb.WriteString(fmt.Sprintf("  %d of %d samples (%.1f%%)\n", stat.Count, stat.TotalSamples, stat.Percent))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(stats) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more pairs", len(stats)-maxItemsToShow))
	}

	p.printBox("AGGREGATED SHARES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDroppedCountries outputs the countries excluded because they match
// no ISO 3166-1 entry.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDroppedCountries(dropped []string) {
	if len(dropped) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL COUNTRIES RECOGNIZED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dropped %d unrecognized countries:\n\n", len(dropped)))

	for i, name := range dropped {
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", name))
		if i < len(dropped)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("UNRECOGNIZED COUNTRIES", sb.String())
}

// PrintCoordinates outputs the resolved positions, marking countries that
// fell back to the default location.
func (p *Printer) PrintCoordinates(countries []string, coords map[string]types.Coordinate) {
	if len(countries) == 0 {
		return
	}

	resolved := 0
	for _, country := range countries {
		if _, ok := coords[country]; ok {
			resolved++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resolved %d of %d countries\n\n", resolved, len(countries)))

	count := min(len(countries), maxItemsToShow)
	for i := 0; i < count; i++ {
		country := countries[i]
		name := country
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		if coord, ok := coords[country]; ok {
			sb.WriteString(fmt.Sprintf("%-24s %9.4f, %9.4f\n", name, coord.Lat, coord.Lon))
		} else {
			sb.WriteString(fmt.Sprintf("%-24s (default position)\n", name))
		}
	}

	if len(countries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more countries\n", len(countries)-maxItemsToShow))
	}

	p.printBox("COUNTRY COORDINATES", strings.TrimSuffix(sb.String(), "\n"))
}
