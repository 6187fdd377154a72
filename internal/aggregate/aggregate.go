// Package aggregate computes per-country drug-resistance statistics from
// the cleaned sample table.
package aggregate

import (
	"sort"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// groupKey identifies one (country, resistance type) group.
type groupKey struct {
	country        string
	resistanceType string
}

// Aggregate groups the table by country for totals and by (country,
// resistance type) for counts, joins the two on country, and derives
// percent = 100 x count / total with plain float division. Rounding is
// left to the renderer. Output is sorted by country then resistance type
// so downstream artifacts are deterministic.
//
// A country appears only when it has at least one qualifying row, so the
// joined total is always positive and the division cannot degenerate.
func Aggregate(table *types.SampleTable) []types.TypeStat {
	totals := make(map[string]int)
	counts := make(map[groupKey]int)
	for _, row := range table.Rows {
		totals[row.Country]++
		counts[groupKey{row.Country, row.ResistanceType}]++
	}

	stats := make([]types.TypeStat, 0, len(counts))
	for k, count := range counts {
		total := totals[k.country]
		stats = append(stats, types.TypeStat{
			Country:        k.country,
			ResistanceType: k.resistanceType,
			Count:          count,
			TotalSamples:   total,
			Percent:        float64(count) / float64(total) * 100,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Country != stats[j].Country {
			return stats[i].Country < stats[j].Country
		}
		return stats[i].ResistanceType < stats[j].ResistanceType
	})

	return stats
}
