// Package layout positions aggregated statistics on the map. Each
// resistance type carries a small fixed longitude offset so bubbles for
// the same country do not sit exactly on top of each other.
package layout

import (
	"github.com/theiaprok/amr-visualizer/internal/types"
)

// jitterByType holds the longitude offset per resistance type, in degrees.
var jitterByType = map[string]float64{
	types.Sensitive: 0.0,
	types.RRTB:      0.2,
	types.MDRTB:     0.4,
	types.PreXDRTB:  0.6,
	types.HRTB:      0.8,
	types.XDRTB:     1.0,
	types.Other:     1.2,
}

// Jitter returns the longitude offset for a resistance type. Unrecognized
// types sit at the country position unshifted.
func Jitter(resistanceType string) float64 {
	return jitterByType[resistanceType]
}

// DefaultCoordinate positions countries whose geocoding lookup produced
// nothing, keeping their bubbles on the map instead of dropping them.
var DefaultCoordinate = types.Coordinate{Lat: 0.0, Lon: 30.0}

// Place merges coordinates into the aggregated statistics, producing one
// plot point per (country, resistance type) pair. Countries absent from
// coords fall back to DefaultCoordinate.
func Place(stats []types.ResolvedStat, coords map[string]types.Coordinate) []types.PlotPoint {
	points := make([]types.PlotPoint, 0, len(stats))
	for _, stat := range stats {
		coord, ok := coords[stat.Country]
		if !ok {
			coord = DefaultCoordinate
		}
		points = append(points, types.PlotPoint{
			Country:        stat.Country,
			ResistanceType: stat.ResistanceType,
			ISOAlpha3:      stat.ISOAlpha3,
			Count:          stat.Count,
			TotalSamples:   stat.TotalSamples,
			Percent:        stat.Percent,
			Lat:            coord.Lat,
			Lon:            coord.Lon + Jitter(stat.ResistanceType),
		})
	}
	return points
}
