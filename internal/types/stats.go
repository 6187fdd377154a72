package types

// TypeStat is the aggregate for one (country, resistance type) pair.
// Percent keeps full float precision; display rounding happens only at
// render time.
type TypeStat struct {
	Country        string  `json:"country"`
	ResistanceType string  `json:"resistance_type"`
	Count          int     `json:"count"`
	TotalSamples   int     `json:"total_samples"`
	Percent        float64 `json:"percent"`
}

// ResolvedStat is a TypeStat whose country name resolved to an ISO alpha-3
// code. Stats that fail resolution never become ResolvedStats; they are
// dropped from the run.
type ResolvedStat struct {
	TypeStat
	ISOAlpha3 string `json:"iso_alpha"`
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlotPoint is one marker on the bubble map: a resolved stat placed at its
// final coordinate, longitude jitter already applied. Create-once,
// immutable, consumed by the figure builder.
type PlotPoint struct {
	Country        string  `json:"country"`
	ResistanceType string  `json:"resistance_type"`
	ISOAlpha3      string  `json:"iso_alpha"`
	Count          int     `json:"count"`
	TotalSamples   int     `json:"total_samples"`
	Percent        float64 `json:"percent"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}
