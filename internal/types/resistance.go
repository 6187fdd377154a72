package types

// Resistance type labels as emitted by TBProfiler in the
// tbprofiler_dr_type column.
const (
	Sensitive = "Sensitive"
	Other     = "Other"
	HRTB      = "HR-TB"
	RRTB      = "RR-TB"
	MDRTB     = "MDR-TB"
	PreXDRTB  = "Pre-XDR-TB"
	XDRTB     = "XDR-TB"
)

// SelectedTypes returns the resistance categories included in the rendered
// figure, in legend order. Labels outside this list are excluded by the
// figure builder even when they survive the earlier filters.
func SelectedTypes() []string {
	return []string{Sensitive, Other, HRTB, RRTB, MDRTB, PreXDRTB, XDRTB}
}

// IsSelected reports whether a resistance type label is one of the seven
// displayed categories.
func IsSelected(resistanceType string) bool {
	for _, t := range SelectedTypes() {
		if t == resistanceType {
			return true
		}
	}
	return false
}

// descriptions holds the clinical gloss shown under the legend for each
// displayed category. Line breaks are HTML so the strings flow into figure
// annotations unchanged; they keep the footnote column narrow.
var descriptions = map[string]string{
	Sensitive: "No drug<br>resistance",
	Other:     "Other<br>resistance patterns",
	HRTB:      "Isoniazid-<br>resistant TB",
	RRTB:      "Rifampicin-<br>resistant TB",
	MDRTB:     "Resistant to Isoniazid<br>& Rifampicin",
	PreXDRTB:  "MDR-TB + resistance<br>to a Fluoroquinolone",
	XDRTB:     "MDR-TB + resistance<br>to Fluoroquinolone<br>& one Group A drug",
}

// Description returns the clinical gloss for a displayed resistance type,
// or "" for labels outside the selected set.
func Description(resistanceType string) string {
	return descriptions[resistanceType]
}
