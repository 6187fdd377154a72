package figure

import (
	"github.com/theiaprok/amr-visualizer/internal/types"
)

// colorByType assigns each displayed resistance type its bubble color.
var colorByType = map[string]string{
	types.Sensitive: "#008000",
	types.Other:     "#333333",
	types.HRTB:      "#FFD700",
	types.RRTB:      "#FF8C00",
	types.MDRTB:     "#9370DB",
	types.PreXDRTB:  "#F08080",
	types.XDRTB:     "#FF0000",
}

// ColorFor returns the bubble color for a resistance type, gray when the
// type has no assigned color.
func ColorFor(resistanceType string) string {
	if color, ok := colorByType[resistanceType]; ok {
		return color
	}
	return "gray"
}
