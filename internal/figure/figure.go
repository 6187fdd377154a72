package figure

import (
	"fmt"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// FigureTitle is the heading shown above the map.
const FigureTitle = "<b>Tuberculosis Drug Resistance Patterns by Country / Region (% of tbprofiler_dr_type)</b>"

// hoverTemplate renders the tooltip from each point's customdata row:
// country, resistance type, count, total samples, percent.
const hoverTemplate = "<b>Country:</b> %{customdata[0]}<br>" +
	"<b>Resistance Type:</b> %{customdata[1]}<br>" +
	"<b>Count:</b> %{customdata[2]}<br>" +
	"<b>Total Samples:</b> %{customdata[3]}<br>" +
	"<b>Percent:</b> %{customdata[4]:.1f}%<extra></extra>"

// Build assembles the bubble-map figure from placed points. Points whose
// resistance type is not one of the displayed seven are left out entirely;
// one trace per displayed type is emitted in legend order even when it has
// no points, so the legend always lists the full classification.
func Build(points []types.PlotPoint) *Figure {
	displayed := make([]types.PlotPoint, 0, len(points))
	for _, point := range points {
		if types.IsSelected(point.ResistanceType) {
			displayed = append(displayed, point)
		}
	}

	// Bubble area scales against the largest displayed percent, sized so
	// that the largest bubble is 40px across.
	maxPercent := 0.0
	for _, point := range displayed {
		if point.Percent > maxPercent {
			maxPercent = point.Percent
		}
	}
	sizeRef := 2.0 * maxPercent / (40.0 * 40.0)

	selected := types.SelectedTypes()
	traces := make([]Trace, 0, len(selected))
	for _, resistanceType := range selected {
		traces = append(traces, buildTrace(resistanceType, displayed, sizeRef))
	}

	return &Figure{
		Data:   traces,
		Layout: buildLayout(),
	}
}

func buildTrace(resistanceType string, displayed []types.PlotPoint, sizeRef float64) Trace {
	lat := make([]float64, 0)
	lon := make([]float64, 0)
	size := make([]float64, 0)
	text := make([]string, 0)
	customData := make([][]any, 0)

	for _, point := range displayed {
		if point.ResistanceType != resistanceType {
			continue
		}
		lat = append(lat, point.Lat)
		lon = append(lon, point.Lon)
		size = append(size, point.Percent)
		text = append(text, fmt.Sprintf("%.1f%%", point.Percent))
		customData = append(customData, []any{
			point.Country,
			point.ResistanceType,
			point.Count,
			point.TotalSamples,
			point.Percent,
		})
	}

	return Trace{
		Type: "scattergeo",
		Lat:  lat,
		Lon:  lon,
		Marker: Marker{
			Size:     size,
			Color:    ColorFor(resistanceType),
			Line:     MarkerLine{Width: 0.5, Color: "white"},
			SizeMode: "area",
			SizeRef:  sizeRef,
			SizeMin:  4,
		},
		Name:          resistanceType,
		HoverTemplate: hoverTemplate,
		Text:          text,
		TextPosition:  "middle center",
		CustomData:    customData,
		ShowLegend:    true,
	}
}

func buildLayout() Layout {
	return Layout{
		Title: Title{
			Text:    FigureTitle,
			X:       0.45,
			XAnchor: "center",
			Font:    Font{Size: 20},
		},
		Height: 1000,
		Width:  1850,
		Geo: Geo{
			Scope:         "world",
			Projection:    Projection{Type: "natural earth"},
			ShowLand:      true,
			LandColor:     "rgb(230, 230, 230)",
			ShowCountries: true,
			CountryColor:  "white",
			Domain: Domain{
				X: [2]float64{0.0, 0.96},
				Y: [2]float64{0.1, 0.98},
			},
		},
		Legend: Legend{
			Title: LegendTitle{
				Text: "<b>Resistance Type&nbsp;&nbsp;&nbsp;</b>",
				Font: Font{Size: 13, Color: "black"},
			},
			Orientation: "v",
			X:           0.90,
			Y:           0.97,
			XAnchor:     "left",
			Font:        Font{Size: 14, Color: "black"},
		},
		Annotations: []Annotation{
			{
				Text:      Footnote,
				X:         0.90,
				Y:         0.09,
				XRef:      "paper",
				YRef:      "paper",
				ShowArrow: false,
				Align:     "left",
				Font:      Font{Size: 14, Color: "black"},
				XAnchor:   "left",
			},
		},
		Margin: Margin{Right: 60, Top: 60, Left: 10, Bottom: 100},
	}
}
