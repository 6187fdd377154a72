package figure

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

func kenyaPoints() []types.PlotPoint {
	return []types.PlotPoint{
		{Country: "Kenya", ResistanceType: "Sensitive", ISOAlpha3: "KEN", Count: 8, TotalSamples: 10, Percent: 80, Lat: -0.17, Lon: 37.9},
		{Country: "Kenya", ResistanceType: "MDR-TB", ISOAlpha3: "KEN", Count: 2, TotalSamples: 10, Percent: 20, Lat: -0.17, Lon: 38.3},
	}
}

func TestBuild_OneTracePerDisplayedType(t *testing.T) {
	fig := Build(kenyaPoints())

	require.Len(t, fig.Data, 7)
	names := make([]string, 0, len(fig.Data))
	for _, trace := range fig.Data {
		names = append(names, trace.Name)
		assert.Equal(t, "scattergeo", trace.Type)
		assert.True(t, trace.ShowLegend)
	}
	assert.Equal(t, []string{"Sensitive", "Other", "HR-TB", "RR-TB", "MDR-TB", "Pre-XDR-TB", "XDR-TB"}, names)

	// Types without points still get a legend entry, backed by empty
	// coordinate arrays rather than nulls.
	xdr := fig.Data[6]
	require.NotNil(t, xdr.Lat)
	require.NotNil(t, xdr.Lon)
	assert.Empty(t, xdr.Lat)
	assert.Empty(t, xdr.Text)
	assert.Empty(t, xdr.CustomData)
	assert.Equal(t, "#FF0000", xdr.Marker.Color)
}

func TestBuild_TraceColors(t *testing.T) {
	fig := Build(kenyaPoints())

	wantColors := map[string]string{
		"Sensitive":  "#008000",
		"Other":      "#333333",
		"HR-TB":      "#FFD700",
		"RR-TB":      "#FF8C00",
		"MDR-TB":     "#9370DB",
		"Pre-XDR-TB": "#F08080",
		"XDR-TB":     "#FF0000",
	}
	for _, trace := range fig.Data {
		assert.Equal(t, wantColors[trace.Name], trace.Marker.Color, trace.Name)
	}
}

func TestColorFor_UnknownType(t *testing.T) {
	assert.Equal(t, "gray", ColorFor("Mystery-TB"))
}

func TestBuild_MarkerScaling(t *testing.T) {
	fig := Build(kenyaPoints())

	// Largest displayed percent is 80, so sizeref = 2*80/40^2.
	want := 2.0 * 80.0 / 1600.0
	for _, trace := range fig.Data {
		assert.InDelta(t, want, trace.Marker.SizeRef, 1e-12, trace.Name)
		assert.Equal(t, "area", trace.Marker.SizeMode)
		assert.InDelta(t, 4.0, trace.Marker.SizeMin, 1e-12)
		assert.InDelta(t, 0.5, trace.Marker.Line.Width, 1e-12)
		assert.Equal(t, "white", trace.Marker.Line.Color)
	}

	sensitive := fig.Data[0]
	require.Len(t, sensitive.Marker.Size, 1)
	assert.InDelta(t, 80.0, sensitive.Marker.Size[0], 1e-12)
}

func TestBuild_ScalingIgnoresHiddenTypes(t *testing.T) {
	points := append(kenyaPoints(), types.PlotPoint{
		Country: "Kenya", ResistanceType: "Mystery-TB", Count: 9, TotalSamples: 10, Percent: 90,
	})

	fig := Build(points)

	// The hidden 90% point contributes to no trace and not to sizeref.
	want := 2.0 * 80.0 / 1600.0
	total := 0
	for _, trace := range fig.Data {
		assert.InDelta(t, want, trace.Marker.SizeRef, 1e-12)
		total += len(trace.Lat)
	}
	assert.Equal(t, 2, total)
}

func TestBuild_EmptyInput(t *testing.T) {
	fig := Build(nil)

	require.Len(t, fig.Data, 7)
	for _, trace := range fig.Data {
		assert.Empty(t, trace.Lat)
		assert.InDelta(t, 0.0, trace.Marker.SizeRef, 1e-12)
	}
}

func TestBuild_TextAndCustomData(t *testing.T) {
	points := []types.PlotPoint{
		{Country: "Kenya", ResistanceType: "Sensitive", ISOAlpha3: "KEN", Count: 1, TotalSamples: 3, Percent: 100.0 / 3.0, Lat: -0.17, Lon: 37.9},
	}

	fig := Build(points)
	sensitive := fig.Data[0]

	require.Len(t, sensitive.Text, 1)
	assert.Equal(t, "33.3%", sensitive.Text[0])
	assert.Equal(t, "middle center", sensitive.TextPosition)

	require.Len(t, sensitive.CustomData, 1)
	assert.Equal(t, []any{"Kenya", "Sensitive", 1, 3, 100.0 / 3.0}, sensitive.CustomData[0])
}

func TestBuild_HoverTemplate(t *testing.T) {
	fig := Build(kenyaPoints())

	want := "<b>Country:</b> %{customdata[0]}<br>" +
		"<b>Resistance Type:</b> %{customdata[1]}<br>" +
		"<b>Count:</b> %{customdata[2]}<br>" +
		"<b>Total Samples:</b> %{customdata[3]}<br>" +
		"<b>Percent:</b> %{customdata[4]:.1f}%<extra></extra>"
	for _, trace := range fig.Data {
		assert.Equal(t, want, trace.HoverTemplate)
	}
}

func TestBuild_Layout(t *testing.T) {
	layout := Build(kenyaPoints()).Layout

	assert.Equal(t, FigureTitle, layout.Title.Text)
	assert.InDelta(t, 0.45, layout.Title.X, 1e-12)
	assert.Equal(t, "center", layout.Title.XAnchor)
	assert.Equal(t, 20, layout.Title.Font.Size)

	assert.Equal(t, 1000, layout.Height)
	assert.Equal(t, 1850, layout.Width)

	assert.Equal(t, "world", layout.Geo.Scope)
	assert.Equal(t, "natural earth", layout.Geo.Projection.Type)
	assert.True(t, layout.Geo.ShowLand)
	assert.Equal(t, "rgb(230, 230, 230)", layout.Geo.LandColor)
	assert.True(t, layout.Geo.ShowCountries)
	assert.Equal(t, "white", layout.Geo.CountryColor)
	assert.Equal(t, [2]float64{0.0, 0.96}, layout.Geo.Domain.X)
	assert.Equal(t, [2]float64{0.1, 0.98}, layout.Geo.Domain.Y)

	assert.Equal(t, "<b>Resistance Type&nbsp;&nbsp;&nbsp;</b>", layout.Legend.Title.Text)
	assert.Equal(t, "v", layout.Legend.Orientation)
	assert.InDelta(t, 0.90, layout.Legend.X, 1e-12)
	assert.InDelta(t, 0.97, layout.Legend.Y, 1e-12)
	assert.Equal(t, "left", layout.Legend.XAnchor)

	require.Len(t, layout.Annotations, 1)
	note := layout.Annotations[0]
	assert.Equal(t, Footnote, note.Text)
	assert.InDelta(t, 0.90, note.X, 1e-12)
	assert.InDelta(t, 0.09, note.Y, 1e-12)
	assert.Equal(t, "paper", note.XRef)
	assert.Equal(t, "paper", note.YRef)
	assert.False(t, note.ShowArrow)

	assert.Equal(t, Margin{Right: 60, Top: 60, Left: 10, Bottom: 100}, layout.Margin)
}

func TestFootnote_CoversAllDisplayedTypes(t *testing.T) {
	for _, resistanceType := range types.SelectedTypes() {
		assert.Contains(t, Footnote, "<b>"+resistanceType+"</b>", resistanceType)
		assert.Contains(t, Footnote, ColorFor(resistanceType))
		assert.Contains(t, Footnote, types.Description(resistanceType), resistanceType)
	}

	// Blocks appear in legend order and keep their exact wording.
	assert.True(t, strings.HasPrefix(Footnote,
		"<b>Footnote:</b><br><br>"+
			"<span style='color:#008000'><b>Sensitive</b></span>:<br>No drug<br>resistance<br><br>"))
	assert.True(t, strings.HasSuffix(Footnote,
		"<span style='color:#FF0000'><b>XDR-TB</b></span>:<br>"+
			"MDR-TB + resistance<br>to Fluoroquinolone<br>& one Group A drug"))
	assert.Contains(t, Footnote, "MDR-TB + resistance<br>to a Fluoroquinolone")
	assert.Less(t, strings.Index(Footnote, "<b>RR-TB</b>"), strings.Index(Footnote, "<b>MDR-TB</b>"))
}

func TestFigure_MarshalsToPlotlyJSON(t *testing.T) {
	raw, err := json.Marshal(Build(kenyaPoints()))
	require.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, `"type":"scattergeo"`)
	assert.Contains(t, doc, `"projection":{"type":"natural earth"}`)
	assert.Contains(t, doc, `"sizemode":"area"`)
	assert.Contains(t, doc, `"showlegend":true`)
	assert.Contains(t, doc, `"hovertemplate"`)

	// Empty traces must serialize as [] so plotly still draws the legend
	// entry.
	assert.NotContains(t, doc, `"lat":null`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	data, ok := decoded["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 7)
	_, ok = decoded["layout"].(map[string]any)
	assert.True(t, ok)
}

func TestFigure_JSONFieldNamesMatchPlotlySchema(t *testing.T) {
	raw, err := json.Marshal(Build(kenyaPoints()).Layout)
	require.NoError(t, err)
	doc := string(raw)

	for _, key := range []string{
		`"title"`, `"height"`, `"width"`, `"geo"`, `"legend"`, `"annotations"`, `"margin"`,
		`"scope"`, `"showland"`, `"landcolor"`, `"showcountries"`, `"countrycolor"`, `"domain"`,
		`"xanchor"`, `"orientation"`, `"showarrow"`, `"xref"`, `"yref"`,
	} {
		assert.True(t, strings.Contains(doc, key), "layout JSON missing %s", key)
	}
	assert.Contains(t, doc, `"r":60`)
	assert.Contains(t, doc, `"t":60`)
	assert.Contains(t, doc, `"l":10`)
	assert.Contains(t, doc, `"b":100`)
}
