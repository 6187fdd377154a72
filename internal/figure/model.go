// Package figure assembles the world bubble-map figure as a typed model of
// the Plotly JSON schema. The model marshals with encoding/json into the
// exact document plotly.js expects; rendering it into a page is the render
// package's concern.
package figure

// Figure is the top-level plotly document: trace data plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scattergeo bubble series, one per resistance type.
type Trace struct {
	Type          string    `json:"type"`
	Lat           []float64 `json:"lat"`
	Lon           []float64 `json:"lon"`
	Marker        Marker    `json:"marker"`
	Name          string    `json:"name"`
	HoverTemplate string    `json:"hovertemplate"`
	Text          []string  `json:"text"`
	TextPosition  string    `json:"textposition"`
	CustomData    [][]any   `json:"customdata"`
	ShowLegend    bool      `json:"showlegend"`
}

// Marker styles the bubbles of a trace. Size carries one percent value per
// point; plotly scales bubble area against SizeRef.
type Marker struct {
	Size     []float64  `json:"size"`
	Color    string     `json:"color"`
	Line     MarkerLine `json:"line"`
	SizeMode string     `json:"sizemode"`
	SizeRef  float64    `json:"sizeref"`
	SizeMin  float64    `json:"sizemin"`
}

// MarkerLine is the outline drawn around each bubble.
type MarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Layout holds figure-wide presentation: title, map styling, legend,
// annotations and margins.
type Layout struct {
	Title       Title        `json:"title"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Geo         Geo          `json:"geo"`
	Legend      Legend       `json:"legend"`
	Annotations []Annotation `json:"annotations"`
	Margin      Margin       `json:"margin"`
}

// Title positions the figure heading.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
	Font    Font    `json:"font"`
}

// Geo styles the world map underneath the traces.
type Geo struct {
	Scope         string     `json:"scope"`
	Projection    Projection `json:"projection"`
	ShowLand      bool       `json:"showland"`
	LandColor     string     `json:"landcolor"`
	ShowCountries bool       `json:"showcountries"`
	CountryColor  string     `json:"countrycolor"`
	Domain        Domain     `json:"domain"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type"`
}

// Domain is the fraction of the canvas the map occupies, leaving room for
// the legend column and the footnote.
type Domain struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

// Legend places the resistance-type key next to the map.
type Legend struct {
	Title       LegendTitle `json:"title"`
	Orientation string      `json:"orientation"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	XAnchor     string      `json:"xanchor"`
	Font        Font        `json:"font"`
}

// LegendTitle is the heading above the legend entries.
type LegendTitle struct {
	Text string `json:"text"`
	Font Font   `json:"font"`
}

// Annotation is free-positioned text on the canvas, used for the footnote.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	ShowArrow bool    `json:"showarrow"`
	Align     string  `json:"align"`
	Font      Font    `json:"font"`
	XAnchor   string  `json:"xanchor"`
}

// Margin is the whitespace around the canvas, in pixels.
type Margin struct {
	Right  int `json:"r"`
	Top    int `json:"t"`
	Left   int `json:"l"`
	Bottom int `json:"b"`
}

// Font styles a text element. Color is omitted where plotly's default is
// wanted.
type Font struct {
	Size  int    `json:"size"`
	Color string `json:"color,omitempty"`
}
