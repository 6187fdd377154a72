package figure

import (
	"strings"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// Footnote is the HTML legend explainer anchored under the legend column,
// one block per displayed resistance type in legend order.
var Footnote = buildFootnote()

func buildFootnote() string {
	var b strings.Builder
	b.WriteString("<b>Footnote:</b>")
	for _, resistanceType := range types.SelectedTypes() {
		b.WriteString("<br><br><span style='color:")
		b.WriteString(ColorFor(resistanceType))
		b.WriteString("'><b>")
		b.WriteString(resistanceType)
		b.WriteString("</b></span>:<br>")
		b.WriteString(types.Description(resistanceType))
	}
	return b.String()
}
