package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/theiaprok/amr-visualizer/internal/figure"
)

// PageTitle is the browser tab title of the rendered page.
const PageTitle = "Tuberculosis Drug Resistance Map"

//go:embed templates/bubble_map.html
var pageTemplateText string

var pageTemplate = template.Must(template.New("bubble_map").Parse(pageTemplateText))

// marshalTemplateJS encodes a value as JSON tagged safe for direct
// embedding in the page's script block.
func marshalTemplateJS(value any) (template.JS, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return template.JS(""), err
	}
	return template.JS(payload), nil
}

// Page renders the HTML document for a figure. The figure JSON is embedded
// in a script block and drawn client-side by plotly.js from its CDN.
func Page(fig *figure.Figure) (string, error) {
	figureJSON, err := marshalTemplateJS(fig)
	if err != nil {
		return "", &PageError{
			Message: "failed to encode figure",
			Cause:   err,
		}
	}

	data := struct {
		Title      string
		FigureJSON template.JS
	}{
		Title:      PageTitle,
		FigureJSON: figureJSON,
	}

	var page strings.Builder
	if err := pageTemplate.Execute(&page, data); err != nil {
		return "", &PageError{
			Message: "failed to execute page template",
			Cause:   err,
		}
	}
	return page.String(), nil
}

// WriteFile renders the page for fig and writes it to path.
func WriteFile(path string, fig *figure.Figure) error {
	page, err := Page(fig)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return &PageError{
			Message: fmt.Sprintf("failed to write page: %s", path),
			Cause:   err,
		}
	}
	return nil
}

// WriteTemp renders the page into the system temp directory and returns
// the file's path. The caller decides whether to keep or remove it.
func WriteTemp(fig *figure.Figure) (string, error) {
	page, err := Page(fig)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "tb_bubble_map_*.html")
	if err != nil {
		return "", &PageError{
			Message: "failed to create temporary page file",
			Cause:   err,
		}
	}

	if _, err := f.WriteString(page); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", &PageError{
			Message: fmt.Sprintf("failed to write page: %s", f.Name()),
			Cause:   err,
		}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", &PageError{
			Message: fmt.Sprintf("failed to write page: %s", f.Name()),
			Cause:   err,
		}
	}
	return f.Name(), nil
}
