package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestRenderCommand_WritesPageAndFigure(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	statsFile := filepath.Join(tmpDir, "stats.json")
	statsJSON := `[
  {"country": "Kenya", "resistance_type": "Sensitive", "count": 8, "total_samples": 10, "percent": 80, "iso_alpha": "KEN"},
  {"country": "Kenya", "resistance_type": "MDR-TB", "count": 2, "total_samples": 10, "percent": 20, "iso_alpha": "KEN"},
  {"country": "Peru", "resistance_type": "XDR-TB", "count": 1, "total_samples": 1, "percent": 100, "iso_alpha": "PER"}
]`
	require.NoError(t, os.WriteFile(statsFile, []byte(statsJSON), 0644))

	// Peru is deliberately missing here so the page places it at the
	// default position.
	coordsFile := filepath.Join(tmpDir, "coords.json")
	coordsJSON := `{"Kenya": {"lat": -0.1768696, "lon": 37.9083264}}`
	require.NoError(t, os.WriteFile(coordsFile, []byte(coordsJSON), 0644))

	outDir := filepath.Join(tmpDir, "artifacts")
	cmd := exec.Command(binaryPath, "render",
		"--stats", statsFile,
		"--coords", coordsFile,
		"--out", outDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "render failed: %s", string(output))
	assert.Contains(t, string(output), "Successfully rendered bubble map from 3 points")

	page, err := os.ReadFile(filepath.Join(outDir, "amr_map.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "scattergeo")
	assert.Contains(t, string(page), "Plotly.newPlot")
	assert.Contains(t, string(page), "Kenya")

	artifact, err := os.ReadFile(filepath.Join(outDir, "figure.json"))
	require.NoError(t, err)

	var fig struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(artifact, &fig))
	assert.Len(t, fig.Data, 7)
}
