package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theiaprok/amr-visualizer/internal/figure"
	"github.com/theiaprok/amr-visualizer/internal/layout"
	"github.com/theiaprok/amr-visualizer/internal/render"
	"github.com/theiaprok/amr-visualizer/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the bubble map from stats and coordinates artifacts",
	Long:  "Places every country/type pair on the map (default position plus per-type longitude offset when the country has no coordinate), builds the Plotly figure, and writes both the figure JSON and the final HTML page.",
	RunE:  runRender,
}

var (
	renderStats  string
	renderCoords string
	renderOutDir string
)

func init() {
	renderCmd.Flags().StringVarP(&renderStats, "stats", "s", "", "Path to input stats.json artifact (required)")
	renderCmd.Flags().StringVarP(&renderCoords, "coords", "c", "", "Path to input coords.json artifact (required)")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "Output directory for amr_map.html and figure.json (required)")

	if err := renderCmd.MarkFlagRequired("stats"); err != nil {
		panic(fmt.Sprintf("failed to mark stats flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("coords"); err != nil {
		panic(fmt.Sprintf("failed to mark coords flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	// 1. Load stats artifact
	statsContent, err := os.ReadFile(renderStats)
	if err != nil {
		return fmt.Errorf("failed to read stats file %s: %w", renderStats, err)
	}

	var resolved []types.ResolvedStat
	if err := json.Unmarshal(statsContent, &resolved); err != nil {
		return fmt.Errorf("failed to unmarshal stats JSON: %w", err)
	}

	// 2. Load coordinates artifact
	coordsContent, err := os.ReadFile(renderCoords)
	if err != nil {
		return fmt.Errorf("failed to read coordinates file %s: %w", renderCoords, err)
	}

	var coords map[string]types.Coordinate
	if err := json.Unmarshal(coordsContent, &coords); err != nil {
		return fmt.Errorf("failed to unmarshal coordinates JSON: %w", err)
	}

	// 3. Place points and build the figure
	points := layout.Place(resolved, coords)
	fig := figure.Build(points)

	// 4. Write the artifacts
	if err := os.MkdirAll(renderOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", renderOutDir, err)
	}

	figureOutput, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal figure to JSON: %w", err)
	}
	figurePath := filepath.Join(renderOutDir, "figure.json")
	if err := os.WriteFile(figurePath, figureOutput, 0644); err != nil {
		return fmt.Errorf("failed to write figure to output file %s: %w", figurePath, err)
	}

	htmlPath := filepath.Join(renderOutDir, "amr_map.html")
	if err := render.WriteFile(htmlPath, fig); err != nil {
		return fmt.Errorf("failed to write bubble map page: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered bubble map from %d points\n", len(points))
	_, _ = fmt.Fprintf(os.Stdout, "Page: %s\n", htmlPath)
	_, _ = fmt.Fprintf(os.Stdout, "Figure: %s\n", figurePath)

	return nil
}
