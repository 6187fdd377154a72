package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theiaprok/amr-visualizer/internal/aggregate"
	"github.com/theiaprok/amr-visualizer/internal/countries"
	"github.com/theiaprok/amr-visualizer/internal/types"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate per-country resistance shares",
	Long:  "Computes per-country, per-resistance-type counts and percentages from a samples artifact, resolves each country to its ISO alpha-3 code, and writes the surviving rows as a JSON artifact. Rows whose country is not recognized are dropped with a warning.",
	RunE:  runAggregate,
}

var (
	aggregateSamples string
	aggregateOutDir  string
)

func init() {
	aggregateCmd.Flags().StringVarP(&aggregateSamples, "samples", "s", "", "Path to input samples.json artifact (required)")
	aggregateCmd.Flags().StringVarP(&aggregateOutDir, "out", "o", "", "Output directory for stats.json (required)")

	if err := aggregateCmd.MarkFlagRequired("samples"); err != nil {
		panic(fmt.Sprintf("failed to mark samples flag as required: %v", err))
	}
	if err := aggregateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(_ *cobra.Command, _ []string) error {
	// 1. Load samples artifact
	content, err := os.ReadFile(aggregateSamples)
	if err != nil {
		return fmt.Errorf("failed to read samples file %s: %w", aggregateSamples, err)
	}

	var table types.SampleTable
	if err := json.Unmarshal(content, &table); err != nil {
		return fmt.Errorf("failed to unmarshal samples JSON: %w", err)
	}

	// 2. Aggregate shares and resolve country codes
	stats := aggregate.Aggregate(&table)
	resolved, dropped := countries.Filter(stats)
	for _, name := range dropped {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: dropping unrecognized country %q\n", name)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats to JSON: %w", err)
	}

	// 4. Write the artifact
	if err := os.MkdirAll(aggregateOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", aggregateOutDir, err)
	}
	outPath := filepath.Join(aggregateOutDir, "stats.json")
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write stats to output file %s: %w", outPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully aggregated %d country/type pairs to %s\n", len(resolved), outPath)

	return nil
}
