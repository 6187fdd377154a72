package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theiaprok/amr-visualizer/internal/dataset"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load and clean a tab-separated sample table",
	Long:  "Reads a tab-separated sample table, drops rows with a missing country or resistance type, and writes the cleaned samples as a JSON artifact.",
	RunE:  runLoad,
}

var (
	loadInput  string
	loadOutDir string
)

func init() {
	loadCmd.Flags().StringVarP(&loadInput, "input", "i", "", "Path to the tab-separated sample table (required)")
	loadCmd.Flags().StringVarP(&loadOutDir, "out", "o", "", "Output directory for samples.json (required)")

	if err := loadCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := loadCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(loadCmd)
}

func runLoad(_ *cobra.Command, _ []string) error {
	// 1. Load and clean the sample table
	table, err := dataset.Load(loadInput)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	// 2. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal samples to JSON: %w", err)
	}

	// 3. Write the artifact
	if err := os.MkdirAll(loadOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", loadOutDir, err)
	}
	outPath := filepath.Join(loadOutDir, "samples.json")
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write samples to output file %s: %w", outPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully loaded %d samples to %s\n", len(table.Rows), outPath)

	return nil
}
