package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theiaprok/amr-visualizer/internal/geocode"
	"github.com/theiaprok/amr-visualizer/internal/types"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Geocode the countries of an aggregated stats artifact",
	Long:  "Looks up one coordinate per distinct country in a stats artifact, pausing between service calls. Countries the service cannot place are left out of the artifact and fall back to the default position at render time.",
	RunE:  runGeocode,
}

var (
	geocodeStats   string
	geocodeOutDir  string
	geocodeURL     string
	geocodeAgent   string
	geocodeVerbose bool
)

func init() {
	geocodeCmd.Flags().StringVarP(&geocodeStats, "stats", "s", "", "Path to input stats.json artifact (required)")
	geocodeCmd.Flags().StringVarP(&geocodeOutDir, "out", "o", "", "Output directory for coords.json (required)")
	geocodeCmd.Flags().StringVar(&geocodeURL, "geocoder-url", "", "Base URL of the geocoding service")
	geocodeCmd.Flags().StringVar(&geocodeAgent, "user-agent", "", "User agent sent to the geocoding service")
	geocodeCmd.Flags().BoolVarP(&geocodeVerbose, "verbose", "v", false, "Log every lookup at debug level")

	if err := geocodeCmd.MarkFlagRequired("stats"); err != nil {
		panic(fmt.Sprintf("failed to mark stats flag as required: %v", err))
	}
	if err := geocodeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(geocodeCmd)
}

// distinctCountries returns the distinct country names in first-appearance
// order, so each country is looked up exactly once.
func distinctCountries(stats []types.ResolvedStat) []string {
	seen := make(map[string]bool, len(stats))
	var names []string
	for _, stat := range stats {
		if !seen[stat.Country] {
			seen[stat.Country] = true
			names = append(names, stat.Country)
		}
	}
	return names
}

func runGeocode(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// 1. Load stats artifact
	content, err := os.ReadFile(geocodeStats)
	if err != nil {
		return fmt.Errorf("failed to read stats file %s: %w", geocodeStats, err)
	}

	var resolved []types.ResolvedStat
	if err := json.Unmarshal(content, &resolved); err != nil {
		return fmt.Errorf("failed to unmarshal stats JSON: %w", err)
	}

	// 2. Geocode each distinct country once
	level := zerolog.WarnLevel
	if geocodeVerbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	opts := geocode.DefaultOptions()
	if geocodeURL != "" {
		opts.BaseURL = geocodeURL
	}
	if geocodeAgent != "" {
		opts.UserAgent = geocodeAgent
	}

	names := distinctCountries(resolved)
	resolver := geocode.NewResolver(opts, logger)
	coords, err := resolver.ResolveAll(ctx, names)
	if err != nil {
		return fmt.Errorf("failed to geocode countries: %w", err)
	}

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(coords, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates to JSON: %w", err)
	}

	// 4. Write the artifact
	if err := os.MkdirAll(geocodeOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", geocodeOutDir, err)
	}
	outPath := filepath.Join(geocodeOutDir, "coords.json")
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write coordinates to output file %s: %w", outPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully geocoded %d of %d countries to %s\n", len(coords), len(names), outPath)

	return nil
}
