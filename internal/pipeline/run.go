// Package pipeline provides the high-level orchestration for the bubble-map build.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theiaprok/amr-visualizer/internal/aggregate"
	"github.com/theiaprok/amr-visualizer/internal/countries"
	"github.com/theiaprok/amr-visualizer/internal/dataset"
	"github.com/theiaprok/amr-visualizer/internal/figure"
	"github.com/theiaprok/amr-visualizer/internal/geocode"
	"github.com/theiaprok/amr-visualizer/internal/layout"
	"github.com/theiaprok/amr-visualizer/internal/observability"
	"github.com/theiaprok/amr-visualizer/internal/render"
	"github.com/theiaprok/amr-visualizer/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath    string
	OutputPath   string // empty means a temp file, matching interactive use
	SnapshotPath string
	GeocoderURL  string
	UserAgent    string
	OpenViewer   bool
	Verbose      bool
}

// newRunLogger builds the run-scoped logger. Suppressed failures (unrecognized
// countries, geocoding misses) are only visible here at debug level.
func newRunLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// uniqueCountries returns the distinct country names in first-appearance order
func uniqueCountries(stats []types.ResolvedStat) []string {
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

// geocodeOptions builds the geocoder client options from the run options
func geocodeOptions(opts RunOptions) *geocode.Options {
	geoOpts := geocode.DefaultOptions()
	if opts.GeocoderURL != "" {
		geoOpts.BaseURL = opts.GeocoderURL
	}
	if opts.UserAgent != "" {
		geoOpts.UserAgent = opts.UserAgent
	}
	return geoOpts
}

// Run orchestrates the full bubble-map build: load, aggregate, resolve,
// geocode, place, render. Steps run strictly in order; per-country resolution
// and geocoding failures are absorbed along the way and never abort the run.
func Run(ctx context.Context, opts RunOptions) error {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)
	logger := newRunLogger(opts.Verbose)

	fmt.Printf("Step 1/6: Loading samples from %s...\n", opts.InputPath)
	table, err := dataset.Load(opts.InputPath)
	if err != nil {
		return fmt.Errorf("loading samples failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintDatasetSummary(table)
	}

	fmt.Printf("Step 2/6: Aggregating resistance shares...\n")
	stats := aggregate.Aggregate(table)
	if opts.Verbose {
		printer.PrintAggregates(stats)
	}

	fmt.Printf("Step 3/6: Resolving country codes...\n")
	resolved, dropped := countries.Filter(stats)
	for _, name := range dropped {
		logger.Debug().Str("country", name).Msg("dropped unrecognized country")
	}
	if opts.Verbose {
		printer.PrintDroppedCountries(dropped)
	}

	names := uniqueCountries(resolved)
	fmt.Printf("Step 4/6: Geocoding %d countries...\n", len(names))
	resolver := geocode.NewResolver(geocodeOptions(opts), logger)
	coords, err := resolver.ResolveAll(ctx, names)
	if err != nil {
		return fmt.Errorf("geocoding countries failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintCoordinates(names, coords)
	}

	fmt.Printf("Step 5/6: Placing map points...\n")
	points := layout.Place(resolved, coords)

	fmt.Printf("Step 6/6: Rendering bubble map...\n")
	fig := figure.Build(points)

	htmlPath := opts.OutputPath
	if htmlPath != "" {
		if err := render.WriteFile(htmlPath, fig); err != nil {
			return fmt.Errorf("writing bubble map failed: %w", err)
		}
	} else {
		htmlPath, err = render.WriteTemp(fig)
		if err != nil {
			return fmt.Errorf("writing bubble map failed: %w", err)
		}
	}
	fmt.Printf("Wrote bubble map to %s\n", htmlPath)

	if opts.OpenViewer {
		if err := render.Open(ctx, htmlPath); err != nil {
			return fmt.Errorf("opening bubble map failed: %w", err)
		}
	}

	if opts.SnapshotPath != "" {
		fmt.Printf("Saving snapshot to %s...\n", opts.SnapshotPath)
		if err := render.Snapshot(ctx, htmlPath, opts.SnapshotPath); err != nil {
			return fmt.Errorf("saving snapshot failed: %w", err)
		}
	}

	fmt.Printf("Done! Bubble map ready at %s\n", htmlPath)
	return nil
}
