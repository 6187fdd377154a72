package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theiaprok/amr-visualizer/internal/config"
	"github.com/theiaprok/amr-visualizer/internal/geocode"
	"github.com/theiaprok/amr-visualizer/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full bubble-map pipeline end-to-end",
	Long: `Orchestrates the entire bubble-map build: loading -> aggregation -> country resolution -> geocoding -> placement -> rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runInput       string
	runOutput      string
	runSnapshot    string
	runGeocoderURL string
	runUserAgent   string
	runNoOpen      bool
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to the tab-separated sample table")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the rendered HTML page (default: temp file)")
	runCommand.Flags().StringVar(&runSnapshot, "snapshot", "", "Also save a PNG snapshot to this path (requires Chrome)")
	runCommand.Flags().StringVar(&runGeocoderURL, "geocoder-url", "", "Base URL of the geocoding service")
	runCommand.Flags().StringVar(&runUserAgent, "user-agent", "", "User agent sent to the geocoding service")
	runCommand.Flags().BoolVar(&runNoOpen, "no-open", false, "Do not open the rendered page in the default viewer")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Note: --input is not marked required; we validate after merging config

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot = runSnapshot
	}
	if cmd.Flags().Changed("geocoder-url") {
		cfg.GeocoderURL = runGeocoderURL
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = runUserAgent
	}
	if cmd.Flags().Changed("no-open") {
		cfg.NoOpen = runNoOpen
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		GeocoderURL: geocode.DefaultBaseURL,
		UserAgent:   geocode.DefaultUserAgent,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input must be provided (via flag or config)")
	}

	// Step 5: Validate merged values (formats, file existence)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		InputPath:    cfg.Input,
		OutputPath:   cfg.Output,
		SnapshotPath: cfg.Snapshot,
		GeocoderURL:  cfg.GeocoderURL,
		UserAgent:    cfg.UserAgent,
		OpenViewer:   !cfg.NoOpen,
		Verbose:      cfg.Verbose,
	}

	return pipeline.Run(ctx, opts)
}
