// Package main provides the entry point for the AMR visualizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amr_visualizer",
	Short: "World bubble map of tuberculosis drug resistance",
	Long:  "amr_visualizer turns a tab-separated table of tuberculosis samples into an interactive world bubble map of per-country drug-resistance shares, rendered as a Plotly HTML page.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
