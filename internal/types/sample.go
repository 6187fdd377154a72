// Package types provides type definitions for the structured data passed
// between pipeline stages of the AMR visualizer.
package types

// Sample represents one tuberculosis sample row from the input dataset.
// Only the two fields the pipeline consumes are retained.
type Sample struct {
	Country        string `json:"country"`
	ResistanceType string `json:"resistance_type"`
}

// SampleTable holds the cleaned rows of an input dataset, in file order.
type SampleTable struct {
	Rows []Sample `json:"rows"`
}
