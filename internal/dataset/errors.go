package dataset

import "fmt"

// FormatError represents a fatal problem with the structure of the input
// table: an empty file, a missing required column, or a row that does not
// parse as tab-separated data.
type FormatError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input table %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input table %s: %s", e.Path, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
