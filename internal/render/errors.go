// Package render turns an assembled figure into a self-contained HTML page
// and hands it to the system for display: write the page, open it in the
// default browser, or capture a PNG through a headless browser for
// environments without a display.
package render

import "fmt"

// PageError represents a failure building or writing the HTML page.
type PageError struct {
	Message string
	Cause   error
}

func (e *PageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("page error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("page error: %s", e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Cause
}

// OpenError represents a failure launching the system viewer.
type OpenError struct {
	Message string
	Cause   error
}

func (e *OpenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("open error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("open error: %s", e.Message)
}

func (e *OpenError) Unwrap() error {
	return e.Cause
}

// SnapshotError represents a failure capturing the PNG snapshot.
type SnapshotError struct {
	Message string
	Cause   error
}

func (e *SnapshotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("snapshot error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("snapshot error: %s", e.Message)
}

func (e *SnapshotError) Unwrap() error {
	return e.Cause
}
