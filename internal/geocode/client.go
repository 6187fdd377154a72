// Package geocode resolves country names to map coordinates through a
// Nominatim-compatible geocoding service. Requests run strictly one at a
// time with a fixed pause after each one, per the public service's usage
// policy; results are memoized for the lifetime of a run and never
// persisted.
package geocode

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theiaprok/amr-visualizer/internal/schemas"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// DefaultUserAgent identifies this tool to the geocoding service.
const DefaultUserAgent = "tb_bubble_map"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// searchResponseSchema describes the subset of a Nominatim search response
// this package relies on. Responses are validated against it before
// decoding so that a misbehaving endpoint cannot feed garbage downstream.
//
//go:embed search_response_schema.json
var searchResponseSchema string

// Location is a single geocoding hit. The service encodes coordinates as
// strings; they are parsed here.
type Location struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Error represents a failed geocoding request.
type Error struct {
	Query   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("geocoding error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("geocoding error for %q: %s", e.Query, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures requests to the geocoding service.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// DefaultOptions returns the public-endpoint defaults.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

// searchResult mirrors one element of a Nominatim search response.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search asks the service for the best match for place. It returns
// (nil, nil) when the service has no match; that is a normal outcome for
// obscure names, not an error.
func Search(ctx context.Context, place string, opts *Options) (*Location, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	endpoint, err := url.Parse(opts.BaseURL)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, &Error{
			Query:   place,
			Message: "invalid base URL",
			Cause:   err,
		}
	}
	endpoint = endpoint.JoinPath("search")

	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")
	endpoint.RawQuery = query.Encode()

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &Error{
			Query:   place,
			Message: "failed to create request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			Query:   place,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Query:   place,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Query:   place,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	if err := schemas.ValidateJSONString(searchResponseSchema, string(body)); err != nil {
		return nil, &Error{
			Query:   place,
			Message: "unexpected response shape",
			Cause:   err,
		}
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &Error{
			Query:   place,
			Message: "failed to decode response",
			Cause:   err,
		}
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, &Error{
			Query:   place,
			Message: "invalid latitude in response",
			Cause:   err,
		}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, &Error{
			Query:   place,
			Message: "invalid longitude in response",
			Cause:   err,
		}
	}

	return &Location{
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
	}, nil
}
