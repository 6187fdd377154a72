package geocode

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/theiaprok/amr-visualizer/internal/types"
)

// DefaultPause is the wait inserted after every request to the external
// service, whether or not it succeeded.
const DefaultPause = time.Second

// overrides pins coordinates for names the public service resolves to the
// wrong place. The country of Georgia is wanted here, not the US state,
// and Sudan should sit at the country centroid. Override hits never reach
// the network and never pause.
var overrides = map[string]types.Coordinate{
	"Georgia": {Lat: 42.3154, Lon: 43.3569},
	"Sudan":   {Lat: 12.8628, Lon: 30.2176},
}

// Resolver geocodes country names one at a time, memoizing results for the
// lifetime of a run. Lookup failures are logged at debug level and
// otherwise ignored; countries that never resolve stay absent from the
// result map and callers fall back to a default position.
type Resolver struct {
	opts   *Options
	logger zerolog.Logger
	coords map[string]types.Coordinate

	pause time.Duration
	sleep func(time.Duration) // replaced in tests
}

// NewResolver returns a resolver that queries the service described by
// opts. A nil opts uses DefaultOptions.
func NewResolver(opts *Options, logger zerolog.Logger) *Resolver {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Resolver{
		opts:   opts,
		logger: logger,
		coords: make(map[string]types.Coordinate),
		pause:  DefaultPause,
		sleep:  time.Sleep,
	}
}

// Lookup returns coordinates for country, consulting in order the
// run-local memo, the manual overrides, and the external service. After an
// external attempt it pauses regardless of outcome. The boolean reports
// whether coordinates are known; false is not an error.
func (r *Resolver) Lookup(ctx context.Context, country string) (types.Coordinate, bool) {
	if coord, ok := r.coords[country]; ok {
		return coord, true
	}
	if coord, ok := overrides[country]; ok {
		r.coords[country] = coord
		return coord, true
	}

	loc, err := Search(ctx, country, r.opts)
	switch {
	case err != nil:
		r.logger.Debug().Str("country", country).Err(err).Msg("geocoding failed")
	case loc == nil:
		r.logger.Debug().Str("country", country).Msg("geocoding returned no match")
	default:
		r.coords[country] = types.Coordinate{Lat: loc.Lat, Lon: loc.Lon}
		r.logger.Debug().
			Str("country", country).
			Float64("lat", loc.Lat).
			Float64("lon", loc.Lon).
			Msg("geocoded")
	}
	r.sleep(r.pause)

	coord, ok := r.coords[country]
	return coord, ok
}

// ResolveAll looks up every listed country and returns the coordinates
// found. Countries the service cannot place are absent from the map. The
// walk stops early only when ctx is done.
func (r *Resolver) ResolveAll(ctx context.Context, countries []string) (map[string]types.Coordinate, error) {
	for _, country := range countries {
		if err := ctx.Err(); err != nil {
			return r.coords, err
		}
		r.Lookup(ctx, country)
	}
	return r.coords, nil
}
