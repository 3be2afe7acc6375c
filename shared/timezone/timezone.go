package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

// Load resolves an IANA zone name. Empty or unknown names resolve to UTC.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Init resolves name and makes it the desk zone. It must run before the desk clock is used
// for log timestamps.
func Init(name string) *time.Location {
	loc := Load(name)
	location.Store(loc)

	return loc
}

// Location returns the desk zone, or UTC until Init has run.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time on the desk clock.
func Now() time.Time {
	return time.Now().In(Location())
}
