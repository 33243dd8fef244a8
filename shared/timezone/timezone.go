package timezone

import (
	"bloom/config"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

var (
	appLocation atomic.Pointer[time.Location]
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	if err := Set(cfg.App.Timezone); err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation.Store(time.UTC)

		return
	}

	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Set replaces the application timezone by IANA name.
func Set(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	appLocation.Store(loc)

	return nil
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	loc := appLocation.Load()
	if loc == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
