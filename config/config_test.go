package config_test

import (
	"bloom/config"
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unset(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestDefaults(t *testing.T) {
	unset(t, "CACHE_TTL")
	unset(t, "BOOKING_STORE_DRIVER")

	var cfg config.Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, 60, cfg.Cache.TTL)
	assert.Equal(t, "postgres", cfg.Booking.StoreDriver)
}

func TestCacheTTLOverride(t *testing.T) {
	t.Setenv("CACHE_TTL", "5")

	var cfg config.Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, 5, cfg.Cache.TTL)
}
