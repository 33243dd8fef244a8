package helper_test

import (
	"bloom/config"
	"bloom/helper"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "bloom"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "bookings"

	dsn, err := url.Parse(helper.DatabaseURL(cfg))
	require.NoError(t, err)

	password, _ := dsn.User.Password()
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "db:5432", dsn.Host)
	assert.Equal(t, "/staging_bookings", dsn.Path)
	assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))

	cfg.DB.Postgres.MigrationTable = "bloom_migrations"

	dsn, err = url.Parse(helper.DatabaseURL(cfg))
	require.NoError(t, err)
	assert.Equal(t, "bloom_migrations", dsn.Query().Get("x-migrations-table"))
}
