package postgres

//nolint:revive
import (
	"bloom/config"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection splits reads from writes so a replica can serve scans.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint describes one postgres server.
type Endpoint struct {
	Name     string
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// DSN renders the endpoint as a postgres URL.
func (e Endpoint) DSN() string {
	sslMode := e.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     e.DBName,
		RawQuery: "sslmode=" + sslMode,
	}

	return dsn.String()
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  Connect(ReadEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: Connect(WriteEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

func dbName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

func WriteEndpoint(config *config.Config) Endpoint {
	w := config.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Username: w.Username,
		Password: w.Password,
		Host:     w.Host,
		Port:     w.Port,
		DBName:   dbName(config, w.Name),
		SSLMode:  w.SSLMode,
	}
}

func ReadEndpoint(config *config.Config) Endpoint {
	r := config.DB.Postgres.Read

	return Endpoint{
		Name:     "read",
		Username: r.Username,
		Password: r.Password,
		Host:     r.Host,
		Port:     r.Port,
		DBName:   dbName(config, r.Name),
		SSLMode:  r.SSLMode,
	}
}

// Connect dials the endpoint, retrying maxRetry times. It returns nil when every attempt fails.
func Connect(endpoint Endpoint, maxRetry, waitTime int) *sqlx.DB {
	if maxRetry < 1 {
		maxRetry = 1
	}

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.DBName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Str("dbName", endpoint.DBName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close postgres connections: %w", err)
	}

	return nil
}
