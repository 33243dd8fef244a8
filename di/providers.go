package di

import (
	"bloom/config"
	"bloom/infras/kafka"
	"bloom/infras/mail"
	"bloom/infras/otel"
	"bloom/infras/postgres"
	"bloom/infras/twilio"
	"bloom/internal/domains/booking/backup"
	"bloom/internal/domains/booking/notifier"
	"bloom/shared/constant"
	"bloom/transport/http"
	"context"
	"strings"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Worker bundles the background jobs run by cmd/worker.
type Worker struct {
	Consumer  *notifier.Consumer
	Scheduler *backup.Scheduler
	Closers   []http.Closer
}

// providePostgres skips the database when bookings live in memory.
func providePostgres(cfg *config.Config) *postgres.Connection {
	if strings.EqualFold(cfg.Booking.StoreDriver, constant.StoreDriverMemory) {
		return nil
	}

	return postgres.New(cfg)
}

func provideConsumer(cfg *config.Config, client kafka.Client, mailer mail.Mailer, sms twilio.Sender) *notifier.Consumer {
	group := cfg.Booking.Notifier.ConsumerGroup
	if group == "" {
		group = cfg.Kafka.ConsumerGroup
	}

	return notifier.NewConsumer(client, notifier.NewDelivery(cfg, mailer, sms), cfg.Booking.Notifier.Topic, group)
}

func provideScheduler(cfg *config.Config, job backup.Backup) (*backup.Scheduler, error) {
	if !cfg.Backup.Enable {
		log.Info().Msg("Scheduled backups disabled")

		return nil, nil
	}

	return backup.NewScheduler(cfg.Backup.Schedule, job) // nolint:wrapcheck
}

func provideClosers(ot otel.Otel, db *postgres.Connection, redis *goRedis.Client, client kafka.Client) []http.Closer {
	return append(provideWorkerClosers(ot, db, client), func(context.Context) error { return redis.Close() })
}

func provideWorkerClosers(ot otel.Otel, db *postgres.Connection, client kafka.Client) []http.Closer {
	closers := []http.Closer{
		func(context.Context) error { return client.Close() },
		ot.Shutdown,
	}

	if db != nil {
		closers = append(closers, func(context.Context) error { return db.Close() })
	}

	return closers
}
