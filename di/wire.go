//go:build wireinject
// +build wireinject

package di

import (
	"bloom/config"
	"bloom/infras/kafka"
	"bloom/infras/mail"
	"bloom/infras/otel"
	"bloom/infras/redis"
	"bloom/infras/s3"
	"bloom/infras/twilio"
	"bloom/internal/domains/booking/backup"
	"bloom/internal/domains/booking/notifier"
	"bloom/internal/domains/booking/repository"
	"bloom/internal/domains/booking/service"
	adminHandler "bloom/internal/handlers/admin"
	bookingHandler "bloom/internal/handlers/booking"
	"bloom/shared/cache"
	"bloom/shared/lock"
	"bloom/transport/http"
	"bloom/transport/http/middleware"
	"bloom/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	otel.New,
	redis.New,
	kafka.New,
	mail.New,
	twilio.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
)

var bookingDomain = wire.NewSet(
	repository.New,
	notifier.New,
	service.New,
	backup.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		bookingDomain,
		routing,
		provideClosers,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() (*Worker, error) {
	wire.Build(
		configurations,
		infrastructures,
		repository.New,
		backup.New,
		provideConsumer,
		provideScheduler,
		provideWorkerClosers,
		wire.Struct(new(Worker), "*"),
	)

	return &Worker{}, nil
}
