package main

import (
	"bloom/config"
	"bloom/di"
	"bloom/shared/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	worker, err := di.InitializeWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if worker.Scheduler != nil {
		worker.Scheduler.Start()
		log.Info().Str("schedule", cfg.Backup.Schedule).Msg("Backup scheduler started")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		if err = worker.Consumer.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Confirmation consumer stopped")
		}
	} else {
		log.Warn().Msg("No Kafka brokers configured, confirmation consumer not started")
		<-ctx.Done()
	}

	log.Info().Msg("Shutting down worker.")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if worker.Scheduler != nil {
		worker.Scheduler.Stop(shutdownCtx)
	}

	for _, closer := range worker.Closers {
		if err = closer(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to release resource")
		}
	}
}
