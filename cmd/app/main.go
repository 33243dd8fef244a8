package main

import (
	"bloom/config"
	"bloom/di"
	"bloom/helper"
	"bloom/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

// @title Bloom Studio Booking API
// @version 1.0
// @description Studio bookings with slot collision checks and confirmations.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
