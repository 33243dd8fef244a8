package main

import (
	"bloom/config"
	"bloom/helper"
	"bloom/shared/constant"
	"bloom/shared/logger"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var actions = map[string]func(*config.Config) error{
	"up":      helper.Up,
	"down":    helper.Down,
	"drop":    helper.Drop,
	"step-up": helper.StepUp,
	"version": helper.Version,
}

const usage = "usage: migrate up|down|drop|step-up|version"

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	action, ok := actions[os.Args[1]]
	if !ok {
		log.Fatal().Str("action", os.Args[1]).Msg(usage)
	}

	if strings.EqualFold(cfg.Booking.StoreDriver, constant.StoreDriverMemory) {
		log.Warn().Msg("Booking store driver is memory, migrating the configured postgres anyway")
	}

	if err := action(cfg); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
