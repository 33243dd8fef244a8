package logger_test

import (
	"bloom/config"
	"bloom/shared/logger"
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("append row failed"))

	assert.Contains(t, buf.String(), "append row failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "info", expected: zerolog.InfoLevel},
		{logLevel: "warn", expected: zerolog.WarnLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "disabled", expected: zerolog.Disabled},
		{logLevel: "not-a-level", expected: zerolog.TraceLevel},
		{logLevel: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.logLevel, func(t *testing.T) {
			restore(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput(t *testing.T) {
	restore(t)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "bloom"

	logger.SetOutput(cfg, &buf)
	log.Info().Msg("booking stored")

	assert.Contains(t, buf.String(), `"app":"bloom"`)
	assert.Contains(t, buf.String(), `"message":"booking stored"`)
}

func TestSetOutputDevelopmentKeepsLogger(t *testing.T) {
	restore(t)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "development"

	before := log.Logger
	logger.SetOutput(cfg, &buf)

	assert.Equal(t, before, log.Logger)
	assert.Empty(t, buf.String())
}
