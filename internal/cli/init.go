// Package cli provides the owing command line and its initialization
// helpers.
package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"owing/internal/config"
	applog "owing/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger writing to w at the configured
// level and sets it as the default logger.
func SetupLogger(w io.Writer, level string) *applog.Logger {
	lvl, err := applog.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	logger := applog.New(applog.Config{
		Level:     lvl,
		Component: applog.ComponentApp,
		Handler:   slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}),
	})
	applog.SetDefault(logger)
	return logger
}

// NewClock returns a fake clock frozen at the configured report date, or
// the wall clock when none is set.
func NewClock(cfg *config.Config) clockwork.Clock {
	if today, ok := cfg.FixedToday(); ok {
		// Midday keeps the calendar day stable across zone conversions.
		return clockwork.NewFakeClockAt(today.Add(12 * time.Hour))
	}
	return clockwork.NewRealClock()
}
