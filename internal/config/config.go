package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"owing/internal/locale"
	applog "owing/internal/log"
)

// TodayLayout is the layout accepted for OWING_TODAY and --today.
const TodayLayout = "2006-01-02"

type Config struct {
	// Rendering
	Locale string

	// Clock
	Today    string // fixed report date, empty means the wall clock
	Timezone string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Locale:   getEnv("OWING_LOCALE", "en-US"),
		Today:    getEnv("OWING_TODAY", ""),
		Timezone: getEnv("OWING_TIMEZONE", "Local"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := locale.Parse(c.Locale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid locale '%s': must be a BCP 47 tag such as en-US", c.Locale))
	}

	if c.Today != "" {
		if _, err := time.Parse(TodayLayout, c.Today); err != nil {
			errors = append(errors, fmt.Sprintf("invalid today '%s': must be formatted as YYYY-MM-DD", c.Today))
		}
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Location returns the configured time zone. Call Validate first.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// FixedToday returns the configured report date and whether one is set.
func (c *Config) FixedToday() (time.Time, bool) {
	if c.Today == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(TodayLayout, c.Today, c.Location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
