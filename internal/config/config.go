package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"monozvit/internal/core"
)

type Config struct {
	// Monobank
	MonoToken     string
	MonoAccountID string

	// Telegram
	TelegramToken  string
	TelegramChatID string

	// Report
	ReportDay string
	Timezone  string
	DryRun    bool

	// HTTP
	RequestTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		MonoToken:     getEnv("MONO_TOKEN", ""),
		MonoAccountID: getEnv("MONO_ACCOUNT_ID", ""),

		TelegramToken:  getEnv("TG_BOT_TOKEN", ""),
		TelegramChatID: getEnv("TG_CHAT_ID", ""),

		ReportDay: getEnv("REPORT_DAY", string(core.Today)),
		Timezone:  getEnv("TIMEZONE", core.DefaultTimezone),
		DryRun:    getEnvBool("DRY_RUN", false),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid.
// It runs before any network activity, so a bad configuration never costs
// an API call.
func (c *Config) Validate() error {
	var errors []string

	// All four secrets are required
	if c.MonoToken == "" {
		errors = append(errors, "MONO_TOKEN is required")
	}
	if c.MonoAccountID == "" {
		errors = append(errors, "MONO_ACCOUNT_ID is required")
	}
	if c.TelegramToken == "" {
		errors = append(errors, "TG_BOT_TOKEN is required")
	}
	if c.TelegramChatID == "" {
		errors = append(errors, "TG_CHAT_ID is required")
	}

	// Validate report day
	switch core.Day(c.ReportDay) {
	case core.Today, core.Yesterday:
	default:
		errors = append(errors, fmt.Sprintf("invalid REPORT_DAY '%s': must be '%s' or '%s'", c.ReportDay, core.Today, core.Yesterday))
	}

	// Validate timezone
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errors = append(errors, fmt.Sprintf("invalid TIMEZONE '%s': %v", c.Timezone, err))
	}

	// Validate request timeout
	if c.RequestTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at least 1 second", c.RequestTimeout))
	} else if c.RequestTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at most 5 minutes", c.RequestTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Day returns the validated report day selector.
func (c *Config) Day() core.Day {
	return core.Day(c.ReportDay)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
