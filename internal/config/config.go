package config

import (
	"os"
	"time"

	"go.uber.org/zap"
)

const defaultPollInterval = 200 * time.Millisecond

// AppConfig holds application configuration
type AppConfig struct {
	logger       *zap.Logger
	pollInterval time.Duration
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	pollInterval := defaultPollInterval
	if raw := os.Getenv("NDFR_POLL_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			pollInterval = d
		} else {
			logger.Warn("Invalid NDFR_POLL_INTERVAL, using default",
				zap.String("value", raw),
				zap.Duration("default", defaultPollInterval))
		}
	}

	logger.Info("Configuration loaded",
		zap.Duration("pollInterval", pollInterval))

	return &AppConfig{
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// PollInterval returns the cadence of the listen-mode poll loop
func (c *AppConfig) PollInterval() time.Duration {
	return c.pollInterval
}
