package service

import (
	"log/slog"

	directorymetrics "quorum/internal/directory/metrics"
)

// serviceConfig holds optional dependencies for the directory service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *directorymetrics.Metrics
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *directorymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}
