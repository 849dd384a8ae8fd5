package service

import (
	"log/slog"

	ledgermetrics "quorum/internal/ledger/metrics"
	"quorum/internal/ledger/tracer"
)

// serviceConfig holds optional dependencies for the ledger service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *ledgermetrics.Metrics
	tracer  tracer.Tracer
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *ledgermetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
