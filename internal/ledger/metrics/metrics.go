package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registrations   prometheus.Counter
	Unregistrations prometheus.Counter
	WriteConflicts  prometheus.Counter
	WriteDuration   prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quorum_registrations_total",
			Help: "Total number of committed event registrations",
		}),
		Unregistrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quorum_unregistrations_total",
			Help: "Total number of committed event unregistrations",
		}),
		WriteConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quorum_registration_conflicts_total",
			Help: "Total number of ledger writes rejected for being in the wrong state",
		}),
		WriteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quorum_ledger_write_duration_seconds",
			Help:    "Duration of ledger write operations (desk-facing path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementRegistrations() {
	m.Registrations.Inc()
}

func (m *Metrics) IncrementUnregistrations() {
	m.Unregistrations.Inc()
}

func (m *Metrics) IncrementWriteConflicts() {
	m.WriteConflicts.Inc()
}

func (m *Metrics) ObserveWrite(start time.Time) {
	m.WriteDuration.Observe(time.Since(start).Seconds())
}
