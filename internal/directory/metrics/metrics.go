package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Searches       prometheus.Counter
	ListRequests   *prometheus.CounterVec
	SearchDuration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Searches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quorum_member_searches_total",
			Help: "Total number of member directory searches",
		}),
		ListRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quorum_member_list_requests_total",
			Help: "Total number of dashboard list requests, labeled by list",
		}, []string{"list"}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quorum_member_search_duration_seconds",
			Help:    "Duration of member directory searches (operator-facing path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementSearches() {
	m.Searches.Inc()
}

func (m *Metrics) IncrementListRequests(list string) {
	m.ListRequests.WithLabelValues(list).Inc()
}

func (m *Metrics) ObserveSearch(start time.Time) {
	m.SearchDuration.Observe(time.Since(start).Seconds())
}
