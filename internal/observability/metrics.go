// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Valuation metrics
	ValuationsComputed *prometheus.CounterVec
	PlayersNotFound    prometheus.Counter
	ValuationLatency   prometheus.Histogram

	// Seeding metrics
	SeasonsSeeded prometheus.Counter
	RowsSeeded    prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "vigiball_lab"
	}

	return &Metrics{
		ValuationsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "valuation",
			Name:      "computed_total",
			Help:      "Total number of valuations computed by position group",
		}, []string{"position_group"}),
		PlayersNotFound: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "valuation",
			Name:      "players_not_found_total",
			Help:      "Total number of valuation requests for unknown players",
		}),
		ValuationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "valuation",
			Name:      "latency_seconds",
			Help:      "Valuation computation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		SeasonsSeeded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "seasons_seeded_total",
			Help:      "Total number of season seed runs",
		}),
		RowsSeeded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "rows_seeded_total",
			Help:      "Total number of player rows inserted by seeding",
		}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"backend", "operation"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordValuation increments the computed counter for a position group
// and observes the computation latency.
func RecordValuation(positionGroup string, seconds float64) {
	DefaultMetrics.ValuationsComputed.WithLabelValues(positionGroup).Inc()
	DefaultMetrics.ValuationLatency.Observe(seconds)
}

// RecordNotFound increments the unknown-player counter.
func RecordNotFound() {
	DefaultMetrics.PlayersNotFound.Inc()
}

// RecordSeasonSeeded records a completed season seed run.
func RecordSeasonSeeded(rows int) {
	DefaultMetrics.SeasonsSeeded.Inc()
	DefaultMetrics.RowsSeeded.Add(float64(rows))
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(backend, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(backend, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(backend, operation).Inc()
	}
}
