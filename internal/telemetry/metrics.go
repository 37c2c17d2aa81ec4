package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Station-local Prometheus metrics, scraped off the telemetry listener.
var (
	// ScansRecorded counts scan mutations by outcome (opened/closed/error).
	ScansRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "station_scans_recorded_total",
		Help: "The total number of scan mutations recorded",
	}, []string{"outcome"})

	// MutationFailures counts failed mutations by action.
	MutationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "station_mutation_failures_total",
		Help: "The total number of failed mutations",
	}, []string{"action"})

	// LookupDuration tracks identity/operation lookup latency.
	LookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "station_lookup_duration_seconds",
		Help:    "Time spent resolving badge and work-order lookups",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	// DashboardRefreshes counts dashboard poll cycles by result.
	DashboardRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "station_dashboard_refreshes_total",
		Help: "The total number of dashboard summary refreshes",
	}, []string{"result"})
)
