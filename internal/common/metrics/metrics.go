// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of match requests by service type and outcome",
		},
		[]string{"service_type", "outcome"},
	)

	MatchRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_request_duration_seconds",
			Help: "Duration of match request processing in seconds",
		},
		[]string{"service_type"},
	)

	MatchedWorkersReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matched_workers_returned",
			Help:    "Number of workers returned per successful match request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	WorkerSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_selections_total",
			Help: "Total number of worker selection attempts by outcome",
		},
		[]string{"outcome"},
	)

	WorkerSelectionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "worker_selection_conflicts_total",
			Help: "Selection attempts lost to a concurrent assignment",
		},
	)
)

// Outcome label values for MatchRequestsTotal.
const (
	OutcomeMatched         = "matched"
	OutcomeNoWorkersOfType = "no_workers_of_type"
	OutcomeNoCapability    = "no_capability_match"
	OutcomeNoLocation      = "no_location_match"
	OutcomeBadLocation     = "location_unresolved"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeError           = "error"
)
