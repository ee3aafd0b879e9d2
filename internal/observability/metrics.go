package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiErrorsTotal        *prometheus.CounterVec
	feeDeriveSeconds      *prometheus.HistogramVec
	followupDeriveSeconds *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "institute_api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "institute_api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "institute_api_errors_total",
			Help: "Total number of error responses returned by API endpoints.",
		}, []string{"method", "route", "status"})

		feeDeriveSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "institute_fee_derive_seconds",
			Help:    "Time spent recomputing fee balances from the payment event log.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"operation"})

		followupDeriveSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "institute_followup_derive_seconds",
			Help:    "Time spent recomputing engagement state from the follow-up event log.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"operation"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, feeDeriveSeconds, followupDeriveSeconds)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// FeeDeriveLatency exposes the histogram for fee-ledger derivations.
func FeeDeriveLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return feeDeriveSeconds
}

// FollowupDeriveLatency exposes the histogram for lifecycle derivations.
func FollowupDeriveLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return followupDeriveSeconds
}
