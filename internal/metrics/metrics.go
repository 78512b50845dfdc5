package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "method", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"endpoint"},
	)
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_batch_transactions",
			Help:    "Number of transactions per analyzed batch",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
	HighRiskTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_high_risk_transactions_total",
			Help: "Total transactions classified as high risk",
		},
	)
)
