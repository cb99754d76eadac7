package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Upstream = (*upstreamMetrics)(nil)

type upstreamMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func newUpstreamMetrics(registry *promRegistry) *upstreamMetrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shippo_request_duration_seconds",
			Help:    "Duration of shipping provider calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 20.0},
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shippo_request_failures_total",
			Help: "Total number of failed shipping provider calls",
		},
		[]string{"operation", "reason"},
	)

	registry.registry.MustRegister(duration, failures)

	return &upstreamMetrics{
		duration: duration,
		failures: failures,
	}
}

func (m *upstreamMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *upstreamMetrics) IncrementFailures(operation string, reason string) {
	m.failures.WithLabelValues(operation, reason).Add(1)
}
