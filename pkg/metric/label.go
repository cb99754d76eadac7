package metric

import "github.com/prometheus/client_golang/prometheus"

var _ Label = (*labelMetrics)(nil)

type labelMetrics struct {
	purchased *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

func newLabelMetrics(registry *promRegistry) *labelMetrics {
	purchased := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labels_purchased_total",
			Help: "Total number of purchased shipping labels by carrier",
		},
		[]string{"provider"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labels_failed_total",
			Help: "Total number of failed label requests by pipeline stage",
		},
		[]string{"stage"},
	)

	registry.registry.MustRegister(purchased, failed)

	return &labelMetrics{
		purchased: purchased,
		failed:    failed,
	}
}

func (m *labelMetrics) Purchased(provider string) {
	m.purchased.WithLabelValues(provider).Inc()
}

func (m *labelMetrics) Failed(stage string) {
	m.failed.WithLabelValues(stage).Inc()
}
