package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Factory = (*prometheusFactory)(nil)

type prometheusFactory struct {
	registry *promRegistry
	http     *httpMetrics
	upstream *upstreamMetrics
	label    *labelMetrics
}

// NewFactory builds all metric groups on a fresh registry, so several
// factories can coexist in one process.
func NewFactory() Factory {
	registry := newPromRegistry()

	return &prometheusFactory{
		registry: registry,
		http:     newHTTPMetrics(registry),
		upstream: newUpstreamMetrics(registry),
		label:    newLabelMetrics(registry),
	}
}

func (f *prometheusFactory) HTTP() HTTP {
	return f.http
}

func (f *prometheusFactory) Upstream() Upstream {
	return f.upstream
}

func (f *prometheusFactory) Label() Label {
	return f.label
}

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		})
}

type promRegistry struct {
	registry *prometheus.Registry
}

func newPromRegistry() *promRegistry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &promRegistry{registry: reg}
}
