package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters exported by the service on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	LinksGenerated *prometheus.CounterVec
	LinkFailures   *prometheus.CounterVec
	SinkDelivered  *prometheus.CounterVec
	SinkFailed     *prometheus.CounterVec
}

// New builds and registers the counters under the given namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		LinksGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "links_generated_total",
			Help:      "Payment links generated, by provider.",
		}, []string{"provider"}),
		LinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "link_failures_total",
			Help:      "Payment link requests that failed, by provider.",
		}, []string{"provider"}),
		SinkDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "errorlog",
			Name:      "messages_delivered_total",
			Help:      "Error messages delivered, by sink.",
		}, []string{"sink"}),
		SinkFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "errorlog",
			Name:      "messages_failed_total",
			Help:      "Error messages a sink failed to deliver, by sink.",
		}, []string{"sink"}),
	}
	reg.MustRegister(m.LinksGenerated, m.LinkFailures, m.SinkDelivered, m.SinkFailed)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
