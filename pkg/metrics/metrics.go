// Package metrics registers the Prometheus collectors exposed by the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector used across the service
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	GeocodeRequestsTotal *prometheus.CounterVec
	SweepDeletedTotal    prometheus.Counter
}

// ObserveGeocode counts an outbound geocoding lookup by outcome
func (m *Metrics) ObserveGeocode(outcome string) {
	m.GeocodeRequestsTotal.WithLabelValues(outcome).Inc()
}

// New registers the collectors on the default registry.
// serviceName becomes a constant label on every series.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of processed HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		GeocodeRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "geocode_requests_total",
			Help:        "Outbound geocoding lookups by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SweepDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sweep_deleted_reservations_total",
			Help:        "Reservations purged by the periodic sweep",
			ConstLabels: constLabels,
		}),
	}
}
