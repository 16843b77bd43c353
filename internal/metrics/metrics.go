// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service's collectors. Constructed once in main and
// injected where needed.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	OccupancyPollsTotal *prometheus.CounterVec
	RoomsByStatus       *prometheus.GaugeVec
}

// New registers the service collectors on the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OccupancyPollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "occupancy_polls_total",
			Help:      "Background occupancy poll attempts by result.",
		}, []string{"result"}),
		RoomsByStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_by_status",
			Help:      "Current roster count per resolved status.",
		}, []string{"status"}),
	}
}

// ObserveStatuses records the per-status room counts from one roster
// snapshot.
func (m *Metrics) ObserveStatuses(counts map[string]int) {
	m.RoomsByStatus.Reset()
	for status, n := range counts {
		m.RoomsByStatus.WithLabelValues(status).Set(float64(n))
	}
}
