package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Module provides the service metrics registry.
var Module = fx.Provide(New)

// Metrics groups the counters exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Notifications prometheus.Counter
	Ratings       prometheus.Counter
	Persistence   *prometheus.CounterVec
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
}

// New registers all collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		OrdersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cleanup_orders_created_total",
				Help: "Orders created, by service kind",
			},
			[]string{"service"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cleanup_order_transitions_total",
				Help: "Applied status transitions, by driver and target status",
			},
			[]string{"driver", "status"},
		),
		Notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cleanup_notifications_total",
			Help: "Notifications appended to the log",
		}),
		Ratings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cleanup_ratings_total",
			Help: "Accepted order ratings",
		}),
		Persistence: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cleanup_persistence_failures_total",
				Help: "Failed collection saves, by collection",
			},
			[]string{"collection"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cleanup_http_requests_total",
				Help: "HTTP requests served",
			},
			[]string{"method", "route", "code"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cleanup_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.OrdersCreated,
		m.Transitions,
		m.Notifications,
		m.Ratings,
		m.Persistence,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
