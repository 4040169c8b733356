// Package metrics exposes Prometheus counters for orders, reservations,
// chat intents and HTTP traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaurant_bot"

type Metrics struct {
	registry *prometheus.Registry

	OrdersPlaced        *prometheus.CounterVec
	OrderRevenue        *prometheus.CounterVec
	ReservationsCreated prometheus.Counter
	ReservationGuests   prometheus.Histogram
	ChatReplies         *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New registers every collector on a private registry so tests can build
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersPlaced: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders accepted, by delivery type.",
		}, []string{"delivery_type"}),
		OrderRevenue: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_rupees_total",
			Help:      "Sum of order totals in rupees, by delivery type.",
		}, []string{"delivery_type"}),
		ReservationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Table reservations accepted.",
		}),
		ReservationGuests: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reservation_guests",
			Help:      "Party size of accepted reservations.",
			Buckets:   []float64{1, 2, 4, 6, 8, 12, 20},
		}),
		ChatReplies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_replies_total",
			Help:      "Chatbot replies, by matched intent.",
		}, []string{"intent"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
