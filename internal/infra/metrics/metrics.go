// Package metrics exposes booking and HTTP counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"studio-calendar/internal/domain/reservation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studio_calendar"

type Metrics struct {
	registry *prometheus.Registry

	reservationCreated *prometheus.CounterVec
	reservationDecided *prometheus.CounterVec
	bookingConflict    prometheus.Counter
	httpDuration       *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reservationCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_created_total",
				Help:      "Reservation requests created, by resulting status.",
			},
			[]string{"status"},
		),
		reservationDecided: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_decided_total",
				Help:      "Owner decisions over reservation requests.",
			},
			[]string{"action", "changed"},
		),
		bookingConflict: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_conflict_total",
				Help:      "Bookings refused because the slot was already taken.",
			},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	m.registry.MustRegister(
		m.reservationCreated,
		m.reservationDecided,
		m.bookingConflict,
		m.httpDuration,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ReservationCreated(status reservation.Status) {
	m.reservationCreated.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) ReservationDecided(action reservation.Action, changed bool) {
	m.reservationDecided.WithLabelValues(string(action), strconv.FormatBool(changed)).Inc()
}

func (m *Metrics) BookingConflict() {
	m.bookingConflict.Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
