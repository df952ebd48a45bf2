package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec

	SlotsGenerated    prometheus.Counter
	BookingsSubmitted *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном регистре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном регистре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BackendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "backend_requests_total",
			Help:      "Calls to the MediCare REST backend.",
		}, []string{"endpoint", "outcome"}),
		BackendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the MediCare REST backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		SlotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "slots_generated_total",
			Help:      "Candidate time slots generated.",
		}),
		BookingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_submitted_total",
			Help:      "Booking submissions by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequestsTotal,
		m.BackendRequestDuration,
		m.SlotsGenerated,
		m.BookingsSubmitted,
	)

	return m
}

// Методы безопасны для nil *Metrics (метрики выключены)

// ObserveHTTP фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBackend фиксирует вызов внешнего API
func (m *Metrics) ObserveBackend(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.BackendRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) AddSlotsGenerated(n int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.Add(float64(n))
}

func (m *Metrics) IncBooking(result string) {
	if m == nil {
		return
	}
	m.BookingsSubmitted.WithLabelValues(result).Inc()
}
