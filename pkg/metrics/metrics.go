// Package metrics содержит prometheus-коллекторы сервиса: HTTP-запросы,
// запросы к БД и состояние connection pool.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов, регистрируемых в глобальном registry
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec

	BookingsCreatedTotal *prometheus.CounterVec
}

// New регистрирует и возвращает коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds.",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections.",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections.",
			ConstLabels: constLabels,
		}, []string{"state"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created, by booking type.",
			ConstLabels: constLabels,
		}, []string{"booking_type"}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(bookingType string) {
	m.BookingsCreatedTotal.WithLabelValues(bookingType).Inc()
}

// ObserveDBQuery записывает метрики одного запроса к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
