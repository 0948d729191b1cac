package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDuration        *prometheus.HistogramVec
	LoginAttemptsTotal         *prometheus.CounterVec
	AttendanceSubmissionsTotal *prometheus.CounterVec
	DBOpenConnections          prometheus.Gauge
	DBInUseConnections         prometheus.Gauge
	DBIdleConnections          prometheus.Gauge
	DBWaitCount                prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "path"}),
		LoginAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "login_attempts_total",
			Help:        "Login attempts by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		AttendanceSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "attendance_submissions_total",
			Help:        "Accepted attendance submissions by route",
			ConstLabels: labels,
		}, []string{"route"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the database pool",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LoginAttemptsTotal,
		m.AttendanceSubmissionsTotal,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
	)

	return m
}

// ObserveLogin учитывает попытку входа с исходом outcome
func (m *Metrics) ObserveLogin(outcome string) {
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveAttendance учитывает принятую отметку посещаемости
func (m *Metrics) ObserveAttendance(routeNumber int) {
	m.AttendanceSubmissionsTotal.WithLabelValues(strconv.Itoa(routeNumber)).Inc()
}

// Nop заглушка, когда метрики выключены
type Nop struct{}

func (Nop) ObserveLogin(string)   {}
func (Nop) ObserveAttendance(int) {}
