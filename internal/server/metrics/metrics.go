// Package metrics содержит Prometheus метрики сервера.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialnet"

// Результаты операций для label "result"
const (
	ResultSuccess            = "success"
	ResultInvalidCredentials = "invalid_credentials"
	ResultUnauthorized       = "unauthorized"
	ResultError              = "error"
)

// Metrics набор метрик сервера. Nil-значение безопасно: все методы ничего не делают.
type Metrics struct {
	logins          *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	reuseDetected   prometheus.Counter
	registrations   prometheus.Counter
	recordsReaped   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total number of login attempts by result.",
		}, []string{"result"}),
		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "refreshes_total",
			Help:      "Total number of token refresh attempts by result.",
		}, []string{"result"}),
		reuseDetected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "refresh_reuse_detected_total",
			Help:      "Total number of refresh token reuse detections.",
		}),
		registrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "users_registered_total",
			Help:      "Total number of registered users.",
		}),
		recordsReaped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_records_reaped_total",
			Help:      "Total number of stale token records removed by the reaper.",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "pattern", "status"}),
	}
}

// ObserveLogin учитывает попытку входа
func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// ObserveRefresh учитывает попытку обновления токенов
func (m *Metrics) ObserveRefresh(result string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(result).Inc()
}

// ObserveReuseDetected учитывает обнаруженное повторное использование refresh токена
func (m *Metrics) ObserveReuseDetected() {
	if m == nil {
		return
	}
	m.reuseDetected.Inc()
}

// ObserveRegistration учитывает регистрацию пользователя
func (m *Metrics) ObserveRegistration() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

// ObserveReaped учитывает удаленные устаревшие записи
func (m *Metrics) ObserveReaped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsReaped.Add(float64(n))
}

// ObserveRequest учитывает длительность HTTP запроса
func (m *Metrics) ObserveRequest(method, pattern string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if pattern == "" {
		pattern = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, pattern, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
