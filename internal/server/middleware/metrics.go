package middleware

import (
	"net/http"
	"time"

	"github.com/iudanet/socialnet/internal/server/metrics"
)

// MetricsMiddleware учитывает длительность запросов по шаблону маршрута.
// Должен оборачивать ServeMux: r.Pattern заполняется при маршрутизации.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(r.Method, r.Pattern, wrapped.statusCode, time.Since(start))
		})
	}
}
