package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/socialnet/internal/server/handlers"
	"github.com/iudanet/socialnet/internal/server/middleware"
)

// refreshCookiePath браузер отправляет refresh cookie только на auth endpoints
const refreshCookiePath = "/api/auth"

// Handler собирает маршруты и цепочку middleware
func (a *App) Handler() http.Handler {
	cookies := handlers.CookieConfig{
		Path:   refreshCookiePath,
		MaxAge: a.cfg.RefreshTokenTTL,
		Secure: a.cfg.IsProduction(),
	}

	authHandler := handlers.NewAuthHandler(a.logger, a.service, cookies)
	userHandler := handlers.NewUserHandler(a.logger, a.service)
	healthHandler := handlers.NewHealthHandler(a.logger, a.version, a.storage)

	requireAuth := middleware.AuthMiddleware(a.logger, a.codec)
	limited := middleware.RateLimitMiddleware(a.limiter, a.logger)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.Handle("POST /api/auth/register", limited(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", limited(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	// Требуют access token
	mux.Handle("POST /api/auth/logout-all", requireAuth(http.HandlerFunc(authHandler.LogoutAll)))
	mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(userHandler.Me)))

	mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	// Порядок: recovery -> logging -> metrics -> mux
	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(a.metrics)(handler)
	handler = middleware.LoggingWithSkip(a.logger, []string{"/api/health", "/metrics"})(handler)
	handler = middleware.RecoveryMiddleware(a.logger)(handler)

	return handler
}
