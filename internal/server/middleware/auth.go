package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/socialnet/internal/server/handlers"
	"github.com/iudanet/socialnet/internal/server/token"
)

// AccessVerifier проверяет подпись и срок действия access token
type AccessVerifier interface {
	VerifyAccess(raw string) (*token.Claims, error)
}

// AuthMiddleware создает middleware для проверки access token.
// Нет заголовка или неверный формат: 401.
// Токен есть, но подпись или срок действия не прошли проверку: 403.
// Клиент по 403 понимает, что нужно обновить токены.
func AuthMiddleware(logger *slog.Logger, verifier AccessVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.DebugContext(ctx, "missing Authorization header", slog.String("path", r.URL.Path))
				handlers.WriteError(w, http.StatusUnauthorized, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, raw, found := strings.Cut(authHeader, " ")
			raw = strings.TrimSpace(raw)
			if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				logger.WarnContext(ctx, "invalid Authorization header format", slog.String("path", r.URL.Path))
				handlers.WriteError(w, http.StatusUnauthorized, "invalid token format")
				return
			}

			claims, err := verifier.VerifyAccess(raw)
			if err != nil {
				logger.DebugContext(ctx, "access token rejected", slog.Any("error", err))
				handlers.WriteError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx = handlers.WithIdentity(ctx, claims.UserID, claims.Roles)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
