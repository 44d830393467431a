package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/auth"
	"github.com/iudanet/socialnet/pkg/api"
)

//go:generate moq -out service_mock.go . AuthService UserService

// AuthService операции аутентификации, нужные HTTP слою
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password, existingRefreshToken string) (*auth.Session, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*auth.Session, error)
	LogoutEverywhere(ctx context.Context, userID string) (int, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger  *slog.Logger
	service AuthService
	cookies CookieConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
		cookies: cookies,
	}
}

// Register обрабатывает POST /api/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Парсим request body
	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// 2. Регистрируем
	_, err := h.service.Register(ctx, auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		RealName: req.RealName,
	})
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			WriteError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, auth.ErrEmailTaken):
			WriteError(w, http.StatusConflict, "email already exists")
		default:
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Login обрабатывает POST /api/auth/login
// Аутентификация пользователя по email и паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Парсим request body
	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// 2. Проверяем учетные данные, старый refresh token утилизируется внутри
	session, err := h.service.Login(ctx, req.Email, req.Password, readRefreshCookie(r))
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			WriteError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, auth.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, "invalid email or password")
		default:
			h.logger.ErrorContext(ctx, "failed to log in", slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	// 3. Refresh token только в HttpOnly cookie, access token в теле
	h.cookies.setRefreshCookie(w, session.RefreshToken)

	resp := api.LoginResponse{
		User:        toAPIUser(session.User),
		AccessToken: session.AccessToken,
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

// Logout обрабатывает POST /api/auth/logout
// Всегда отвечает 204 и удаляет cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.cookies.clearRefreshCookie(w)

	refreshToken := readRefreshCookie(r)
	if refreshToken == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.service.Logout(ctx, refreshToken); err != nil {
		h.logger.ErrorContext(ctx, "failed to log out", slog.Any("error", err))
	}

	w.WriteHeader(http.StatusNoContent)
}

// Refresh обрабатывает GET /api/auth/refresh
// Обменивает refresh token из cookie на новую пару токенов
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken := readRefreshCookie(r)
	if refreshToken == "" {
		WriteError(w, http.StatusUnauthorized, "refresh token is required")
		return
	}

	session, err := h.service.Refresh(ctx, refreshToken)
	if err != nil {
		// Предъявленный токен больше не годится в любом случае
		h.cookies.clearRefreshCookie(w)

		switch {
		case errors.Is(err, auth.ErrReuseDetected):
			h.logger.WarnContext(ctx, "refresh token reuse detected")
			WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		case errors.Is(err, auth.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		default:
			h.logger.ErrorContext(ctx, "failed to refresh tokens", slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, "")
		}
		return
	}

	h.cookies.setRefreshCookie(w, session.RefreshToken)

	resp := api.RefreshResponse{
		User:           toAPIUser(session.User),
		NewAccessToken: session.AccessToken,
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

// LogoutAll обрабатывает POST /api/auth/logout-all
// Завершает все сессии пользователя (требует access token)
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if _, err := h.service.LogoutEverywhere(ctx, userID); err != nil {
		h.logger.ErrorContext(ctx, "failed to log out everywhere", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "")
		return
	}

	h.cookies.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	if err := WriteJSON(w, statusCode, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode JSON response", slog.Any("error", err))
	}
}
