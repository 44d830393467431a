package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
	"github.com/iudanet/socialnet/pkg/api"
)

// UserService операции с профилем пользователя
type UserService interface {
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// UserHandler обрабатывает запросы к профилю пользователя
type UserHandler struct {
	logger  *slog.Logger
	service UserService
}

// NewUserHandler создает новый handler профиля
func NewUserHandler(logger *slog.Logger, service UserService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		service: service,
	}
}

// Me обрабатывает GET /api/users/me
// Возвращает профиль владельца access token
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get current user", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "")
		return
	}

	if err := WriteJSON(w, http.StatusOK, api.UserResponse{User: toAPIUser(user)}); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode user response", slog.Any("error", err))
	}
}
