package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/pkg/api"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// WriteJSON отправляет JSON ответ
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError отправляет JSON ответ с ошибкой.
// Для 5xx наружу уходит только общий текст.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		message = "internal server error"
	}

	_ = WriteJSON(w, statusCode, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// decodeJSON читает тело запроса в v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// toAPIUser преобразует модель пользователя в публичный DTO
func toAPIUser(u *models.User) api.User {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	return api.User{
		CreatedAt: u.CreatedAt,
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		RealName:  u.RealName,
		Roles:     roles,
	}
}
