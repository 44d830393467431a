package storage

import (
	"context"
	"time"

	"github.com/iudanet/socialnet/pkg/api"
)

// SessionStorage хранит текущую сессию клиента между запусками.
// Это нижний слой: данные сохраняются как есть.
type SessionStorage interface {
	// SaveSession перезаписывает сохраненную сессию
	SaveSession(ctx context.Context, s *SessionData) error

	// GetSession возвращает сохраненную сессию.
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession удаляет сессию. Отсутствие сессии не является ошибкой.
	DeleteSession(ctx context.Context) error
}

// SessionData - сохраненное состояние аутентификации.
// Refresh token здесь не хранится: он живет только в cookie jar.
type SessionData struct {
	SavedAt     time.Time `json:"saved_at"`
	User        api.User  `json:"user"`
	AccessToken string    `json:"access_token"`
}
