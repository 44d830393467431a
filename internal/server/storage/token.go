package storage

import (
	"context"
	"time"

	"github.com/iudanet/socialnet/internal/models"
)

//go:generate moq -out storage_mock.go . UserStorage TokenStorage

// TokenStorage defines interface for refresh token record persistence.
// Records are keyed by fingerprint; each statement is atomic on its own.
type TokenStorage interface {
	// SaveTokenRecord stores a new token record
	SaveTokenRecord(ctx context.Context, record *models.TokenRecord) error

	// GetTokenRecord retrieves token record by fingerprint
	// Returns ErrTokenNotFound if record doesn't exist
	GetTokenRecord(ctx context.Context, fingerprint string) (*models.TokenRecord, error)

	// DeleteTokenRecord deletes token record by fingerprint
	// Returns ErrTokenNotFound if record doesn't exist
	DeleteTokenRecord(ctx context.Context, fingerprint string) error

	// DeleteUserTokenRecords deletes all token records for a user
	// Returns number of deleted records
	DeleteUserTokenRecords(ctx context.Context, userID string) (int, error)

	// DeleteTokenRecordsCreatedBefore removes records created before cutoff
	// Returns number of deleted records
	DeleteTokenRecordsCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Storage объединяет хранилища пользователей и токенов одного бэкенда
type Storage interface {
	UserStorage
	TokenStorage
	PingContext(ctx context.Context) error
	Close() error
}
