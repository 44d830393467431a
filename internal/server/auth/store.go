package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
)

// TokenStore хранит отпечатки выданных refresh токенов.
// Каждая операция это один атомарный запрос к хранилищу.
type TokenStore struct {
	storage storage.TokenStorage
	now     func() time.Time
}

// NewTokenStore создает TokenStore поверх хранилища токенов
func NewTokenStore(s storage.TokenStorage) *TokenStore {
	return &TokenStore{
		storage: s,
		now:     time.Now,
	}
}

// Insert сохраняет запись о выданном токене
func (s *TokenStore) Insert(ctx context.Context, fingerprint, userID string) error {
	record := &models.TokenRecord{
		CreatedAt:   s.now(),
		Fingerprint: fingerprint,
		UserID:      userID,
	}

	if err := s.storage.SaveTokenRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to insert token record: %w", err)
	}

	return nil
}

// FindByFingerprint возвращает запись или nil, если ее нет
func (s *TokenStore) FindByFingerprint(ctx context.Context, fingerprint string) (*models.TokenRecord, error) {
	record, err := s.storage.GetTokenRecord(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find token record: %w", err)
	}

	return record, nil
}

// DeleteByFingerprint удаляет запись. Удаление отсутствующей записи не ошибка.
// Возвращает true, если запись была удалена именно этим вызовом.
func (s *TokenStore) DeleteByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	err := s.storage.DeleteTokenRecord(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete token record: %w", err)
	}

	return true, nil
}

// DeleteAllForIdentity удаляет все записи пользователя (выход на всех устройствах)
func (s *TokenStore) DeleteAllForIdentity(ctx context.Context, userID string) (int, error) {
	n, err := s.storage.DeleteUserTokenRecords(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete token records of user: %w", err)
	}

	return n, nil
}

// DeleteCreatedBefore удаляет записи, созданные раньше cutoff
func (s *TokenStore) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.storage.DeleteTokenRecordsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale token records: %w", err)
	}

	return n, nil
}
