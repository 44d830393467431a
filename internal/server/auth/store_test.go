package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
)

func TestTokenStore_MapsNotFound(t *testing.T) {
	mock := &storage.TokenStorageMock{
		GetTokenRecordFunc: func(ctx context.Context, fingerprint string) (*models.TokenRecord, error) {
			return nil, storage.ErrTokenNotFound
		},
		DeleteTokenRecordFunc: func(ctx context.Context, fingerprint string) error {
			return storage.ErrTokenNotFound
		},
	}
	store := NewTokenStore(mock)
	ctx := context.Background()

	record, err := store.FindByFingerprint(ctx, "fp")
	require.NoError(t, err)
	assert.Nil(t, record)

	deleted, err := store.DeleteByFingerprint(ctx, "fp")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTokenStore_Insert(t *testing.T) {
	fixed := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock := &storage.TokenStorageMock{
		SaveTokenRecordFunc: func(ctx context.Context, record *models.TokenRecord) error {
			return nil
		},
	}
	store := NewTokenStore(mock)
	store.now = func() time.Time { return fixed }

	require.NoError(t, store.Insert(context.Background(), "fp", "user-1"))

	calls := mock.SaveTokenRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, &models.TokenRecord{CreatedAt: fixed, Fingerprint: "fp", UserID: "user-1"}, calls[0].Record)
}

func TestTokenStore_WrapsErrors(t *testing.T) {
	dbErr := errors.New("boom")
	mock := &storage.TokenStorageMock{
		SaveTokenRecordFunc: func(ctx context.Context, record *models.TokenRecord) error {
			return dbErr
		},
		DeleteUserTokenRecordsFunc: func(ctx context.Context, userID string) (int, error) {
			return 0, dbErr
		},
		DeleteTokenRecordsCreatedBeforeFunc: func(ctx context.Context, cutoff time.Time) (int, error) {
			return 0, dbErr
		},
	}
	store := NewTokenStore(mock)
	ctx := context.Background()

	assert.ErrorIs(t, store.Insert(ctx, "fp", "u"), dbErr)

	_, err := store.DeleteAllForIdentity(ctx, "u")
	assert.ErrorIs(t, err, dbErr)

	_, err = store.DeleteCreatedBefore(ctx, time.Now())
	assert.ErrorIs(t, err, dbErr)
}
