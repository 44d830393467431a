package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
)

// SaveTokenRecord stores a new token record
func (s *Storage) SaveTokenRecord(ctx context.Context, record *models.TokenRecord) error {
	query := `
		INSERT INTO token_records (fingerprint, user_id, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.Fingerprint,
		record.UserID,
		record.CreatedAt.UnixNano(),
	)

	if err != nil {
		return fmt.Errorf("failed to save token record: %w", err)
	}

	return nil
}

// GetTokenRecord retrieves token record by fingerprint
func (s *Storage) GetTokenRecord(ctx context.Context, fingerprint string) (*models.TokenRecord, error) {
	query := `
		SELECT fingerprint, user_id, created_at
		FROM token_records
		WHERE fingerprint = ?
	`

	record := &models.TokenRecord{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, fingerprint).Scan(
		&record.Fingerprint,
		&record.UserID,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token record: %w", err)
	}

	record.CreatedAt = time.Unix(0, createdAt).UTC()

	return record, nil
}

// DeleteTokenRecord deletes token record by fingerprint.
// Удаление атомарно: из двух конкурентных вызовов успешен только один.
func (s *Storage) DeleteTokenRecord(ctx context.Context, fingerprint string) error {
	query := `DELETE FROM token_records WHERE fingerprint = ?`

	result, err := s.db.ExecContext(ctx, query, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to delete token record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTokenNotFound
	}

	return nil
}

// DeleteUserTokenRecords deletes all token records for a user
func (s *Storage) DeleteUserTokenRecords(ctx context.Context, userID string) (int, error) {
	query := `DELETE FROM token_records WHERE user_id = ?`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user token records: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

// DeleteTokenRecordsCreatedBefore removes records created before cutoff
func (s *Storage) DeleteTokenRecordsCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `DELETE FROM token_records WHERE created_at < ?`

	result, err := s.db.ExecContext(ctx, query, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale token records: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
