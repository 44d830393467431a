package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
)

type tokenRecordRow struct {
	CreatedAt   time.Time `db:"created_at"`
	Fingerprint string    `db:"fingerprint"`
	UserID      string    `db:"user_id"`
}

func (r *tokenRecordRow) toModel() *models.TokenRecord {
	return &models.TokenRecord{
		CreatedAt:   r.CreatedAt,
		Fingerprint: r.Fingerprint,
		UserID:      r.UserID,
	}
}

// SaveTokenRecord stores a new token record
func (s *Storage) SaveTokenRecord(ctx context.Context, record *models.TokenRecord) error {
	query := `
		INSERT INTO token_records (fingerprint, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, record.Fingerprint, record.UserID, record.CreatedAt.UTC())
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
		WHERE fingerprint = $1
	`

	var row tokenRecordRow
	if err := sqlscan.Get(ctx, s.db, &row, query, fingerprint); err != nil {
		if sqlscan.NotFound(err) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token record: %w", err)
	}

	return row.toModel(), nil
}

// DeleteTokenRecord deletes token record by fingerprint
func (s *Storage) DeleteTokenRecord(ctx context.Context, fingerprint string) error {
	n, err := s.exec(ctx, `DELETE FROM token_records WHERE fingerprint = $1`, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to delete token record: %w", err)
	}

	if n == 0 {
		return storage.ErrTokenNotFound
	}

	return nil
}

// DeleteUserTokenRecords deletes all token records for a user
func (s *Storage) DeleteUserTokenRecords(ctx context.Context, userID string) (int, error) {
	n, err := s.exec(ctx, `DELETE FROM token_records WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user token records: %w", err)
	}
	return n, nil
}

// DeleteTokenRecordsCreatedBefore removes records created before cutoff
func (s *Storage) DeleteTokenRecordsCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.exec(ctx, `DELETE FROM token_records WHERE created_at < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale token records: %w", err)
	}
	return n, nil
}

// exec выполняет запрос и возвращает число затронутых строк
func (s *Storage) exec(ctx context.Context, query string, args ...any) (int, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
