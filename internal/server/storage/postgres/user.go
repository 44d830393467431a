package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/iudanet/socialnet/internal/models"
	"github.com/iudanet/socialnet/internal/server/storage"
)

// userRow строка таблицы users; роли хранятся в JSONB
type userRow struct {
	CreatedAt    time.Time `db:"created_at"`
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Username     string    `db:"username"`
	RealName     string    `db:"real_name"`
	Roles        []byte    `db:"roles"`
}

func (r *userRow) toModel() (*models.User, error) {
	user := &models.User{
		CreatedAt:    r.CreatedAt,
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Username:     r.Username,
		RealName:     r.RealName,
	}

	if err := json.Unmarshal(r.Roles, &user.Roles); err != nil {
		return nil, fmt.Errorf("failed to decode user roles: %w", err)
	}

	return user, nil
}

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, username, real_name, roles, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	encoded, err := json.Marshal(roles)
	if err != nil {
		return fmt.Errorf("failed to encode user roles: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Username,
		user.RealName,
		string(encoded),
		user.CreatedAt.UTC(),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, username, real_name, roles, created_at
		FROM users
		WHERE email = $1
	`

	return s.getUser(ctx, query, email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, username, real_name, roles, created_at
		FROM users
		WHERE id = $1
	`

	return s.getUser(ctx, query, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	var row userRow
	if err := sqlscan.Get(ctx, s.db, &row, query, arg); err != nil {
		if sqlscan.NotFound(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return row.toModel()
}
