package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	"github.com/ledgerpad/ledgerpad_app/internal/models"
	"github.com/ledgerpad/ledgerpad_app/internal/utils/mapping"
)

// UserRepository implements the user port on PostgreSQL.
type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

const userColumns = `user_id, name, email, password_hash, auth_provider,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.AuthProvider,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	return m, err
}

// CreateUser persists a new user.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	m := mapping.UserToModel(user)
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.AuthProvider,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", mapWriteError(err))
	}
	return nil
}

// FindUserByID retrieves a user by ID, excluding soft-deleted users.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", mapReadError(err))
	}
	return mapping.UserToDomain(m), nil
}

// FindUserByEmail retrieves a user by email, excluding soft-deleted users.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", mapReadError(err))
	}
	return mapping.UserToDomain(m), nil
}

// ListUsers returns all non-deleted users ordered by creation time.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", mapReadError(err))
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", mapReadError(err))
		}
		users = append(users, mapping.UserToDomain(m))
	}
	return users, mapReadError(rows.Err())
}

// UpdateUser persists profile changes.
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.UserToModel(user)
	query := `UPDATE users SET name = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", mapReadError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser soft-deletes a user.
func (r *UserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	now := time.Now().UTC()
	query := `UPDATE users SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL`
	tag, err := r.Pool.Exec(ctx, query, now, deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", mapReadError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
