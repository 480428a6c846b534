package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{db: db, q: generated.New(db)}
}

// GetUserByUsername finds a user by exact username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mapUser(row), nil
}

// CreateUser inserts a user, reporting false if the name is taken
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (bool, error) {
	n, err := r.q.CreateUser(ctx, generated.CreateUserParams{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return n == 1, nil
}

// UpdatePassword replaces the stored hash
func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	n, err := r.q.UpdateUserPassword(ctx, generated.UpdateUserPasswordParams{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpsertUser creates or overwrites a user, reporting whether it was inserted
func (r *UserRepository) UpsertUser(ctx context.Context, user domain.User) (bool, error) {
	inserted, err := r.q.UpsertUser(ctx, generated.UpsertUserParams{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert user: %w", err)
	}
	return inserted, nil
}

func mapUser(row generated.User) *domain.User {
	return &domain.User{
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
