package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// User defines the interface for account persistence
type User interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser returns false when the username is already taken
	CreateUser(ctx context.Context, user domain.User) (bool, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	UpsertUser(ctx context.Context, user domain.User) (bool, error)
}
