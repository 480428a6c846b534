package user

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// ProfileService reads account profiles
type ProfileService interface {
	GetProfile(ctx context.Context, username string) (domain.Profile, error)
}

// FavoriteService manages a user's favorite champions
type FavoriteService interface {
	ListFavorites(ctx context.Context, username string) ([]domain.Champion, error)
	// AddFavorite is idempotent and reports whether a row was added
	AddFavorite(ctx context.Context, username string, championID int) (bool, error)
	RemoveFavorite(ctx context.Context, username string, championID int) error
}

// Service composes the user-facing operations.
// New code should depend on the smallest interface that meets its needs.
type Service interface {
	ProfileService
	FavoriteService
}
