package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// Favorite defines persistence for per-user favorite champions
type Favorite interface {
	ListFavorites(ctx context.Context, username string) ([]domain.Champion, error)
	// AddFavorite returns false when the pair already existed
	AddFavorite(ctx context.Context, username string, championID int) (bool, error)
	// RemoveFavorite returns false when nothing matched
	RemoveFavorite(ctx context.Context, username string, championID int) (bool, error)
}
