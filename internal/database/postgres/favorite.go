package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// FavoriteRepository implements repository.Favorite for PostgreSQL
type FavoriteRepository struct {
	q *generated.Queries
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(pool *pgxpool.Pool) repository.Favorite {
	return &FavoriteRepository{q: generated.New(pool)}
}

// ListFavorites returns a user's favorite champions ordered by name
func (r *FavoriteRepository) ListFavorites(ctx context.Context, username string) ([]domain.Champion, error) {
	rows, err := r.q.ListFavorites(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	champions := make([]domain.Champion, len(rows))
	for i, row := range rows {
		champions[i] = domain.Champion{ID: int(row.ChampionID), Name: row.Name}
	}
	return champions, nil
}

// AddFavorite stores the pair once. Missing user or champion surfaces as a not-found error.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, username string, championID int) (bool, error) {
	n, err := r.q.AddFavorite(ctx, generated.AddFavoriteParams{
		Username:   username,
		ChampionID: int32(championID),
	})
	if err != nil {
		return false, translateFavoriteFK(err)
	}
	return n == 1, nil
}

// RemoveFavorite deletes the pair, reporting whether a row matched
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, username string, championID int) (bool, error) {
	n, err := r.q.RemoveFavorite(ctx, generated.RemoveFavoriteParams{
		Username:   username,
		ChampionID: int32(championID),
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return n > 0, nil
}

func translateFavoriteFK(err error) error {
	code, constraint := pgErrorCode(err)
	if code != PgErrorCodeForeignKeyViolation {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	if constraint == "favorites_username_fkey" {
		return domain.ErrUserNotFound
	}
	return domain.ErrChampionNotFound
}
