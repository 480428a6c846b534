package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

type service struct {
	users     repository.User
	favorites repository.Favorite
}

// NewService creates a new user service
func NewService(users repository.User, favorites repository.Favorite) Service {
	return &service{users: users, favorites: favorites}
}

func (s *service) GetProfile(ctx context.Context, username string) (domain.Profile, error) {
	u, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return domain.Profile{}, err
	}
	return u.Profile(), nil
}

// ListFavorites returns the user's favorites ordered by champion name.
// An unknown user has no favorites rather than an error.
func (s *service) ListFavorites(ctx context.Context, username string) ([]domain.Champion, error) {
	favs, err := s.favorites.ListFavorites(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if favs == nil {
		favs = []domain.Champion{}
	}
	return favs, nil
}

func checkFavorite(username string, championID int) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if championID <= 0 {
		return fmt.Errorf("%w: champion id must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) AddFavorite(ctx context.Context, username string, championID int) (bool, error) {
	username = strings.TrimSpace(username)
	if err := checkFavorite(username, championID); err != nil {
		return false, err
	}
	added, err := s.favorites.AddFavorite(ctx, username, championID)
	if err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgFavoriteAdded, "username", username, "champion_id", championID, "added", added)
	return added, nil
}

func (s *service) RemoveFavorite(ctx context.Context, username string, championID int) error {
	username = strings.TrimSpace(username)
	if err := checkFavorite(username, championID); err != nil {
		return err
	}
	removed, err := s.favorites.RemoveFavorite(ctx, username, championID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrFavoriteNotFound
	}
	logger.FromContext(ctx).Info(LogMsgFavoriteRemoved, "username", username, "champion_id", championID)
	return nil
}
