package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// Champion defines persistence for champion and item reference data
type Champion interface {
	ListChampions(ctx context.Context) ([]domain.Champion, error)
	GetChampionByID(ctx context.Context, id int) (*domain.Champion, error)
	// GetChampionsByNames matches names case-insensitively
	GetChampionsByNames(ctx context.Context, names []string) ([]domain.Champion, error)
	// CreateChampion lets the database assign an id when id is nil
	CreateChampion(ctx context.Context, name string, id *int) (*domain.Champion, error)
	SyncChampions(ctx context.Context, champions []domain.Champion) (inserted int, err error)

	ListItems(ctx context.Context) ([]domain.Item, error)
	SyncItems(ctx context.Context, items []domain.Item) (inserted, updated, removed int, err error)
}
