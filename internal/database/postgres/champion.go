package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// ChampionRepository implements repository.Champion for PostgreSQL using sqlc
type ChampionRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewChampionRepository creates a new ChampionRepository
func NewChampionRepository(pool *pgxpool.Pool) repository.Champion {
	return &ChampionRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// ListChampions returns every champion ordered by name
func (r *ChampionRepository) ListChampions(ctx context.Context) ([]domain.Champion, error) {
	rows, err := r.q.ListChampions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}
	champions := make([]domain.Champion, len(rows))
	for i, row := range rows {
		champions[i] = domain.Champion{ID: int(row.ChampionID), Name: row.Name}
	}
	return champions, nil
}

// GetChampionByID retrieves a champion by id
func (r *ChampionRepository) GetChampionByID(ctx context.Context, id int) (*domain.Champion, error) {
	row, err := r.q.GetChampionByID(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChampionNotFound
		}
		return nil, fmt.Errorf("failed to get champion: %w", err)
	}
	return &domain.Champion{ID: int(row.ChampionID), Name: row.Name}, nil
}

// GetChampionsByNames looks names up case-insensitively. Missing names are simply absent.
func (r *ChampionRepository) GetChampionsByNames(ctx context.Context, names []string) ([]domain.Champion, error) {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	rows, err := r.q.GetChampionsByNames(ctx, lowered)
	if err != nil {
		return nil, fmt.Errorf("failed to get champions by names: %w", err)
	}
	champions := make([]domain.Champion, len(rows))
	for i, row := range rows {
		champions[i] = domain.Champion{ID: int(row.ChampionID), Name: row.Name}
	}
	return champions, nil
}

// CreateChampion inserts a champion, translating unique violations to domain errors
func (r *ChampionRepository) CreateChampion(ctx context.Context, name string, id *int) (*domain.Champion, error) {
	row, err := r.q.InsertChampion(ctx, generated.InsertChampionParams{
		ChampionID: intPtrToInt4(id),
		Name:       name,
	})
	if err != nil {
		if code, constraint := pgErrorCode(err); code == PgErrorCodeUniqueViolation {
			if constraint == ConstraintChampionsNameLower {
				return nil, domain.ErrChampionExists
			}
			return nil, domain.ErrChampionIDTaken
		}
		return nil, fmt.Errorf("failed to create champion: %w", err)
	}
	return &domain.Champion{ID: int(row.ChampionID), Name: row.Name}, nil
}

// SyncChampions inserts catalogue champions whose name is not stored yet
func (r *ChampionRepository) SyncChampions(ctx context.Context, champions []domain.Champion) (int, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return 0, err
	}
	defer SafeRollback(ctx, h.tx)

	inserted := 0
	for _, c := range champions {
		n, err := h.q.InsertChampionIfNameFree(ctx, generated.InsertChampionIfNameFreeParams{
			ChampionID: int32(c.ID),
			Name:       c.Name,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert champion %s: %w", c.Name, err)
		}
		inserted += int(n)
	}

	if err := h.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListItems returns every item ordered by id
func (r *ChampionRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = domain.Item{ID: int(row.ItemID), Name: row.Name}
	}
	return items, nil
}

// SyncItems prunes unused items missing from the catalogue, then upserts the catalogue
func (r *ChampionRepository) SyncItems(ctx context.Context, items []domain.Item) (inserted, updated, removed int, err error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return 0, 0, 0, err
	}
	defer SafeRollback(ctx, h.tx)

	keep := make([]int32, len(items))
	for i, it := range items {
		keep[i] = int32(it.ID)
	}
	n, err := h.q.DeleteUnusedItemsNotIn(ctx, keep)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to prune items: %w", err)
	}
	removed = int(n)

	for _, it := range items {
		wasInserted, err := h.q.UpsertItem(ctx, generated.UpsertItemParams{
			ItemID: int32(it.ID),
			Name:   it.Name,
		})
		if err != nil {
			return 0, 0, 0, fmt.Errorf("failed to upsert item %d: %w", it.ID, err)
		}
		if wasInserted {
			inserted++
		} else {
			updated++
		}
	}

	if err := h.Commit(ctx); err != nil {
		return 0, 0, 0, err
	}
	return inserted, updated, removed, nil
}
