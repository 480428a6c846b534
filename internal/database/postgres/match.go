package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// MatchRepository implements repository.Match for PostgreSQL
type MatchRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(pool *pgxpool.Pool) repository.Match {
	return &MatchRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// MatchExistsByExternalID reports whether a match with this upstream id is stored
func (r *MatchRepository) MatchExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	exists, err := r.q.MatchExistsByExternalID(ctx, strToText(externalID))
	if err != nil {
		return false, fmt.Errorf("failed to check match existence: %w", err)
	}
	return exists, nil
}

// GetMatch loads a match with its participants and their items
func (r *MatchRepository) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	row, err := r.q.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	participants, err := r.q.ListMatchParticipants(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	items, err := r.q.ListMatchParticipantItems(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant items: %w", err)
	}

	itemsByParticipant := make(map[int64][]int, len(participants))
	for _, it := range items {
		itemsByParticipant[it.ParticipantID] = append(itemsByParticipant[it.ParticipantID], int(it.ItemID))
	}

	match := &domain.Match{
		ID:           row.MatchID,
		PlayedAt:     row.PlayedAt.Time,
		Patch:        row.Patch,
		Duration:     row.Duration,
		RedWon:       row.RedWon,
		ExternalID:   textToPtr(row.ExternalID),
		Participants: make([]domain.Participant, len(participants)),
	}
	for i, p := range participants {
		itemIDs := itemsByParticipant[p.ParticipantID]
		if itemIDs == nil {
			itemIDs = []int{}
		}
		match.Participants[i] = domain.Participant{
			ID:           p.ParticipantID,
			MatchID:      matchID,
			ChampionID:   int(p.ChampionID),
			ChampionName: p.ChampionName,
			IsRed:        p.IsRed,
			ItemIDs:      itemIDs,
		}
	}
	return match, nil
}

// DeleteMatch removes a match. Participants and their items cascade.
func (r *MatchRepository) DeleteMatch(ctx context.Context, matchID int64) error {
	n, err := r.q.DeleteMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if n == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// ListChampionIDs returns every stored champion id
func (r *MatchRepository) ListChampionIDs(ctx context.Context) ([]int, error) {
	ids, err := r.q.ListChampionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champion ids: %w", err)
	}
	return toInts(ids), nil
}

// ListItemIDs returns every stored item id
func (r *MatchRepository) ListItemIDs(ctx context.Context) ([]int, error) {
	ids, err := r.q.ListItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list item ids: %w", err)
	}
	return toInts(ids), nil
}

// BeginIngestTx opens a transaction scoped to writing a single match
func (r *MatchRepository) BeginIngestTx(ctx context.Context) (repository.IngestTx, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return nil, err
	}
	return &ingestTx{tx: h.tx, q: h.q}, nil
}

// ingestTx implements repository.IngestTx
type ingestTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *ingestTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *ingestTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *ingestTx) InsertMatch(ctx context.Context, payload domain.MatchPayload) (int64, bool, error) {
	id, err := t.q.InsertMatch(ctx, generated.InsertMatchParams{
		PlayedAt:   timeToTimestamptz(payload.PlayedAt),
		Patch:      payload.Patch,
		Duration:   payload.Duration,
		RedWon:     payload.RedWon,
		ExternalID: strToText(payload.ExternalID),
	})
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to insert match: %w", err)
	}
	return id, true, nil
}

func (t *ingestTx) ResolveChampion(ctx context.Context, id int, name string) (int, error) {
	resolved, err := t.q.ResolveChampion(ctx, generated.ResolveChampionParams{
		ChampionID: int32(id),
		Name:       name,
	})
	if err == nil {
		return int(resolved), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to resolve champion %s: %w", name, err)
	}

	var idParam *int
	if id > 0 {
		idParam = &id
	}
	created, err := t.q.InsertChampion(ctx, generated.InsertChampionParams{
		ChampionID: intPtrToInt4(idParam),
		Name:       name,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert champion %s: %w", name, err)
	}
	return int(created.ChampionID), nil
}

func (t *ingestTx) ItemExists(ctx context.Context, itemID int) (bool, error) {
	exists, err := t.q.ItemExists(ctx, int32(itemID))
	if err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return exists, nil
}

func (t *ingestTx) EnsureItem(ctx context.Context, itemID int) error {
	err := t.q.EnsureItem(ctx, generated.EnsureItemParams{
		ItemID: int32(itemID),
		Name:   "Item " + strconv.Itoa(itemID),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure item %d: %w", itemID, err)
	}
	return nil
}

func (t *ingestTx) InsertParticipant(ctx context.Context, matchID int64, championID int, isRed bool) (int64, error) {
	id, err := t.q.InsertParticipant(ctx, generated.InsertParticipantParams{
		MatchID:    matchID,
		ChampionID: int32(championID),
		IsRed:      isRed,
	})
	if err != nil {
		if code, _ := pgErrorCode(err); code == PgErrorCodeForeignKeyViolation {
			return 0, domain.ErrChampionNotFound
		}
		return 0, fmt.Errorf("failed to insert participant: %w", err)
	}
	return id, nil
}

func (t *ingestTx) AddParticipantItem(ctx context.Context, participantID int64, itemID int) error {
	_, err := t.q.AddParticipantItem(ctx, generated.AddParticipantItemParams{
		ParticipantID: participantID,
		ItemID:        int32(itemID),
	})
	if err != nil {
		return translateParticipantItemErr(err)
	}
	return nil
}

func translateParticipantItemErr(err error) error {
	switch code, constraint := pgErrorCode(err); code {
	case PgErrorCodeCheckViolation:
		return domain.ErrTooManyItems
	case PgErrorCodeForeignKeyViolation:
		if constraint == "participant_items_participant_id_fkey" {
			return domain.ErrParticipantNotFound
		}
		return domain.ErrItemNotFound
	}
	return fmt.Errorf("failed to add participant item: %w", err)
}
