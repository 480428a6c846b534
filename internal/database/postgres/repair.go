package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// RepairRepository implements repository.Repair with explicit-id writes
type RepairRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRepairRepository creates a new RepairRepository
func NewRepairRepository(pool *pgxpool.Pool) repository.Repair {
	return &RepairRepository{pool: pool, q: generated.New(pool)}
}

func insertedAction(inserted bool) string {
	if inserted {
		return domain.RawInserted
	}
	return domain.RawUpdated
}

// UpsertItem creates or renames an item
func (r *RepairRepository) UpsertItem(ctx context.Context, item domain.Item) (domain.RawResult, error) {
	inserted, err := r.q.UpsertItem(ctx, generated.UpsertItemParams{
		ItemID: int32(item.ID),
		Name:   item.Name,
	})
	if err != nil {
		return domain.RawResult{}, fmt.Errorf("failed to upsert item: %w", err)
	}
	return domain.RawResult{Table: TableItems, Action: insertedAction(inserted), ID: int64(item.ID)}, nil
}

// UpsertUser writes a user row. The caller supplies an already hashed password.
func (r *RepairRepository) UpsertUser(ctx context.Context, user domain.User) (domain.RawResult, error) {
	inserted, err := r.q.UpsertUser(ctx, generated.UpsertUserParams{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
	})
	if err != nil {
		return domain.RawResult{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return domain.RawResult{Table: TableUsers, Action: insertedAction(inserted)}, nil
}

// UpsertMatch writes a match by id and moves the identity sequence past it
func (r *RepairRepository) UpsertMatch(ctx context.Context, match domain.RawMatch) (domain.RawResult, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return domain.RawResult{}, err
	}
	defer SafeRollback(ctx, h.tx)

	inserted, err := h.q.UpsertMatchByID(ctx, generated.UpsertMatchByIDParams{
		MatchID:    match.ID,
		PlayedAt:   timeToTimestamptz(match.PlayedAt),
		Patch:      match.Patch,
		Duration:   match.Duration,
		RedWon:     match.RedWon,
		ExternalID: strToText(match.ExternalID),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.RawResult{}, domain.ErrDuplicateMatch
		}
		return domain.RawResult{}, fmt.Errorf("failed to upsert match: %w", err)
	}
	if err := h.q.SyncMatchIDSequence(ctx); err != nil {
		return domain.RawResult{}, fmt.Errorf("failed to sync match sequence: %w", err)
	}
	if err := h.Commit(ctx); err != nil {
		return domain.RawResult{}, err
	}
	return domain.RawResult{Table: TableMatches, Action: insertedAction(inserted), ID: match.ID}, nil
}

// UpsertParticipant writes a participant. Without an id a new row is allocated.
func (r *RepairRepository) UpsertParticipant(ctx context.Context, p domain.RawParticipant) (domain.RawResult, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return domain.RawResult{}, err
	}
	defer SafeRollback(ctx, h.tx)

	exists, err := h.q.MatchExists(ctx, p.MatchID)
	if err != nil {
		return domain.RawResult{}, fmt.Errorf("failed to check match: %w", err)
	}
	if !exists {
		return domain.RawResult{}, domain.ErrMatchNotFound
	}

	var result domain.RawResult
	if p.ID == nil {
		id, err := h.q.InsertParticipant(ctx, generated.InsertParticipantParams{
			MatchID:    p.MatchID,
			ChampionID: int32(p.ChampionID),
			IsRed:      p.IsRed,
		})
		if err != nil {
			return domain.RawResult{}, translateParticipantErr(err)
		}
		result = domain.RawResult{Table: TableParticipants, Action: domain.RawInserted, ID: id}
	} else {
		inserted, err := h.q.UpsertParticipantByID(ctx, generated.UpsertParticipantByIDParams{
			ParticipantID: *p.ID,
			MatchID:       p.MatchID,
			ChampionID:    int32(p.ChampionID),
			IsRed:         p.IsRed,
		})
		if err != nil {
			return domain.RawResult{}, translateParticipantErr(err)
		}
		if err := h.q.SyncParticipantIDSequence(ctx); err != nil {
			return domain.RawResult{}, fmt.Errorf("failed to sync participant sequence: %w", err)
		}
		result = domain.RawResult{Table: TableParticipants, Action: insertedAction(inserted), ID: *p.ID}
	}

	if err := h.Commit(ctx); err != nil {
		return domain.RawResult{}, err
	}
	return result, nil
}

// AddParticipantItem links an item to a participant, enforcing the item limit
func (r *RepairRepository) AddParticipantItem(ctx context.Context, participantID int64, itemID int) (domain.RawResult, error) {
	n, err := r.q.AddParticipantItem(ctx, generated.AddParticipantItemParams{
		ParticipantID: participantID,
		ItemID:        int32(itemID),
	})
	if err != nil {
		return domain.RawResult{}, translateParticipantItemErr(err)
	}
	action := domain.RawInserted
	if n == 0 {
		action = domain.RawUnchanged
	}
	return domain.RawResult{Table: TableParticipantItems, Action: action, ID: participantID}, nil
}

// AddFavorite links a user to a champion
func (r *RepairRepository) AddFavorite(ctx context.Context, username string, championID int) (domain.RawResult, error) {
	n, err := r.q.AddFavorite(ctx, generated.AddFavoriteParams{
		Username:   username,
		ChampionID: int32(championID),
	})
	if err != nil {
		return domain.RawResult{}, translateFavoriteFK(err)
	}
	action := domain.RawInserted
	if n == 0 {
		action = domain.RawUnchanged
	}
	return domain.RawResult{Table: TableFavorites, Action: action, ID: int64(championID)}, nil
}

func translateParticipantErr(err error) error {
	code, constraint := pgErrorCode(err)
	if code == PgErrorCodeForeignKeyViolation {
		if constraint == "participants_match_id_fkey" {
			return domain.ErrMatchNotFound
		}
		return domain.ErrChampionNotFound
	}
	return fmt.Errorf("failed to write participant: %w", err)
}
