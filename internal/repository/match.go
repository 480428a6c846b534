package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// Match defines persistence for stored matches
type Match interface {
	MatchExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	GetMatch(ctx context.Context, matchID int64) (*domain.Match, error)
	DeleteMatch(ctx context.Context, matchID int64) error
	ListChampionIDs(ctx context.Context) ([]int, error)
	ListItemIDs(ctx context.Context) ([]int, error)

	BeginIngestTx(ctx context.Context) (IngestTx, error)
}

// IngestTx writes one match and everything it owns atomically
type IngestTx interface {
	Tx
	// InsertMatch returns false when the external id is already stored
	InsertMatch(ctx context.Context, payload domain.MatchPayload) (int64, bool, error)
	// ResolveChampion finds a champion by id, then by name, inserting it when neither matches
	ResolveChampion(ctx context.Context, id int, name string) (int, error)
	ItemExists(ctx context.Context, itemID int) (bool, error)
	EnsureItem(ctx context.Context, itemID int) error
	InsertParticipant(ctx context.Context, matchID int64, championID int, isRed bool) (int64, error)
	AddParticipantItem(ctx context.Context, participantID int64, itemID int) error
}
