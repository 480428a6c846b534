package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// Repair defines direct table writes used for data repair
type Repair interface {
	UpsertItem(ctx context.Context, item domain.Item) (domain.RawResult, error)
	UpsertUser(ctx context.Context, user domain.User) (domain.RawResult, error)
	UpsertMatch(ctx context.Context, match domain.RawMatch) (domain.RawResult, error)
	UpsertParticipant(ctx context.Context, participant domain.RawParticipant) (domain.RawResult, error)
	AddParticipantItem(ctx context.Context, participantID int64, itemID int) (domain.RawResult, error)
	AddFavorite(ctx context.Context, username string, championID int) (domain.RawResult, error)
}
