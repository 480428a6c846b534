package ingest

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/riot"
)

// Service defines match ingestion operations
type Service interface {
	IngestTrusted(ctx context.Context, payload domain.MatchPayload) (domain.IngestResult, error)
	IngestManual(ctx context.Context, req domain.ManualMatch) (domain.IngestResult, error)
	ImportPlayerMatches(ctx context.Context, riotID, region string, count int) (domain.ImportStats, error)
	GenerateMatches(ctx context.Context, count int) (domain.GenerateResult, error)
	GetMatch(ctx context.Context, matchID int64) (*domain.Match, error)
	DeleteMatch(ctx context.Context, matchID int64) error
}

// MatchSource is the upstream match provider, satisfied by *riot.Client
type MatchSource interface {
	Configured() bool
	GetAccountByRiotID(ctx context.Context, zone, name, tag string) (*riot.Account, error)
	GetMatchIDs(ctx context.Context, zone, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, zone, matchID string) (*riot.Match, error)
}

// ChampionResolver maps typed champion names to stored champions.
// Keys of the result are lower-cased names.
type ChampionResolver interface {
	ResolveNames(ctx context.Context, names []string) (map[string]domain.Champion, error)
}

// PasswordHasher hashes plaintext passwords for raw user writes
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}
