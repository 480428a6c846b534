package repository

import (
	"context"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// Report defines the read-only aggregate queries. Percentages are left to the caller.
type Report interface {
	ChampionSideCounts(ctx context.Context, championID int, patch string) (domain.SideCounts, error)
	ChampionWinrateByPatch(ctx context.Context, championID int) ([]domain.PatchWinrate, error)
	ChampionItemCounts(ctx context.Context, championID int, patch string) ([]domain.ItemPerformance, error)
	ListPatches(ctx context.Context) ([]string, error)
	AllChampionCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error)
	AllChampionItemCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error)
	PatchStats(ctx context.Context) ([]domain.PatchStats, error)
}
