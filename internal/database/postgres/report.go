package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/generated"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// ReportRepository implements repository.Report. Rows carry counts only.
type ReportRepository struct {
	q *generated.Queries
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(pool *pgxpool.Pool) repository.Report {
	return &ReportRepository{q: generated.New(pool)}
}

// ChampionSideCounts returns games and wins overall and per side
func (r *ReportRepository) ChampionSideCounts(ctx context.Context, championID int, patch string) (domain.SideCounts, error) {
	row, err := r.q.ChampionSideCounts(ctx, generated.ChampionSideCountsParams{
		ChampionID: int32(championID),
		Patch:      strToText(patch),
	})
	if err != nil {
		return domain.SideCounts{}, fmt.Errorf("failed to count champion games: %w", err)
	}
	return domain.SideCounts{
		TotalGames: row.TotalGames,
		Wins:       row.Wins,
		RedGames:   row.RedGames,
		RedWins:    row.RedWins,
		BlueGames:  row.BlueGames,
		BlueWins:   row.BlueWins,
	}, nil
}

// ChampionWinrateByPatch returns per patch counts in storage order
func (r *ReportRepository) ChampionWinrateByPatch(ctx context.Context, championID int) ([]domain.PatchWinrate, error) {
	rows, err := r.q.ChampionWinrateByPatch(ctx, int32(championID))
	if err != nil {
		return nil, fmt.Errorf("failed to get winrate history: %w", err)
	}
	history := make([]domain.PatchWinrate, len(rows))
	for i, row := range rows {
		history[i] = domain.PatchWinrate{
			Patch:        row.Patch,
			WinrateStats: domain.WinrateStats{TotalGames: row.TotalGames, Wins: row.Wins},
		}
	}
	return history, nil
}

// ChampionItemCounts returns items seen at least twice on the champion
func (r *ReportRepository) ChampionItemCounts(ctx context.Context, championID int, patch string) ([]domain.ItemPerformance, error) {
	rows, err := r.q.ChampionItemCounts(ctx, generated.ChampionItemCountsParams{
		ChampionID: int32(championID),
		Patch:      strToText(patch),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item counts: %w", err)
	}
	items := make([]domain.ItemPerformance, len(rows))
	for i, row := range rows {
		items[i] = domain.ItemPerformance{
			ItemID:   int(row.ItemID),
			ItemName: row.ItemName,
			Games:    row.Games,
			Wins:     row.Wins,
		}
	}
	return items, nil
}

// ListPatches returns the distinct stored patches, unordered
func (r *ReportRepository) ListPatches(ctx context.Context) ([]string, error) {
	patches, err := r.q.ListPatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patches: %w", err)
	}
	return patches, nil
}

// AllChampionCounts returns counts for every champion, including those with no games
func (r *ReportRepository) AllChampionCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error) {
	rows, err := r.q.AllChampionCounts(ctx, generated.AllChampionCountsParams{
		Patch: strToText(filter.Patch),
		IsRed: boolPtrToBool(filter.Side.IsRed()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get champion counts: %w", err)
	}
	out := make([]domain.ChampionWinrateRow, len(rows))
	for i, row := range rows {
		out[i] = domain.ChampionWinrateRow{
			ChampionID:   int(row.ChampionID),
			ChampionName: row.ChampionName,
			WinrateStats: domain.WinrateStats{TotalGames: row.TotalGames, Wins: row.Wins},
		}
	}
	return out, nil
}

// AllChampionItemCounts returns champion and item pairs seen at least twice
func (r *ReportRepository) AllChampionItemCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error) {
	rows, err := r.q.AllChampionItemCounts(ctx, generated.AllChampionItemCountsParams{
		Patch: strToText(filter.Patch),
		IsRed: boolPtrToBool(filter.Side.IsRed()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get champion item counts: %w", err)
	}
	out := make([]domain.ChampionItemRow, len(rows))
	for i, row := range rows {
		out[i] = domain.ChampionItemRow{
			ChampionID:   int(row.ChampionID),
			ChampionName: row.ChampionName,
			ItemPerformance: domain.ItemPerformance{
				ItemID:   int(row.ItemID),
				ItemName: row.ItemName,
				Games:    row.Games,
				Wins:     row.Wins,
			},
		}
	}
	return out, nil
}

// PatchStats reads the per patch aggregate view
func (r *ReportRepository) PatchStats(ctx context.Context) ([]domain.PatchStats, error) {
	rows, err := r.q.ListPatchStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get patch stats: %w", err)
	}
	out := make([]domain.PatchStats, len(rows))
	for i, row := range rows {
		out[i] = domain.PatchStats{
			Patch:              row.Patch,
			Matches:            row.Matches,
			RedWins:            row.RedWins,
			BlueWins:           row.BlueWins,
			AvgDurationSeconds: row.AvgDurationSeconds,
		}
	}
	return out, nil
}
