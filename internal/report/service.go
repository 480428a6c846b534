package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// Service defines the read-only statistics operations
type Service interface {
	ChampionWinrate(ctx context.Context, championID int, patch string) (*domain.ChampionWinrate, error)
	WinrateHistory(ctx context.Context, championID int) ([]domain.PatchWinrate, error)
	TopItems(ctx context.Context, championID int, patch string, limit int) ([]domain.ItemPerformance, error)
	ListPatches(ctx context.Context) ([]string, error)

	AllChampionWinrates(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error)
	AllTopItems(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error)
	PatchStats(ctx context.Context) ([]domain.PatchStats, error)

	ExportWorkbook(ctx context.Context, filter domain.ReportFilter, w io.Writer) error
	WinrateHistoryChart(ctx context.Context, championID int, w io.Writer) error
}

type service struct {
	repo      repository.Report
	champions repository.Champion
}

// NewService creates a new report service
func NewService(repo repository.Report, champions repository.Champion) Service {
	return &service{repo: repo, champions: champions}
}

func stats(games, wins int64) domain.WinrateStats {
	return domain.WinrateStats{TotalGames: games, Wins: wins, Winrate: utils.WinRate(wins, games)}
}

func (s *service) champion(ctx context.Context, championID int) (*domain.Champion, error) {
	if championID <= 0 {
		return nil, fmt.Errorf("%w: champion id must be positive", domain.ErrInvalidInput)
	}
	return s.champions.GetChampionByID(ctx, championID)
}

// ChampionWinrate returns a champion's overall and per side win rate
func (s *service) ChampionWinrate(ctx context.Context, championID int, patch string) (*domain.ChampionWinrate, error) {
	champ, err := s.champion(ctx, championID)
	if err != nil {
		return nil, err
	}
	patch = strings.TrimSpace(patch)
	counts, err := s.repo.ChampionSideCounts(ctx, championID, patch)
	if err != nil {
		return nil, err
	}
	return &domain.ChampionWinrate{
		Champion: *champ,
		Patch:    patch,
		Overall:  stats(counts.TotalGames, counts.Wins),
		RedSide:  stats(counts.RedGames, counts.RedWins),
		BlueSide: stats(counts.BlueGames, counts.BlueWins),
	}, nil
}

// WinrateHistory returns one point per patch, oldest first
func (s *service) WinrateHistory(ctx context.Context, championID int) ([]domain.PatchWinrate, error) {
	if _, err := s.champion(ctx, championID); err != nil {
		return nil, err
	}
	history, err := s.repo.ChampionWinrateByPatch(ctx, championID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		history[i].WinrateStats = stats(history[i].TotalGames, history[i].Wins)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return utils.ComparePatches(history[i].Patch, history[j].Patch) < 0
	})
	return history, nil
}

// rankItems orders by win rate desc, games desc, item id asc
func rankItems(items []domain.ItemPerformance) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Winrate != b.Winrate {
			return a.Winrate > b.Winrate
		}
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		return a.ItemID < b.ItemID
	})
}

// TopItems ranks the items seen at least twice on a champion
func (s *service) TopItems(ctx context.Context, championID int, patch string, limit int) ([]domain.ItemPerformance, error) {
	if _, err := s.champion(ctx, championID); err != nil {
		return nil, err
	}
	items, err := s.repo.ChampionItemCounts(ctx, championID, strings.TrimSpace(patch))
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Winrate = utils.WinRate(items[i].Wins, items[i].Games)
	}
	rankItems(items)

	limit = utils.Clamp(limit, DefaultTopItemsLimit, 1, MaxTopItemsLimit)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ListPatches returns stored patches, newest first
func (s *service) ListPatches(ctx context.Context) ([]string, error) {
	patches, err := s.repo.ListPatches(ctx)
	if err != nil {
		return nil, err
	}
	utils.SortPatches(patches)
	for i, j := 0, len(patches)-1; i < j; i, j = i+1, j-1 {
		patches[i], patches[j] = patches[j], patches[i]
	}
	return patches, nil
}

func validFilter(filter domain.ReportFilter) (domain.ReportFilter, error) {
	if !filter.Side.Valid() {
		return filter, fmt.Errorf("%w: side must be red, blue or empty", domain.ErrInvalidInput)
	}
	filter.Patch = strings.TrimSpace(filter.Patch)
	return filter, nil
}

// AllChampionWinrates covers every champion, including those without games
func (s *service) AllChampionWinrates(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error) {
	filter, err := validFilter(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.AllChampionCounts(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].WinrateStats = stats(rows[i].TotalGames, rows[i].Wins)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Winrate != rows[j].Winrate {
			return rows[i].Winrate > rows[j].Winrate
		}
		if rows[i].TotalGames != rows[j].TotalGames {
			return rows[i].TotalGames > rows[j].TotalGames
		}
		return rows[i].ChampionName < rows[j].ChampionName
	})
	return rows, nil
}

// AllTopItems groups by champion name, each group ranked like TopItems
func (s *service) AllTopItems(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error) {
	filter, err := validFilter(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.AllChampionItemCounts(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Winrate = utils.WinRate(rows[i].Wins, rows[i].Games)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ChampionName != b.ChampionName {
			return a.ChampionName < b.ChampionName
		}
		if a.Winrate != b.Winrate {
			return a.Winrate > b.Winrate
		}
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		return a.ItemID < b.ItemID
	})
	return rows, nil
}

// PatchStats returns the per patch aggregates, newest first
func (s *service) PatchStats(ctx context.Context) ([]domain.PatchStats, error) {
	rows, err := s.repo.PatchStats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].RedWinrate = utils.WinRate(rows[i].RedWins, rows[i].Matches)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return utils.ComparePatches(rows[i].Patch, rows[j].Patch) > 0
	})
	return rows, nil
}
