package report

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// MockReportRepository implements repository.Report for testing
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ChampionSideCounts(ctx context.Context, championID int, patch string) (domain.SideCounts, error) {
	args := m.Called(ctx, championID, patch)
	return args.Get(0).(domain.SideCounts), args.Error(1)
}

func (m *MockReportRepository) ChampionWinrateByPatch(ctx context.Context, championID int) ([]domain.PatchWinrate, error) {
	args := m.Called(ctx, championID)
	return args.Get(0).([]domain.PatchWinrate), args.Error(1)
}

func (m *MockReportRepository) ChampionItemCounts(ctx context.Context, championID int, patch string) ([]domain.ItemPerformance, error) {
	args := m.Called(ctx, championID, patch)
	return args.Get(0).([]domain.ItemPerformance), args.Error(1)
}

func (m *MockReportRepository) ListPatches(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReportRepository) AllChampionCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ChampionWinrateRow), args.Error(1)
}

func (m *MockReportRepository) AllChampionItemCounts(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ChampionItemRow), args.Error(1)
}

func (m *MockReportRepository) PatchStats(ctx context.Context) ([]domain.PatchStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PatchStats), args.Error(1)
}

// MockChampionRepository implements repository.Champion for testing
type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) ListChampions(ctx context.Context) ([]domain.Champion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetChampionByID(ctx context.Context, id int) (*domain.Champion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetChampionsByNames(ctx context.Context, names []string) ([]domain.Champion, error) {
	args := m.Called(ctx, names)
	return args.Get(0).([]domain.Champion), args.Error(1)
}

func (m *MockChampionRepository) CreateChampion(ctx context.Context, name string, id *int) (*domain.Champion, error) {
	args := m.Called(ctx, name, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockChampionRepository) SyncChampions(ctx context.Context, champions []domain.Champion) (int, error) {
	args := m.Called(ctx, champions)
	return args.Int(0), args.Error(1)
}

func (m *MockChampionRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockChampionRepository) SyncItems(ctx context.Context, items []domain.Item) (int, int, int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}
