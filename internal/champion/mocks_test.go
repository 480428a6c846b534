package champion

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

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

// MockCatalogSource implements CatalogSource for testing
type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) LatestVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogSource) Champions(ctx context.Context, version string) ([]domain.Champion, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Champion), args.Error(1)
}

func (m *MockCatalogSource) Items(ctx context.Context, version string) ([]domain.Item, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
