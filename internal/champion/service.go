package champion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/metrics"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// Service defines champion and item catalogue operations
type Service interface {
	List(ctx context.Context) ([]domain.Champion, error)
	Get(ctx context.Context, id int) (*domain.Champion, error)
	Create(ctx context.Context, name string, id *int) (*domain.Champion, error)
	// ResolveNames keys the result by lower-cased name; unknown names are absent
	ResolveNames(ctx context.Context, names []string) (map[string]domain.Champion, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	SyncChampions(ctx context.Context) (domain.ChampionSyncResult, error)
	SyncItems(ctx context.Context) (domain.ItemSyncResult, error)
}

// CatalogSource is the upstream reference catalogue, satisfied by *ddragon.Client
type CatalogSource interface {
	LatestVersion(ctx context.Context) (string, error)
	Champions(ctx context.Context, version string) ([]domain.Champion, error)
	Items(ctx context.Context, version string) ([]domain.Item, error)
}

type service struct {
	repo   repository.Champion
	source CatalogSource
	cache  *nameCache
}

// NewService creates a new champion service
func NewService(repo repository.Champion, source CatalogSource) Service {
	return &service{
		repo:   repo,
		source: source,
		cache:  newNameCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) List(ctx context.Context) ([]domain.Champion, error) {
	return s.repo.ListChampions(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*domain.Champion, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: champion id must be positive", domain.ErrInvalidInput)
	}
	return s.repo.GetChampionByID(ctx, id)
}

// displayName title-cases names typed entirely in lower case and keeps any other casing
func displayName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name != strings.ToLower(name) {
		return name
	}
	return cases.Title(language.English).String(name)
}

// Create adds a champion. A nil id lets the database assign one from the local range.
func (s *service) Create(ctx context.Context, name string, id *int) (*domain.Champion, error) {
	name = displayName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: champion name is required", domain.ErrInvalidInput)
	}
	if id != nil && *id <= 0 {
		return nil, fmt.Errorf("%w: champion id must be positive", domain.ErrInvalidInput)
	}

	champ, err := s.repo.CreateChampion(ctx, name, id)
	if err != nil {
		return nil, err
	}
	s.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgChampionCreated, "champion_id", champ.ID, "name", champ.Name)
	return champ, nil
}

func (s *service) ResolveNames(ctx context.Context, names []string) (map[string]domain.Champion, error) {
	resolved := make(map[string]domain.Champion, len(names))
	var misses []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if champ, ok := s.cache.Get(n); ok {
			resolved[strings.ToLower(n)] = champ
			continue
		}
		misses = append(misses, n)
	}
	if len(misses) == 0 {
		return resolved, nil
	}

	found, err := s.repo.GetChampionsByNames(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("failed to look up champions: %w", err)
	}
	for _, champ := range found {
		s.cache.Add(champ)
	}
	for _, n := range misses {
		if champ, ok := s.cache.Get(n); ok {
			resolved[strings.ToLower(n)] = champ
		}
	}
	return resolved, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) latestVersion(ctx context.Context) (string, error) {
	if s.source == nil {
		return "", domain.ErrReferenceSourceUnavailable
	}
	return s.source.LatestVersion(ctx)
}

func (s *service) recordSync(ctx context.Context, catalog string, start time.Time, err error, attrs ...any) {
	log := logger.FromContext(ctx)
	if err != nil {
		metrics.CatalogSyncTotal.WithLabelValues(catalog, metrics.ResultError).Inc()
		log.Error(LogMsgSyncFailed, "catalog", catalog, "error", err)
		return
	}
	metrics.CatalogSyncTotal.WithLabelValues(catalog, metrics.ResultSuccess).Inc()
	log.Info(LogMsgSyncFinished, append([]any{"catalog", catalog, "duration", time.Since(start)}, attrs...)...)
}

// SyncChampions inserts catalogue champions whose names are not stored yet
func (s *service) SyncChampions(ctx context.Context) (result domain.ChampionSyncResult, err error) {
	start := time.Now()
	defer func() {
		s.recordSync(ctx, CatalogChampions, start, err,
			"version", result.Version, "inserted", result.Inserted, "total", result.Total)
	}()

	version, err := s.latestVersion(ctx)
	if err != nil {
		return result, err
	}
	result.Version = version

	champions, err := s.source.Champions(ctx, version)
	if err != nil {
		return result, err
	}
	result.Total = len(champions)

	inserted, err := s.repo.SyncChampions(ctx, champions)
	if err != nil {
		return result, err
	}
	result.Inserted = inserted
	result.Skipped = result.Total - inserted
	s.cache.Clear()
	return result, nil
}

// SyncItems prunes unused items missing from the catalogue, then upserts the catalogue
func (s *service) SyncItems(ctx context.Context) (result domain.ItemSyncResult, err error) {
	start := time.Now()
	defer func() {
		s.recordSync(ctx, CatalogItems, start, err,
			"version", result.Version, "inserted", result.Inserted, "updated", result.Updated,
			"removed", result.Removed, "total", result.Total)
	}()

	version, err := s.latestVersion(ctx)
	if err != nil {
		return result, err
	}
	result.Version = version

	items, err := s.source.Items(ctx, version)
	if err != nil {
		return result, err
	}
	result.Total = len(items)

	result.Inserted, result.Updated, result.Removed, err = s.repo.SyncItems(ctx, items)
	if err != nil {
		return result, err
	}
	return result, nil
}
