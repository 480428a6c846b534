package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

// CatalogSyncer refreshes reference data, satisfied by champion.Service
type CatalogSyncer interface {
	SyncChampions(ctx context.Context) (domain.ChampionSyncResult, error)
	SyncItems(ctx context.Context) (domain.ItemSyncResult, error)
}

// CatalogSyncJob syncs champions then items. An item sync still runs when the champion sync fails.
type CatalogSyncJob struct {
	syncer CatalogSyncer
}

// NewCatalogSyncJob creates a job for the scheduler
func NewCatalogSyncJob(syncer CatalogSyncer) *CatalogSyncJob {
	return &CatalogSyncJob{syncer: syncer}
}

func (j *CatalogSyncJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Info(LogMsgCatalogSyncStarting)

	champs, champErr := j.syncer.SyncChampions(ctx)
	items, itemErr := j.syncer.SyncItems(ctx)
	if err := errors.Join(champErr, itemErr); err != nil {
		return err
	}

	log.Info(LogMsgCatalogSyncCompleted,
		"version", champs.Version,
		"champions_inserted", champs.Inserted,
		"items_inserted", items.Inserted,
		"items_updated", items.Updated,
		"items_removed", items.Removed,
		"duration", time.Since(start))
	return nil
}
