package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/champion"
	"github.com/osse101/RiftStats_Go/internal/concurrency"
	"github.com/osse101/RiftStats_Go/internal/config"
	"github.com/osse101/RiftStats_Go/internal/database"
	"github.com/osse101/RiftStats_Go/internal/ddragon"
	"github.com/osse101/RiftStats_Go/internal/ingest"
	"github.com/osse101/RiftStats_Go/internal/report"
	"github.com/osse101/RiftStats_Go/internal/riot"
	"github.com/osse101/RiftStats_Go/internal/scheduler"
	"github.com/osse101/RiftStats_Go/internal/server"
	"github.com/osse101/RiftStats_Go/internal/user"
	"github.com/osse101/RiftStats_Go/internal/worker"
)

// RunMigrations applies pending goose migrations unless AUTO_MIGRATE is off
func RunMigrations(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) error {
	if !cfg.AutoMigrate {
		slog.Info(LogMsgMigrationsSkipped)
		return nil
	}
	slog.Info(LogMsgRunningMigrations)
	if err := database.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	return nil
}

// InitializeServices wires the domain services over the repositories
func InitializeServices(cfg *config.Config, repos *Repositories) server.Services {
	authService := auth.NewService(repos.User, auth.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTTTL,
		Issuer: cfg.JWTIssuer,
	})

	championService := champion.NewService(repos.Champion, ddragon.NewClient(cfg.DDragonBaseURL))

	riotClient := riot.NewClient(riot.Config{
		APIKey:          cfg.RiotAPIKey,
		BaseURLTemplate: cfg.RiotBaseURL,
		RequestDelay:    cfg.RiotRequestDelay,
		Timeout:         cfg.RiotTimeout,
	})
	if !riotClient.Configured() {
		slog.Warn(LogMsgRiotDisabled)
	}

	return server.Services{
		Auth:      authService,
		Users:     user.NewService(repos.User, repos.Favorite),
		Champions: championService,
		Reports:   report.NewService(repos.Report, repos.Champion),
		Ingest:    ingest.NewService(repos.Match, riotClient, championService, concurrency.NewLockManager()),
		Repair:    ingest.NewRepairService(repos.Repair, authService),
	}
}

// StartBackgroundJobs starts the worker pool and, when configured, the periodic catalogue sync.
// The returned scheduler and pool are stopped by GracefulShutdown.
func StartBackgroundJobs(cfg *config.Config, syncer worker.CatalogSyncer) (*scheduler.Scheduler, *worker.Pool) {
	pool := worker.NewPool(WorkerCount, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.CatalogSyncInterval <= 0 {
		slog.Info(LogMsgCatalogSyncDisabled)
		return sched, pool
	}

	sched.ScheduleImmediate(cfg.CatalogSyncInterval, worker.NewCatalogSyncJob(syncer))
	slog.Info(LogMsgCatalogSyncEnabled, "interval", cfg.CatalogSyncInterval)
	return sched, pool
}
