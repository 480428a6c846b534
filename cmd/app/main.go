package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RiftStats_Go/internal/bootstrap"
	"github.com/osse101/RiftStats_Go/internal/config"
	"github.com/osse101/RiftStats_Go/internal/database"
	"github.com/osse101/RiftStats_Go/internal/handler"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger(logger.DefaultConfig())
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initStdoutLogger(cfg)
		slog.Warn("File logging unavailable, using stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler.InitValidator()

	dbPool, err := database.WaitForPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if err := bootstrap.RunMigrations(ctx, cfg, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos)
	sched, workers := bootstrap.StartBackgroundJobs(cfg, services.Champions)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, services)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: workers,
		DBPool:     dbPool,
	})
	return err
}
