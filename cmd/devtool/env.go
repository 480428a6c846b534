package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/bootstrap"
	"github.com/osse101/RiftStats_Go/internal/config"
	"github.com/osse101/RiftStats_Go/internal/database"
	"github.com/osse101/RiftStats_Go/internal/server"
)

const (
	devtoolMaxConns = 4
	devtoolIdle     = time.Minute
	devtoolLifetime = 10 * time.Minute
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// databaseURL honours DB_URL, otherwise composes one from the DB_* variables
func databaseURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv(config.EnvDBUser, "postgres"),
		getEnv(config.EnvDBPassword, "postgres"),
		getEnv(config.EnvDBHost, "localhost"),
		getEnv(config.EnvDBPort, "5432"),
		getEnv(config.EnvDBName, config.DefaultDBName))
}

// redactPassword masks the password of a connection URL for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, has := u.User.Password(); !has {
		return connStr
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))
	pool, err := database.NewPoolContext(ctx, dbURL, devtoolMaxConns, devtoolIdle, devtoolLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

// withServices loads the full configuration and runs fn against live services
func withServices(ctx context.Context, fn func(server.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pool, err := database.NewPoolContext(ctx, cfg.GetDBConnString(), devtoolMaxConns, devtoolIdle, devtoolLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	return fn(bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(pool)))
}
