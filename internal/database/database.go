package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool and verifies it with a ping
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	return NewPoolContext(context.Background(), connString, maxConns, maxIdle, maxLife)
}

// NewPoolContext is NewPool bounded by ctx for the initial connect and ping
func NewPoolContext(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	switch {
	case maxConns > math.MaxInt32:
		maxConns = math.MaxInt32
	case maxConns < DefaultMinConnections:
		maxConns = DefaultMinConnections
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", config.MaxConns,
		"database", config.ConnConfig.Database)
	return pool, nil
}

// WaitForPool retries NewPoolContext until it succeeds or ctx expires
func WaitForPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	ticker := time.NewTicker(DefaultWaitInterval)
	defer ticker.Stop()

	for {
		pool, err := NewPoolContext(ctx, connString, maxConns, maxIdle, maxLife)
		if err == nil {
			return pool, nil
		}
		slog.Default().Warn(LogMsgDatabaseNotReady, "error", err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", ErrMsgDatabaseWaitTimeout, err)
		case <-ticker.C:
		}
	}
}
