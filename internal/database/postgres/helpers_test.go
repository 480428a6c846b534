package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/RiftStats_Go/internal/database"
)

var (
	testPool    *pgxpool.Pool
	testPoolErr error
	testPoolMux sync.Mutex
	skipReason  string
)

// setupTestDB starts one container per package run and applies migrations to it.
// Each caller gets the shared pool with all tables truncated.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolMux.Lock()
	defer testPoolMux.Unlock()

	if testPool == nil && testPoolErr == nil && skipReason == "" {
		startContainer(t)
	}
	if skipReason != "" {
		t.Skip(skipReason)
	}
	if testPoolErr != nil {
		t.Fatalf("failed to prepare database: %v", testPoolErr)
	}

	ctx := context.Background()
	_, err := testPool.Exec(ctx, `TRUNCATE favorites, participant_items, participants, matches, items, champions, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return testPool
}

func startContainer(t *testing.T) {
	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				skipReason = "Skipping integration test due to panic (likely Docker issue)"
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if skipReason != "" {
		return
	}
	if err != nil {
		skipReason = "Skipping integration test: docker unavailable: " + err.Error()
		return
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		testPoolErr = err
		return
	}

	pool, err := database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		testPoolErr = err
		return
	}
	if err := database.Migrate(ctx, pool); err != nil {
		testPoolErr = err
		return
	}
	t.Log("Test database migrated")
	testPool = pool
}

func seedChampions(t *testing.T, pool *pgxpool.Pool, names ...string) []int {
	t.Helper()
	ids := make([]int, len(names))
	for i, name := range names {
		err := pool.QueryRow(context.Background(),
			`INSERT INTO champions (champion_id, name) VALUES ($1, $2) RETURNING champion_id`, i+1, name).Scan(&ids[i])
		if err != nil {
			t.Fatalf("failed to seed champion %s: %v", name, err)
		}
	}
	return ids
}

func seedItems(t *testing.T, pool *pgxpool.Pool, ids ...int) {
	t.Helper()
	for _, id := range ids {
		_, err := pool.Exec(context.Background(), `INSERT INTO items (item_id, name) VALUES ($1, 'Item ' || $1::text)`, id)
		if err != nil {
			t.Fatalf("failed to seed item %d: %v", id, err)
		}
	}
}
