package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	// DefaultWaitInterval is the retry period used by WaitForPool
	DefaultWaitInterval = time.Second
	// MigrationDialect is the goose dialect for the embedded migrations
	MigrationDialect = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgDatabaseWaitTimeout     = "timed out waiting for database"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgDatabaseNotReady                = "Database not ready, retrying"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
