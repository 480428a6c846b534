package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept besides the new session
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting RiftStats"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Startup
// =============================================================================

const (
	LogMsgRunningMigrations   = "Applying database migrations"
	LogMsgMigrationsSkipped   = "AUTO_MIGRATE disabled, skipping migrations"
	LogMsgRiotDisabled        = "RIOT_API_KEY not set, match import disabled"
	LogMsgCatalogSyncDisabled = "CATALOG_SYNC_INTERVAL not set, periodic catalogue sync disabled"
	LogMsgCatalogSyncEnabled  = "Periodic catalogue sync enabled"

	ErrMsgFailedMigrate = "failed to apply migrations"
)

// Background work
const (
	// WorkerCount is small since the only scheduled job is the catalogue sync
	WorkerCount     = 2
	WorkerQueueSize = 8
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds how long in-flight requests may take to finish
	ShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingWorkers      = "Stopping background workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
