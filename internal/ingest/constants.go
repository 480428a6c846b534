package ingest

import "time"

// Batch limits
const (
	DefaultImportCount   = 20
	MaxImportCount       = 100
	DefaultGenerateCount = 50
	MaxGenerateCount     = 1000
)

// Generator requirements and ranges
const (
	MinChampionsForGeneration = 10
	MinItemsForGeneration     = 1
	GeneratedItemsMin         = 4
	GeneratedItemsMax         = 6
	GeneratedMinutesMin       = 20
	GeneratedMinutesMax       = 44
	GeneratedExternalIDPrefix = "RANDOM_"
)

var (
	// GeneratedPeriodStart and GeneratedPeriodEnd bound synthetic played_at values
	GeneratedPeriodStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	GeneratedPeriodEnd   = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
)

// fallbackChampionName is used when an upstream participant has no name
const fallbackChampionName = "Champion %d"

// Log messages
const (
	LogMsgMatchIngested      = "Match ingested"
	LogMsgMatchSkipped       = "Match skipped, already stored"
	LogMsgImportStarted      = "Starting match import"
	LogMsgImportFinished     = "Match import finished"
	LogMsgImportFetchFailed  = "Failed to fetch match detail"
	LogMsgImportIngestFailed = "Failed to ingest match"
	LogMsgGenerateFailed     = "Failed to generate match"
	LogMsgGenerateFinished   = "Synthetic match generation finished"
)
