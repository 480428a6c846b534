package champion

import "time"

// Name cache sizing
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)

// Catalogue labels for sync metrics and logs
const (
	CatalogChampions = "champions"
	CatalogItems     = "items"
)

// Log messages
const (
	LogMsgChampionCreated = "Champion created"
	LogMsgSyncFinished    = "Catalogue sync finished"
	LogMsgSyncFailed      = "Catalogue sync failed"
)
