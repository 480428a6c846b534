package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Upstream metric names
const (
	MetricNameRiotRequestsTotal   = "riot_requests_total"
	MetricNameRiotRequestDuration = "riot_request_duration_seconds"
	MetricNameCatalogSyncTotal    = "catalog_sync_total"
)

// Ingestion metric names
const (
	MetricNameMatchesIngested = "matches_ingested_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRiotRequestsTotal    = "Total number of requests sent to the Riot API"
	HelpTextRiotRequestDuration  = "Riot API request latency in seconds"
	HelpTextCatalogSyncTotal     = "Total number of reference catalogue syncs"
	HelpTextMatchesIngested      = "Total number of match ingestion attempts by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelSource   = "source"
	LabelResult   = "result"
	LabelCatalog  = "catalog"
)

// Ingestion results
const (
	ResultImported = "imported"
	ResultSkipped  = "skipped"
	ResultError    = "error"
	ResultSuccess  = "success"
)

// UnmatchedRoute labels requests that no route handled
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets covers fast API reads through slow exports
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	// UpstreamLatencyBuckets covers Riot API round trips
	UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10}
)
