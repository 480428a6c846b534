package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upstream Metrics
var (
	RiotRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRiotRequestsTotal,
			Help: HelpTextRiotRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	RiotRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRiotRequestDuration,
			Help:    HelpTextRiotRequestDuration,
			Buckets: UpstreamLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	CatalogSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncTotal,
			Help: HelpTextCatalogSyncTotal,
		},
		[]string{LabelCatalog, LabelResult},
	)
)

// Ingestion Metrics
var (
	MatchesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMatchesIngested,
			Help: HelpTextMatchesIngested,
		},
		[]string{LabelSource, LabelResult},
	)
)
