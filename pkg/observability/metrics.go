// Package observability exposes Prometheus metrics for the aggregation
// core. Metrics are registered on the default registry and served by the
// router's /metrics endpoint when enabled.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderRequests counts outbound provider calls by endpoint and
	// outcome ("ok" or "error").
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nightpulse_provider_requests_total",
		Help: "Outbound places-provider requests.",
	}, []string{"endpoint", "outcome"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nightpulse_search_cache_hits_total",
		Help: "Venue search cache hits.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nightpulse_search_cache_misses_total",
		Help: "Venue search cache misses.",
	})

	// Fallbacks counts aggregations that served the mock dataset, by
	// reason ("provider_failed" or "no_nightlife_venues").
	Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nightpulse_fallbacks_total",
		Help: "Aggregations resolved with the deterministic mock dataset.",
	}, []string{"reason"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nightpulse_venue_search_duration_seconds",
		Help:    "End-to-end venue aggregation latency.",
		Buckets: prometheus.DefBuckets,
	})
)
