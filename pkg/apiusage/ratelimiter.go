// Package apiusage holds the outbound-call budget primitives: a spacing
// rate limiter with usage accounting and a TTL cache for provider
// responses. Both are constructed once and injected, never shared through
// package globals, so tests can run against isolated instances.
package apiusage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestSpacing is the minimum gap enforced between provider
// calls when no explicit spacing is configured.
const DefaultRequestSpacing = 100 * time.Millisecond

// Published Google Places unit prices, USD per request.
const (
	nearbySearchCost = 0.032
	placeDetailsCost = 0.017
	photoCost        = 0.007
)

// UsageStats is a snapshot of outbound request accounting.
type UsageStats struct {
	TotalRequests int64     `json:"total_requests"`
	EstimatedCost float64   `json:"estimated_cost"`
	LastRequestAt time.Time `json:"last_request_at,omitzero"`
}

// RateLimiter enforces a minimum spacing between outbound provider calls
// and tracks a process-lifetime request counter for cost estimation.
// Safe for concurrent use; concurrent callers still observe the spacing
// between calls that actually reach the provider.
type RateLimiter struct {
	limiter *rate.Limiter

	mu            sync.Mutex
	totalRequests int64
	lastRequestAt time.Time
}

// NewRateLimiter returns a limiter that spaces calls at least minSpacing
// apart. Non-positive spacing falls back to DefaultRequestSpacing.
func NewRateLimiter(minSpacing time.Duration) *RateLimiter {
	if minSpacing <= 0 {
		minSpacing = DefaultRequestSpacing
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(minSpacing), 1),
	}
}

// Throttle blocks until the configured spacing since the previous
// throttled call has elapsed, then records the call. The only error it
// can return is the context's.
func (r *RateLimiter) Throttle(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	r.totalRequests++
	r.lastRequestAt = time.Now()
	r.mu.Unlock()
	return nil
}

// UsageStats reports the running request count and the estimated spend,
// assuming every logical request fans out into one search, one details
// and one photo call.
func (r *RateLimiter) UsageStats() UsageStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return UsageStats{
		TotalRequests: r.totalRequests,
		EstimatedCost: float64(r.totalRequests) * (nearbySearchCost + placeDetailsCost + photoCost),
		LastRequestAt: r.lastRequestAt,
	}
}
