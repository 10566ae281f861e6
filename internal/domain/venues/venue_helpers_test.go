package venues

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

func TestHaversine(t *testing.T) {
	dallas := pulsetypes.Coordinates{Latitude: 32.7767, Longitude: -96.7970}
	austin := pulsetypes.Coordinates{Latitude: 30.2672, Longitude: -97.7431}

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t, Haversine(dallas, austin), Haversine(austin, dallas))
	})

	t.Run("identical points", func(t *testing.T) {
		assert.Zero(t, Haversine(dallas, dallas))
	})

	t.Run("known distance", func(t *testing.T) {
		// Dallas to Austin is roughly 293 km great-circle.
		assert.InDelta(t, 293, Haversine(dallas, austin), 5)
	})
}

func TestSearchCacheKey(t *testing.T) {
	a := pulsetypes.Coordinates{Latitude: 32.7767, Longitude: -96.7970}
	b := pulsetypes.Coordinates{Latitude: 30.2672, Longitude: -97.7431}

	assert.Equal(t,
		searchCacheKey(a, 15, "Dallas, TX"),
		searchCacheKey(a, 15, "Dallas, TX"))
	assert.NotEqual(t,
		searchCacheKey(a, 15, "Dallas, TX"),
		searchCacheKey(b, 15, "Dallas, TX"))
	assert.NotEqual(t,
		searchCacheKey(a, 15, "Dallas, TX"),
		searchCacheKey(a, 10, "Dallas, TX"))
	assert.NotEqual(t,
		searchCacheKey(a, 15, "Dallas, TX"),
		searchCacheKey(a, 15, "Austin, TX"))
}

func TestShouldRefresh(t *testing.T) {
	peak := time.Date(2025, 6, 7, 23, 0, 0, 0, time.UTC)
	offPeak := time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		staleness time.Duration
		expected  bool
	}{
		{"peak stale", peak, 31 * time.Minute, true},
		{"peak fresh", peak, 10 * time.Minute, false},
		{"off-peak short staleness tolerated", offPeak, time.Hour, false},
		{"off-peak very stale", offPeak, 3 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldRefresh(tt.now.Add(-tt.staleness), tt.now))
		})
	}
}
