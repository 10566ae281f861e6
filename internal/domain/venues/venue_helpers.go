package venues

import (
	"fmt"
	"math"
	"time"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(p1, p2 pulsetypes.Coordinates) float64 {
	const R = 6371 // Earth's radius in kilometers

	lat1Rad := p1.Latitude * math.Pi / 180
	lat2Rad := p2.Latitude * math.Pi / 180
	dlat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dlon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

// searchCacheKey identifies one aggregation query. Identical queries
// within the cache TTL share one provider round-trip.
func searchCacheKey(center pulsetypes.Coordinates, radiusKm float64, cityHint string) string {
	return fmt.Sprintf("venues_%f_%f_%f_%s", center.Latitude, center.Longitude, radiusKm, cityHint)
}

// ShouldRefresh reports whether cached venue data is stale enough to
// refetch. Peak evenings (18:00 through 02:00) refresh twice an hour;
// off-peak tolerates two hours of staleness.
func ShouldRefresh(lastUpdate, now time.Time) bool {
	sinceUpdate := now.Sub(lastUpdate)

	hour := now.Hour()
	isPeakTime := hour >= 18 || hour <= 2
	if isPeakTime {
		return sinceUpdate >= 30*time.Minute
	}
	return sinceUpdate >= 2*time.Hour
}
