package venues

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
	"github.com/nightpulse/nightpulse-api/pkg/apiusage"
	"github.com/nightpulse/nightpulse-api/pkg/observability"
)

var _ Service = (*ServiceImpl)(nil)

// One provider search per venue type; results are merged in this order.
var venueTypeQueries = []string{"night_club", "bar", "restaurant"}

// Provider is the places-search collaborator consumed by the aggregator.
type Provider interface {
	NearbySearch(ctx context.Context, loc pulsetypes.Coordinates, radiusMeters int, venueType string) (*pulsetypes.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, placeID string) (*pulsetypes.PlaceDetails, error)
}

// Service defines the business logic contract for venue aggregation.
type Service interface {
	// GetNightlifeVenues aggregates nightlife venues around center. It
	// never fails on provider trouble; the result's Source reports
	// whether live or mock data was served. The only propagated errors
	// are ErrInvalidArgument and context cancellation.
	GetNightlifeVenues(ctx context.Context, center pulsetypes.Coordinates, radiusKm float64, cityHint string) (*pulsetypes.VenueSearchResult, error)

	// GetBusynessData returns busyness records for the given venue ids.
	GetBusynessData(ctx context.Context, venueIDs []string) []pulsetypes.BusynessData

	// FilterBusyForNow applies the nightlife-hours busyness filter using
	// the current wall-clock hour.
	FilterBusyForNow(venues []pulsetypes.Venue, data []pulsetypes.BusynessData) []pulsetypes.Venue

	// UsageStats reports outbound provider call accounting.
	UsageStats() apiusage.UsageStats

	// PerformMaintenance sweeps expired cache entries. Optional; the
	// cache self-corrects on reads.
	PerformMaintenance()
}

type ServiceImpl struct {
	logger     *slog.Logger
	provider   Provider
	limiter    *apiusage.RateLimiter
	cache      *apiusage.TTLCache
	normalizer *Normalizer
	now        func() time.Time
}

func NewServiceImpl(provider Provider, limiter *apiusage.RateLimiter, cache *apiusage.TTLCache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		provider:   provider,
		limiter:    limiter,
		cache:      cache,
		normalizer: NewNormalizer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		now:        time.Now,
	}
}

func (s *ServiceImpl) GetNightlifeVenues(ctx context.Context, center pulsetypes.Coordinates, radiusKm float64, cityHint string) (*pulsetypes.VenueSearchResult, error) {
	ctx, span := otel.Tracer("VenueService").Start(ctx, "GetNightlifeVenues")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("radius_km", radiusKm),
		attribute.String("city_hint", cityHint),
	)

	start := s.now()
	defer func() {
		observability.SearchDuration.Observe(s.now().Sub(start).Seconds())
	}()

	l := s.logger.With(slog.String("service", "GetNightlifeVenues"), slog.String("city", cityHint))

	if !center.Valid() {
		span.SetStatus(codes.Error, "invalid center coordinates")
		return nil, fmt.Errorf("center coordinates out of range: %w", pulsetypes.ErrInvalidArgument)
	}
	if radiusKm <= 0 {
		span.SetStatus(codes.Error, "non-positive radius")
		return nil, fmt.Errorf("radius must be positive, got %v: %w", radiusKm, pulsetypes.ErrInvalidArgument)
	}

	cacheKey := searchCacheKey(center, radiusKm, cityHint)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if result, ok := cached.(*pulsetypes.VenueSearchResult); ok {
			observability.CacheHits.Inc()
			l.DebugContext(ctx, "serving cached venue data", slog.String("cache_key", cacheKey))
			hit := cloneResult(result)
			hit.FromCache = true
			return hit, nil
		}
	}
	observability.CacheMisses.Inc()

	live, allQueriesFailed := s.fetchLiveVenues(ctx, center, radiusKm)
	if err := ctx.Err(); err != nil {
		// Caller abandoned the aggregation; publish nothing.
		return nil, err
	}

	result := &pulsetypes.VenueSearchResult{Source: pulsetypes.SourceLive}

	switch {
	case allQueriesFailed:
		l.WarnContext(ctx, "all provider queries failed, serving mock dataset")
		observability.Fallbacks.WithLabelValues("provider_failed").Inc()
		result.Source = pulsetypes.SourceFallback
		result.FallbackReason = "provider unavailable"
		result.Venues = MockNightlifeVenues(cityHint)
	case len(live) == 0:
		l.WarnContext(ctx, "no nightlife venues survived filtering, serving mock dataset")
		observability.Fallbacks.WithLabelValues("no_nightlife_venues").Inc()
		result.Source = pulsetypes.SourceFallback
		result.FallbackReason = "no nightlife venues found"
		result.Venues = MockNightlifeVenues(cityHint)
	default:
		result.Venues = live
	}

	for i := range result.Venues {
		result.Venues[i].DistanceKm = Haversine(center, pulsetypes.Coordinates{
			Latitude:  result.Venues[i].Latitude,
			Longitude: result.Venues[i].Longitude,
		})
	}
	pulsetypes.SortVenuesByBusyness(result.Venues)

	s.cache.Put(cacheKey, result)

	l.InfoContext(ctx, "venue aggregation completed",
		slog.Int("count", len(result.Venues)),
		slog.String("source", string(result.Source)),
	)
	span.SetAttributes(attribute.Int("venues.count", len(result.Venues)))
	span.SetStatus(codes.Ok, "venues aggregated")

	return cloneResult(result), nil
}

// cloneResult detaches the venue slice so callers cannot mutate the
// cached entry through a returned result.
func cloneResult(r *pulsetypes.VenueSearchResult) *pulsetypes.VenueSearchResult {
	out := *r
	out.Venues = append([]pulsetypes.Venue(nil), r.Venues...)
	return &out
}

// fetchLiveVenues runs one provider search per venue type, fetches a
// detail record per result, normalizes, dedups by place id keeping the
// first occurrence, and applies the nightlife filter. Type queries run
// concurrently but merge in the fixed query order, so dedup is
// identical to the sequential semantics.
func (s *ServiceImpl) fetchLiveVenues(ctx context.Context, center pulsetypes.Coordinates, radiusKm float64) (live []pulsetypes.Venue, allQueriesFailed bool) {
	l := s.logger.With(slog.String("service", "fetchLiveVenues"))
	radiusMeters := int(radiusKm * 1000)

	perType := make([][]pulsetypes.Venue, len(venueTypeQueries))
	failed := make([]bool, len(venueTypeQueries))

	g, gctx := errgroup.WithContext(ctx)
	for i, venueType := range venueTypeQueries {
		i, venueType := i, venueType
		g.Go(func() error {
			found, err := s.searchVenueType(gctx, center, radiusMeters, venueType)
			if err != nil {
				// A failed type query contributes nothing; the other
				// queries proceed.
				l.WarnContext(gctx, "venue type query failed",
					slog.String("venue_type", venueType),
					slog.Any("error", err),
				)
				failed[i] = true
				return nil
			}
			perType[i] = found
			return nil
		})
	}
	_ = g.Wait()

	allQueriesFailed = true
	for _, f := range failed {
		if !f {
			allQueriesFailed = false
			break
		}
	}

	seen := make(map[string]bool)
	var merged []pulsetypes.Venue
	for _, found := range perType {
		for _, v := range found {
			if seen[v.PlaceID] {
				continue
			}
			seen[v.PlaceID] = true
			merged = append(merged, v)
		}
	}

	nightlife := make([]pulsetypes.Venue, 0, len(merged))
	for _, v := range merged {
		if IsNightlifeVenue(v) {
			nightlife = append(nightlife, v)
		}
	}

	l.DebugContext(ctx, "live fetch finished",
		slog.Int("merged", len(merged)),
		slog.Int("nightlife", len(nightlife)),
		slog.Bool("all_queries_failed", allQueriesFailed),
	)
	return nightlife, allQueriesFailed
}

// searchVenueType issues one nearby search plus one detail fetch per
// result. A failed detail fetch drops that single venue only.
func (s *ServiceImpl) searchVenueType(ctx context.Context, center pulsetypes.Coordinates, radiusMeters int, venueType string) ([]pulsetypes.Venue, error) {
	if err := s.limiter.Throttle(ctx); err != nil {
		return nil, err
	}
	resp, err := s.provider.NearbySearch(ctx, center, radiusMeters, venueType)
	if err != nil {
		return nil, fmt.Errorf("nearby search for %s: %w", venueType, err)
	}

	venuesFound := make([]pulsetypes.Venue, 0, len(resp.Results))
	for _, summary := range resp.Results {
		if summary.PlaceID == "" {
			continue
		}
		if err := s.limiter.Throttle(ctx); err != nil {
			return nil, err
		}
		details, err := s.provider.PlaceDetails(ctx, summary.PlaceID)
		if err != nil {
			s.logger.DebugContext(ctx, "detail fetch failed, dropping venue",
				slog.String("place_id", summary.PlaceID),
				slog.Any("error", err),
			)
			continue
		}
		if v := s.normalizer.Normalize(summary, details); v != nil {
			venuesFound = append(venuesFound, *v)
		}
	}
	return venuesFound, nil
}

func (s *ServiceImpl) GetBusynessData(ctx context.Context, venueIDs []string) []pulsetypes.BusynessData {
	// No live occupancy feed exists; records are synthesized
	// deterministically per venue id.
	s.logger.DebugContext(ctx, "generating busyness data", slog.Int("venues", len(venueIDs)))
	return mockBusynessData(venueIDs)
}

func (s *ServiceImpl) FilterBusyForNow(venuesIn []pulsetypes.Venue, data []pulsetypes.BusynessData) []pulsetypes.Venue {
	return FilterBusyDuringNightlifeHours(venuesIn, data, s.now().Hour())
}

func (s *ServiceImpl) UsageStats() apiusage.UsageStats {
	return s.limiter.UsageStats()
}

func (s *ServiceImpl) PerformMaintenance() {
	s.cache.SweepExpired()
}
