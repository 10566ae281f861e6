package pulsetypes

import (
	"math"
	"sort"
)

// VenueCategory is the inferred venue classification. The provider has no
// native notion of these; they are derived from name and type tags.
type VenueCategory string

const (
	CategoryBar    VenueCategory = "bar"
	CategoryClub   VenueCategory = "club"
	CategoryHookah VenueCategory = "hookah"
)

// PriceTier is the display price bucket mapped from the provider's
// price-level ordinal.
type PriceTier string

const (
	PriceTierLow  PriceTier = "$"
	PriceTierMid  PriceTier = "$$"
	PriceTierHigh PriceTier = "$$$"
)

// BusynessLevel is the heuristic occupancy bucket.
type BusynessLevel string

const (
	BusynessLow      BusynessLevel = "low"
	BusynessModerate BusynessLevel = "moderate"
	BusynessHigh     BusynessLevel = "high"
	BusynessVeryHigh BusynessLevel = "very-high"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// VenueReview is a trimmed provider review carried through for display.
type VenueReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

// Venue is the canonical venue record. Instances are rebuilt from scratch
// on every aggregation call; no cross-call identity persists outside the
// cache.
type Venue struct {
	ID               string        `json:"id"`
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Category         VenueCategory `json:"category"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Address          string        `json:"address"`
	Phone            string        `json:"phone"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
	PriceTier        PriceTier     `json:"price_tier"`
	IsOpenNow        bool          `json:"is_open_now"`
	BusynessLevel    BusynessLevel `json:"busyness_level"`
	BusynessScore    int           `json:"busyness_score"`
	PeakHours        []string      `json:"peak_hours"`
	Features         []string      `json:"features"`
	ImageURL         string        `json:"image_url"`
	Website          string        `json:"website,omitempty"`
	DistanceKm       float64       `json:"distance_km,omitempty"`
	Reviews          []VenueReview `json:"reviews,omitempty"`
}

// HourlyBusyness is one point of a predicted 24h busyness curve.
type HourlyBusyness struct {
	Hour     int `json:"hour"`
	Busyness int `json:"busyness"`
}

// BusynessData is the live/predicted busyness record for one venue.
type BusynessData struct {
	VenueID           string           `json:"venue_id"`
	CurrentBusyness   int              `json:"current_busyness"`
	PredictedBusyness []HourlyBusyness `json:"predicted_busyness"`
	IsNightlifePeak   bool             `json:"is_nightlife_peak"`
	PeakNightHours    []int            `json:"peak_night_hours"`
}

// ResultSource tags which path produced a search result.
type ResultSource string

const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

// VenueSearchResult is the tagged outcome of a venue aggregation call.
// Fallback is a recovered condition, not an error: callers can branch on
// Source without inspecting logs.
type VenueSearchResult struct {
	Venues         []Venue      `json:"venues"`
	Source         ResultSource `json:"source"`
	FallbackReason string       `json:"fallback_reason,omitempty"`
	FromCache      bool         `json:"from_cache"`
}

// SortVenuesByBusyness orders venues by busyness score descending, then
// rating descending. The tie-break is part of the API contract.
func SortVenuesByBusyness(venues []Venue) {
	sort.SliceStable(venues, func(i, j int) bool {
		if venues[i].BusynessScore != venues[j].BusynessScore {
			return venues[i].BusynessScore > venues[j].BusynessScore
		}
		return venues[i].Rating > venues[j].Rating
	})
}
