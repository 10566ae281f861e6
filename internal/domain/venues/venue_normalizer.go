package venues

import (
	"math"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"sync"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

const (
	placeholderPhone = "(555) 000-0000"
	defaultRating    = 4.0
	maxFeatures      = 4
	photoMaxWidth    = 600

	// Provider photos resolve against the photo proxy route so the
	// provider key never appears in client payloads.
	photoProxyPath = "/v1/venues/photo"
)

// Venues without provider photos cycle through a fixed image rotation.
var fallbackImages = []string{
	"https://images.pexels.com/photos/1449773/pexels-photo-1449773.jpeg",
	"https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg",
	"https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
}

// Static placeholder until real telemetry exists.
var defaultPeakHours = []string{"21:00", "22:00", "23:00", "00:00", "01:00"}

var categoryFeatures = map[pulsetypes.VenueCategory][]string{
	pulsetypes.CategoryBar:    {"Drinks", "Happy Hour", "Music"},
	pulsetypes.CategoryClub:   {"Dance Floor", "DJ", "VIP Area"},
	pulsetypes.CategoryHookah: {"Hookah", "Lounge", "BYOB"},
}

// Normalizer converts raw provider records into canonical venues.
type Normalizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewNormalizer returns a normalizer whose image fallback selection is
// driven by rng, which may be seeded for deterministic output.
func NewNormalizer(rng *rand.Rand) *Normalizer {
	return &Normalizer{rng: rng}
}

// Normalize merges a search summary with its detail record into a
// canonical venue. It returns nil only when the geometry is missing or
// malformed, signaling the aggregator to drop the record.
func (n *Normalizer) Normalize(summary pulsetypes.PlaceSummary, details *pulsetypes.PlaceDetails) *pulsetypes.Venue {
	if details == nil {
		details = &pulsetypes.PlaceDetails{}
	}

	geometry := details.Geometry
	if geometry == nil {
		geometry = summary.Geometry
	}
	if geometry == nil {
		return nil
	}
	coords := pulsetypes.Coordinates{Latitude: geometry.Location.Lat, Longitude: geometry.Location.Lng}
	if !coords.Valid() {
		return nil
	}

	name := details.Name
	if name == "" {
		name = summary.Name
	}

	rating := defaultRating
	if details.Rating != nil {
		rating = *details.Rating
	} else if summary.Rating != nil {
		rating = *summary.Rating
	}

	reviewCount := 0
	if details.UserRatingsTotal != nil {
		reviewCount = *details.UserRatingsTotal
	} else if summary.UserRatingsTotal != nil {
		reviewCount = *summary.UserRatingsTotal
	}

	priceLevel := 0
	if details.PriceLevel != nil {
		priceLevel = *details.PriceLevel
	}

	category := inferCategory(name, details.Types, summary.Types)

	venue := &pulsetypes.Venue{
		ID:               summary.PlaceID,
		PlaceID:          summary.PlaceID,
		Name:             name,
		Category:         category,
		Latitude:         coords.Latitude,
		Longitude:        coords.Longitude,
		Address:          resolveAddress(summary, details),
		Phone:            resolvePhone(details),
		Rating:           rating,
		UserRatingsTotal: reviewCount,
		PriceTier:        priceTierFromLevel(priceLevel),
		IsOpenNow:        resolveOpenNow(summary, details),
		BusynessLevel:    estimateBusynessLevel(rating, reviewCount),
		BusynessScore:    calculateBusynessScore(rating, reviewCount),
		PeakHours:        append([]string(nil), defaultPeakHours...),
		Features:         buildFeatures(category, details.Website, reviewCount, priceLevel),
		ImageURL:         n.resolveImage(details.Photos, summary.Photos),
		Website:          details.Website,
		Reviews:          trimReviews(details.Reviews, 3),
	}

	return venue
}

// inferCategory scans the lowercased name plus provider type tags.
// Hookah wins over club so "hookah club" lounges classify as hookah.
func inferCategory(name string, typeSets ...[]string) pulsetypes.VenueCategory {
	var b strings.Builder
	b.WriteString(name)
	for _, types := range typeSets {
		for _, t := range types {
			b.WriteByte(' ')
			b.WriteString(t)
		}
	}
	text := strings.ToLower(b.String())

	if strings.Contains(text, "hookah") || strings.Contains(text, "shisha") {
		return pulsetypes.CategoryHookah
	}
	if strings.Contains(text, "club") || strings.Contains(text, "nightclub") || strings.Contains(text, "dance") {
		return pulsetypes.CategoryClub
	}
	return pulsetypes.CategoryBar
}

func priceTierFromLevel(level int) pulsetypes.PriceTier {
	switch level {
	case 1:
		return pulsetypes.PriceTierLow
	case 2:
		return pulsetypes.PriceTierMid
	case 3, 4:
		return pulsetypes.PriceTierHigh
	default:
		return pulsetypes.PriceTierMid
	}
}

// estimateBusynessLevel buckets venues without occupancy telemetry:
// well-rated venues with many reviews are assumed busier.
func estimateBusynessLevel(rating float64, reviewCount int) pulsetypes.BusynessLevel {
	score := rating*0.7 + math.Min(float64(reviewCount)/100, 5)*0.3

	switch {
	case score >= 4.5:
		return pulsetypes.BusynessVeryHigh
	case score >= 4.0:
		return pulsetypes.BusynessHigh
	case score >= 3.5:
		return pulsetypes.BusynessModerate
	default:
		return pulsetypes.BusynessLow
	}
}

// calculateBusynessScore is intentionally a separate formula from the
// level thresholds; the two are not reconciled. Rating contributes up to
// 60 points, review volume up to 40.
func calculateBusynessScore(rating float64, reviewCount int) int {
	score := (rating / 5) * 60
	score += math.Min(float64(reviewCount)/50, 40)
	return int(math.Round(math.Min(score, 100)))
}

func buildFeatures(category pulsetypes.VenueCategory, website string, reviewCount, priceLevel int) []string {
	features := append([]string(nil), categoryFeatures[category]...)

	if website != "" {
		features = append(features, "Online Presence")
	}
	if reviewCount > 100 {
		features = append(features, "Popular")
	}
	if priceLevel >= 3 {
		features = append(features, "Upscale")
	}

	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}
	return features
}

func (n *Normalizer) resolveImage(detailPhotos, summaryPhotos []pulsetypes.Photo) string {
	photos := detailPhotos
	if len(photos) == 0 {
		photos = summaryPhotos
	}
	if len(photos) > 0 {
		return photoProxyURL(photos[0].PhotoReference, photoMaxWidth)
	}

	n.mu.Lock()
	idx := n.rng.Intn(len(fallbackImages))
	n.mu.Unlock()
	return fallbackImages[idx]
}

func photoProxyURL(photoReference string, maxWidth int) string {
	params := url.Values{}
	params.Set("photo_reference", photoReference)
	params.Set("max_width", strconv.Itoa(maxWidth))
	return photoProxyPath + "?" + params.Encode()
}

func resolveAddress(summary pulsetypes.PlaceSummary, details *pulsetypes.PlaceDetails) string {
	if details.FormattedAddress != "" {
		return details.FormattedAddress
	}
	if summary.Vicinity != nil {
		return *summary.Vicinity
	}
	return ""
}

func resolvePhone(details *pulsetypes.PlaceDetails) string {
	if details.FormattedPhoneNumber != "" {
		return details.FormattedPhoneNumber
	}
	if details.InternationalPhoneNumber != "" {
		return details.InternationalPhoneNumber
	}
	return placeholderPhone
}

func resolveOpenNow(summary pulsetypes.PlaceSummary, details *pulsetypes.PlaceDetails) bool {
	if details.OpeningHours != nil && details.OpeningHours.OpenNow != nil {
		return *details.OpeningHours.OpenNow
	}
	if summary.OpeningHours != nil && summary.OpeningHours.OpenNow != nil {
		return *summary.OpeningHours.OpenNow
	}
	return true
}

func trimReviews(reviews []pulsetypes.PlaceReview, limit int) []pulsetypes.VenueReview {
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	out := make([]pulsetypes.VenueReview, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, pulsetypes.VenueReview{
			AuthorName: r.AuthorName,
			Rating:     r.Rating,
			Text:       r.Text,
		})
	}
	return out
}
