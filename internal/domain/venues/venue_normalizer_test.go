package venues

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(rand.New(rand.NewSource(1)))
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

func baseSummary() pulsetypes.PlaceSummary {
	return pulsetypes.PlaceSummary{
		PlaceID:  "place-1",
		Name:     "The Tipsy Club",
		Geometry: &pulsetypes.Geometry{Location: pulsetypes.LatLng{Lat: 32.78, Lng: -96.80}},
		Vicinity: strPtr("123 Main St"),
	}
}

func TestNormalizeBasicFields(t *testing.T) {
	n := newTestNormalizer()

	details := &pulsetypes.PlaceDetails{
		Name:                 "The Tipsy Club",
		FormattedAddress:     "123 Main St, Dallas, TX",
		FormattedPhoneNumber: "(214) 555-0100",
		Geometry:             &pulsetypes.Geometry{Location: pulsetypes.LatLng{Lat: 32.78, Lng: -96.80}},
		Rating:               floatPtr(4.2),
		UserRatingsTotal:     intPtr(150),
		PriceLevel:           intPtr(2),
		OpeningHours:         &pulsetypes.OpeningHours{OpenNow: boolPtr(false)},
		Website:              "https://tipsy.example.com",
	}

	v := n.Normalize(baseSummary(), details)
	require.NotNil(t, v)

	assert.Equal(t, "place-1", v.ID)
	assert.Equal(t, "place-1", v.PlaceID)
	assert.Equal(t, "The Tipsy Club", v.Name)
	assert.Equal(t, "123 Main St, Dallas, TX", v.Address)
	assert.Equal(t, "(214) 555-0100", v.Phone)
	assert.Equal(t, 4.2, v.Rating)
	assert.Equal(t, 150, v.UserRatingsTotal)
	assert.Equal(t, pulsetypes.PriceTierMid, v.PriceTier)
	assert.False(t, v.IsOpenNow)
	assert.Equal(t, defaultPeakHours, v.PeakHours)
}

func TestNormalizeDefaults(t *testing.T) {
	n := newTestNormalizer()

	// Details present but with every optional field absent.
	v := n.Normalize(baseSummary(), &pulsetypes.PlaceDetails{})
	require.NotNil(t, v)

	assert.Equal(t, 4.0, v.Rating, "missing rating defaults to 4.0")
	assert.Equal(t, placeholderPhone, v.Phone)
	assert.Equal(t, pulsetypes.PriceTierMid, v.PriceTier, "missing price level defaults to $$")
	assert.True(t, v.IsOpenNow, "unknown open state defaults to open")
	assert.Equal(t, "123 Main St", v.Address, "falls back to summary vicinity")
}

func TestNormalizeDropsMissingGeometry(t *testing.T) {
	n := newTestNormalizer()

	summary := baseSummary()
	summary.Geometry = nil
	assert.Nil(t, n.Normalize(summary, &pulsetypes.PlaceDetails{}), "no geometry anywhere")

	badGeo := baseSummary()
	badGeo.Geometry = &pulsetypes.Geometry{Location: pulsetypes.LatLng{Lat: 95, Lng: 0}}
	assert.Nil(t, n.Normalize(badGeo, &pulsetypes.PlaceDetails{}), "latitude out of range")
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name     string
		venue    string
		types    []string
		expected pulsetypes.VenueCategory
	}{
		{"hookah by name", "Oasis Hookah Lounge", nil, pulsetypes.CategoryHookah},
		{"shisha in types", "Midnight Spot", []string{"shisha_lounge"}, pulsetypes.CategoryHookah},
		{"hookah wins over club", "Hookah Club", nil, pulsetypes.CategoryHookah},
		{"club by name", "Deep Ellum Nightclub", nil, pulsetypes.CategoryClub},
		{"dance in types", "Electric Avenue", []string{"dance_hall"}, pulsetypes.CategoryClub},
		{"defaults to bar", "Corner Tavern", []string{"establishment"}, pulsetypes.CategoryBar},
		{"case insensitive", "SHISHA PALACE", nil, pulsetypes.CategoryHookah},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferCategory(tt.venue, tt.types))
		})
	}
}

func TestPriceTierFromLevel(t *testing.T) {
	assert.Equal(t, pulsetypes.PriceTierMid, priceTierFromLevel(0))
	assert.Equal(t, pulsetypes.PriceTierLow, priceTierFromLevel(1))
	assert.Equal(t, pulsetypes.PriceTierMid, priceTierFromLevel(2))
	assert.Equal(t, pulsetypes.PriceTierHigh, priceTierFromLevel(3))
	assert.Equal(t, pulsetypes.PriceTierHigh, priceTierFromLevel(4))
	assert.Equal(t, pulsetypes.PriceTierMid, priceTierFromLevel(7))
}

func TestEstimateBusynessLevelBands(t *testing.T) {
	// The level formula is rating*0.7 + min(reviews/100, 5)*0.3. Inputs
	// sit a safe margin from each threshold: exact-boundary combos land
	// a few ULPs off in float64.
	tests := []struct {
		name     string
		rating   float64
		reviews  int
		expected pulsetypes.BusynessLevel
	}{
		{"well above very-high", 4.8, 500, pulsetypes.BusynessVeryHigh},
		{"just above very-high boundary", 4.3, 500, pulsetypes.BusynessVeryHigh}, // 4.51
		{"just below very-high boundary", 4.26, 500, pulsetypes.BusynessHigh},    // 4.482
		{"just above high boundary", 3.6, 500, pulsetypes.BusynessHigh},          // 4.02
		{"just below high boundary", 3.55, 500, pulsetypes.BusynessModerate},     // 3.985
		{"just above moderate boundary", 2.9, 500, pulsetypes.BusynessModerate},  // 3.53
		{"just below moderate boundary", 2.8, 500, pulsetypes.BusynessLow},       // 3.46
		{"low with few reviews", 3.0, 50, pulsetypes.BusynessLow},                // 2.25
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateBusynessLevel(tt.rating, tt.reviews))
		})
	}
}

func TestCalculateBusynessScore(t *testing.T) {
	assert.Equal(t, 100, calculateBusynessScore(5.0, 5000), "clamped to 100")
	assert.Equal(t, 0, calculateBusynessScore(0, 0))
	assert.Equal(t, 50, calculateBusynessScore(4.0, 100), "48 from rating + 2 from reviews")
	assert.Equal(t, 94, calculateBusynessScore(4.5, 2000), "54 from rating + capped 40 from reviews")
}

func TestBusynessScoreMonotonicInRating(t *testing.T) {
	for _, reviews := range []int{0, 50, 250, 5000} {
		prev := -1
		for rating := 0.0; rating <= 5.0; rating += 0.1 {
			score := calculateBusynessScore(rating, reviews)
			assert.GreaterOrEqual(t, score, prev,
				"score must not decrease as rating grows (reviews=%d rating=%.1f)", reviews, rating)
			prev = score
		}
	}
}

func TestNormalizeBusynessConsistency(t *testing.T) {
	n := newTestNormalizer()

	for _, tc := range []struct {
		rating  float64
		reviews int
	}{
		{4.8, 500}, {4.3, 500}, {4.26, 500}, {3.6, 500}, {3.0, 500}, {3.0, 50}, {5.0, 0},
	} {
		details := &pulsetypes.PlaceDetails{
			Rating:           floatPtr(tc.rating),
			UserRatingsTotal: intPtr(tc.reviews),
		}
		v := n.Normalize(baseSummary(), details)
		require.NotNil(t, v)

		assert.Equal(t, estimateBusynessLevel(tc.rating, tc.reviews), v.BusynessLevel)
		assert.Equal(t, calculateBusynessScore(tc.rating, tc.reviews), v.BusynessScore)
		assert.GreaterOrEqual(t, v.BusynessScore, 0)
		assert.LessOrEqual(t, v.BusynessScore, 100)
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Run("category seeds only", func(t *testing.T) {
		assert.Equal(t, []string{"Drinks", "Happy Hour", "Music"},
			buildFeatures(pulsetypes.CategoryBar, "", 10, 0))
	})

	t.Run("bonuses append in order and cap at four", func(t *testing.T) {
		got := buildFeatures(pulsetypes.CategoryClub, "https://x.example", 150, 3)
		assert.Equal(t, []string{"Dance Floor", "DJ", "VIP Area", "Online Presence"}, got)
	})

	t.Run("popular without website", func(t *testing.T) {
		got := buildFeatures(pulsetypes.CategoryHookah, "", 150, 0)
		assert.Equal(t, []string{"Hookah", "Lounge", "BYOB", "Popular"}, got)
	})

	t.Run("exactly 100 reviews is not popular", func(t *testing.T) {
		got := buildFeatures(pulsetypes.CategoryBar, "", 100, 0)
		assert.NotContains(t, got, "Popular")
	})
}

func TestResolveImage(t *testing.T) {
	n := newTestNormalizer()

	t.Run("provider photo resolves through the proxy route", func(t *testing.T) {
		summary := baseSummary()
		details := &pulsetypes.PlaceDetails{
			Photos: []pulsetypes.Photo{{PhotoReference: "ref-abc"}},
		}
		v := n.Normalize(summary, details)
		require.NotNil(t, v)
		assert.Equal(t, "/v1/venues/photo?max_width=600&photo_reference=ref-abc", v.ImageURL)
		assert.NotContains(t, v.ImageURL, "key=", "image URLs must never carry the provider key")
		assert.NotContains(t, v.ImageURL, "googleapis", "image URLs must not point at the provider directly")
	})

	t.Run("fallback rotation membership", func(t *testing.T) {
		// Selection is pseudo-random; only membership is guaranteed.
		v := n.Normalize(baseSummary(), &pulsetypes.PlaceDetails{})
		require.NotNil(t, v)
		assert.Contains(t, fallbackImages, v.ImageURL)
	})
}

func TestNormalizeTrimsReviews(t *testing.T) {
	n := newTestNormalizer()

	details := &pulsetypes.PlaceDetails{
		Reviews: []pulsetypes.PlaceReview{
			{AuthorName: "a", Rating: 5, Text: "great"},
			{AuthorName: "b", Rating: 4, Text: "good"},
			{AuthorName: "c", Rating: 3, Text: "fine"},
			{AuthorName: "d", Rating: 2, Text: "meh"},
		},
	}
	v := n.Normalize(baseSummary(), details)
	require.NotNil(t, v)
	require.Len(t, v.Reviews, 3)
	assert.Equal(t, "a", v.Reviews[0].AuthorName)
}
