package venues

import (
	"hash/fnv"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

// DefaultMockCity receives unrecognized city hints.
const DefaultMockCity = "Dallas, TX"

// Fixed fallback datasets keyed by city. Served verbatim whenever the
// provider is unreachable or yields no usable nightlife venues, so
// output for a given city hint is identical on every call.
var mockVenuesByCity = map[string][]pulsetypes.Venue{
	"Dallas, TX": {
		{
			ID:               "mock-dallas-1",
			PlaceID:          "mock-dallas-1",
			Name:             "Deep Ellum Nightclub",
			Category:         pulsetypes.CategoryClub,
			Latitude:         32.7767,
			Longitude:        -96.7970,
			Address:          "123 Main St, Dallas, TX 75201",
			Phone:            "(214) 555-0123",
			Rating:           4.5,
			UserRatingsTotal: 250,
			PriceTier:        pulsetypes.PriceTierMid,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessVeryHigh,
			BusynessScore:    85,
			PeakHours:        []string{"22:00", "23:00", "00:00", "01:00", "02:00"},
			Features:         []string{"Dance Floor", "DJ", "VIP Area", "Bottle Service"},
			ImageURL:         "https://images.pexels.com/photos/1449773/pexels-photo-1449773.jpeg",
			Website:          "https://example.com",
		},
		{
			ID:               "mock-dallas-2",
			PlaceID:          "mock-dallas-2",
			Name:             "Uptown Sports Bar",
			Category:         pulsetypes.CategoryBar,
			Latitude:         32.7831,
			Longitude:        -96.8067,
			Address:          "456 Elm St, Dallas, TX 75202",
			Phone:            "(214) 555-0456",
			Rating:           4.2,
			UserRatingsTotal: 180,
			PriceTier:        pulsetypes.PriceTierMid,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessHigh,
			BusynessScore:    75,
			PeakHours:        []string{"19:00", "20:00", "21:00", "22:00", "23:00"},
			Features:         []string{"Sports TV", "Happy Hour", "Pool Tables", "Outdoor Patio"},
			ImageURL:         "https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg",
		},
		{
			ID:               "mock-dallas-3",
			PlaceID:          "mock-dallas-3",
			Name:             "Oasis Hookah Lounge",
			Category:         pulsetypes.CategoryHookah,
			Latitude:         32.7555,
			Longitude:        -96.8100,
			Address:          "789 Commerce St, Dallas, TX 75203",
			Phone:            "(214) 555-0789",
			Rating:           4.0,
			UserRatingsTotal: 95,
			PriceTier:        pulsetypes.PriceTierLow,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessModerate,
			BusynessScore:    60,
			PeakHours:        []string{"20:00", "21:00", "22:00", "23:00", "00:00"},
			Features:         []string{"Premium Flavors", "Private Rooms", "Games", "BYOB"},
			ImageURL:         "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
		},
	},
	"Austin, TX": {
		{
			ID:               "mock-austin-1",
			PlaceID:          "mock-austin-1",
			Name:             "Sixth Street Dance Club",
			Category:         pulsetypes.CategoryClub,
			Latitude:         30.2672,
			Longitude:        -97.7431,
			Address:          "601 E 6th St, Austin, TX 78701",
			Phone:            "(512) 555-0601",
			Rating:           4.4,
			UserRatingsTotal: 310,
			PriceTier:        pulsetypes.PriceTierMid,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessVeryHigh,
			BusynessScore:    88,
			PeakHours:        []string{"22:00", "23:00", "00:00", "01:00", "02:00"},
			Features:         []string{"Dance Floor", "DJ", "VIP Area", "Live Music"},
			ImageURL:         "https://images.pexels.com/photos/1449773/pexels-photo-1449773.jpeg",
		},
		{
			ID:               "mock-austin-2",
			PlaceID:          "mock-austin-2",
			Name:             "Rainey Street Beer Garden",
			Category:         pulsetypes.CategoryBar,
			Latitude:         30.2590,
			Longitude:        -97.7384,
			Address:          "80 Rainey St, Austin, TX 78701",
			Phone:            "(512) 555-0080",
			Rating:           4.3,
			UserRatingsTotal: 220,
			PriceTier:        pulsetypes.PriceTierMid,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessHigh,
			BusynessScore:    72,
			PeakHours:        []string{"19:00", "20:00", "21:00", "22:00", "23:00"},
			Features:         []string{"Outdoor Patio", "Happy Hour", "Craft Beer", "Food Trucks"},
			ImageURL:         "https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg",
		},
		{
			ID:               "mock-austin-3",
			PlaceID:          "mock-austin-3",
			Name:             "Sahara Hookah Lounge",
			Category:         pulsetypes.CategoryHookah,
			Latitude:         30.2849,
			Longitude:        -97.7341,
			Address:          "2222 Guadalupe St, Austin, TX 78705",
			Phone:            "(512) 555-2222",
			Rating:           4.1,
			UserRatingsTotal: 120,
			PriceTier:        pulsetypes.PriceTierLow,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessModerate,
			BusynessScore:    58,
			PeakHours:        []string{"20:00", "21:00", "22:00", "23:00", "00:00"},
			Features:         []string{"Premium Flavors", "Lounge", "Games", "BYOB"},
			ImageURL:         "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
		},
	},
	"Houston, TX": {
		{
			ID:               "mock-houston-1",
			PlaceID:          "mock-houston-1",
			Name:             "Midtown Nightclub",
			Category:         pulsetypes.CategoryClub,
			Latitude:         29.7604,
			Longitude:        -95.3698,
			Address:          "2400 Main St, Houston, TX 77002",
			Phone:            "(713) 555-2400",
			Rating:           4.3,
			UserRatingsTotal: 275,
			PriceTier:        pulsetypes.PriceTierHigh,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessVeryHigh,
			BusynessScore:    82,
			PeakHours:        []string{"22:00", "23:00", "00:00", "01:00", "02:00"},
			Features:         []string{"Dance Floor", "DJ", "VIP Area", "Upscale"},
			ImageURL:         "https://images.pexels.com/photos/1449773/pexels-photo-1449773.jpeg",
		},
		{
			ID:               "mock-houston-2",
			PlaceID:          "mock-houston-2",
			Name:             "Washington Ave Tavern",
			Category:         pulsetypes.CategoryBar,
			Latitude:         29.7725,
			Longitude:        -95.4021,
			Address:          "5110 Washington Ave, Houston, TX 77007",
			Phone:            "(713) 555-5110",
			Rating:           4.2,
			UserRatingsTotal: 190,
			PriceTier:        pulsetypes.PriceTierMid,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessHigh,
			BusynessScore:    70,
			PeakHours:        []string{"19:00", "20:00", "21:00", "22:00", "23:00"},
			Features:         []string{"Sports TV", "Happy Hour", "Pool Tables", "Patio"},
			ImageURL:         "https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg",
		},
		{
			ID:               "mock-houston-3",
			PlaceID:          "mock-houston-3",
			Name:             "Mirage Hookah Lounge",
			Category:         pulsetypes.CategoryHookah,
			Latitude:         29.7380,
			Longitude:        -95.4100,
			Address:          "3700 Richmond Ave, Houston, TX 77046",
			Phone:            "(713) 555-3700",
			Rating:           3.9,
			UserRatingsTotal: 85,
			PriceTier:        pulsetypes.PriceTierLow,
			IsOpenNow:        true,
			BusynessLevel:    pulsetypes.BusynessModerate,
			BusynessScore:    55,
			PeakHours:        []string{"20:00", "21:00", "22:00", "23:00", "00:00"},
			Features:         []string{"Premium Flavors", "Private Rooms", "Lounge", "BYOB"},
			ImageURL:         "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
		},
	},
}

// MockNightlifeVenues returns a deep copy of the fixed dataset for the
// given city, defaulting to DefaultMockCity when the hint is
// unrecognized or empty.
func MockNightlifeVenues(city string) []pulsetypes.Venue {
	venuesForCity, ok := mockVenuesByCity[city]
	if !ok {
		venuesForCity = mockVenuesByCity[DefaultMockCity]
	}

	out := make([]pulsetypes.Venue, len(venuesForCity))
	for i, v := range venuesForCity {
		v.PeakHours = append([]string(nil), v.PeakHours...)
		v.Features = append([]string(nil), v.Features...)
		out[i] = v
	}
	return out
}

// mockBusynessData synthesizes a busyness record per venue id. Values
// derive from an FNV-1a hash of the id so repeated calls agree.
func mockBusynessData(venueIDs []string) []pulsetypes.BusynessData {
	out := make([]pulsetypes.BusynessData, 0, len(venueIDs))
	for _, id := range venueIDs {
		seed := hashID(id)

		predicted := make([]pulsetypes.HourlyBusyness, 24)
		for hour := 0; hour < 24; hour++ {
			h := hashID(id) + uint32(hour)*2654435761
			var busyness int
			if hour >= nightlifeWindowStart || hour <= nightlifeWindowEnd {
				busyness = 70 + int(h%30) // high overnight
			} else {
				busyness = 20 + int(h%50)
			}
			predicted[hour] = pulsetypes.HourlyBusyness{Hour: hour, Busyness: busyness}
		}

		out = append(out, pulsetypes.BusynessData{
			VenueID:           id,
			CurrentBusyness:   60 + int(seed%40), // 60-99
			PredictedBusyness: predicted,
			IsNightlifePeak:   true,
			PeakNightHours:    []int{22, 23, 0, 1, 2},
		})
	}
	return out
}

func hashID(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}
