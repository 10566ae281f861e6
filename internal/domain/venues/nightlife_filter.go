package venues

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

// Hours at or after nightlifeWindowStart or at or before
// nightlifeWindowEnd count as nightlife time.
const (
	nightlifeWindowStart = 22
	nightlifeWindowEnd   = 8

	// Minimum live busyness to keep a venue during the nightlife window.
	busyThreshold = 50
)

// Aho-Corasick matcher over the nightlife keyword set. Substring
// matching is deliberate: "Nightclub" must match "club".
var (
	nightlifeKeywords = []string{
		"bar", "club", "nightclub", "lounge", "pub", "tavern", "brewery",
		"cocktail", "hookah", "shisha", "dance", "disco", "nightlife",
	}

	nightlifeMatcherBuilder = a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
	})
	nightlifeMatcher = nightlifeMatcherBuilder.Build(nightlifeKeywords)
)

// IsNightlifeVenue reports whether the venue's name or address contains
// a nightlife-indicating term.
func IsNightlifeVenue(venue pulsetypes.Venue) bool {
	text := strings.ToLower(venue.Name + " " + venue.Address)
	iter := nightlifeMatcher.Iter(text)
	return iter.Next() != nil
}

// FilterBusyDuringNightlifeHours selects venues worth surfacing for the
// given hour of day. Inside the nightlife window it keeps venues whose
// live busyness clears the threshold; during the day it keeps venues
// with a nightlife-hours peak. Venues without a busyness record are
// kept (fail-open).
func FilterBusyDuringNightlifeHours(venuesIn []pulsetypes.Venue, data []pulsetypes.BusynessData, currentHour int) []pulsetypes.Venue {
	byVenue := make(map[string]pulsetypes.BusynessData, len(data))
	for _, d := range data {
		byVenue[d.VenueID] = d
	}

	isNightlifeTime := currentHour >= nightlifeWindowStart || currentHour <= nightlifeWindowEnd

	out := make([]pulsetypes.Venue, 0, len(venuesIn))
	for _, v := range venuesIn {
		d, ok := byVenue[v.ID]
		if !ok {
			out = append(out, v)
			continue
		}
		if isNightlifeTime {
			if d.CurrentBusyness >= busyThreshold {
				out = append(out, v)
			}
			continue
		}
		if d.IsNightlifePeak {
			out = append(out, v)
		}
	}
	return out
}
