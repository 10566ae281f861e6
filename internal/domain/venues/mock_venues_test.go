package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

func TestMockNightlifeVenuesDallas(t *testing.T) {
	got := MockNightlifeVenues("Dallas, TX")
	require.Len(t, got, 3)

	assert.Equal(t, "Deep Ellum Nightclub", got[0].Name)
	assert.Equal(t, 85, got[0].BusynessScore)
	assert.Equal(t, pulsetypes.CategoryClub, got[0].Category)

	assert.Equal(t, "Uptown Sports Bar", got[1].Name)
	assert.Equal(t, 75, got[1].BusynessScore)

	assert.Equal(t, "Oasis Hookah Lounge", got[2].Name)
	assert.Equal(t, 60, got[2].BusynessScore)
}

func TestMockNightlifeVenuesUnrecognizedCity(t *testing.T) {
	got := MockNightlifeVenues("Nowhere, ZZ")
	want := MockNightlifeVenues(DefaultMockCity)
	assert.Equal(t, want, got, "unrecognized city falls back to the default city's set")
}

func TestMockNightlifeVenuesDeterministic(t *testing.T) {
	for _, city := range []string{"Dallas, TX", "Austin, TX", "Houston, TX", ""} {
		first := MockNightlifeVenues(city)
		second := MockNightlifeVenues(city)
		assert.Equal(t, first, second, "mock set for %q must be identical on every call", city)
	}
}

func TestMockNightlifeVenuesReturnsCopies(t *testing.T) {
	first := MockNightlifeVenues("Dallas, TX")
	first[0].Name = "mutated"
	first[0].Features[0] = "mutated"

	second := MockNightlifeVenues("Dallas, TX")
	assert.Equal(t, "Deep Ellum Nightclub", second[0].Name)
	assert.Equal(t, "Dance Floor", second[0].Features[0])
}

func TestMockBusynessData(t *testing.T) {
	ids := []string{"mock-dallas-1", "mock-dallas-2"}

	first := mockBusynessData(ids)
	second := mockBusynessData(ids)
	require.Equal(t, first, second, "derived from the venue id, so repeated calls agree")

	for _, d := range first {
		assert.GreaterOrEqual(t, d.CurrentBusyness, 60)
		assert.Less(t, d.CurrentBusyness, 100)
		assert.Len(t, d.PredictedBusyness, 24)
		assert.True(t, d.IsNightlifePeak)
		assert.Equal(t, []int{22, 23, 0, 1, 2}, d.PeakNightHours)
	}
}
