package pulsetypes

// Wire types for the Google Places legacy JSON API. Optional fields are
// pointers so the aggregation core can distinguish absent from zero; the
// core must tolerate any of them being nil.

// PlacesSearchResponse is the nearby-search envelope.
type PlacesSearchResponse struct {
	Results      []PlaceSummary `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// PlaceSummary is one nearby-search result row.
type PlaceSummary struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Vicinity         *string       `json:"vicinity,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
	Types            []string      `json:"types,omitempty"`
	BusinessStatus   *string       `json:"business_status,omitempty"`
}

// PlaceDetailsResponse is the place-details envelope.
type PlaceDetailsResponse struct {
	Result       *PlaceDetails `json:"result,omitempty"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// PlaceDetails is the full record for one place.
type PlaceDetails struct {
	PlaceID                  string        `json:"place_id"`
	Name                     string        `json:"name"`
	FormattedAddress         string        `json:"formatted_address,omitempty"`
	FormattedPhoneNumber     string        `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string        `json:"international_phone_number,omitempty"`
	Website                  string        `json:"website,omitempty"`
	Geometry                 *Geometry     `json:"geometry,omitempty"`
	Rating                   *float64      `json:"rating,omitempty"`
	UserRatingsTotal         *int          `json:"user_ratings_total,omitempty"`
	PriceLevel               *int          `json:"price_level,omitempty"`
	OpeningHours             *OpeningHours `json:"opening_hours,omitempty"`
	Photos                   []Photo       `json:"photos,omitempty"`
	Types                    []string      `json:"types,omitempty"`
	Reviews                  []PlaceReview `json:"reviews,omitempty"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

type PlaceReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}
