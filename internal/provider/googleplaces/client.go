// Package googleplaces implements the places-provider collaborator
// against the Google Places legacy JSON API.
package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
	"github.com/nightpulse/nightpulse-api/pkg/observability"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// statusZeroResults is a successful response with an empty result set,
// not an error.
const statusZeroResults = "ZERO_RESULTS"

const statusNotFound = "NOT_FOUND"

// Client talks to the Google Places API. Any transport failure, non-JSON
// payload or non-OK API status surfaces as an error; callers treat that
// as "no data for this sub-query".
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if apiKey == "" {
		logger.Warn("places API key not configured; every provider call will fail and searches will serve mock data")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NearbySearch runs one nearby-search query for a single venue type.
func (c *Client) NearbySearch(ctx context.Context, loc pulsetypes.Coordinates, radiusMeters int, venueType string) (*pulsetypes.PlacesSearchResponse, error) {
	ctx, span := otel.Tracer("googleplaces").Start(ctx, "NearbySearch")
	defer span.End()
	span.SetAttributes(attribute.String("venue_type", venueType), attribute.Int("radius_m", radiusMeters))

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", venueType)

	var resp pulsetypes.PlacesSearchResponse
	if err := c.getJSON(ctx, "/nearbysearch/json", params, &resp); err != nil {
		observability.ProviderRequests.WithLabelValues("nearbysearch", "error").Inc()
		return nil, err
	}
	if resp.Status != "OK" && resp.Status != statusZeroResults {
		observability.ProviderRequests.WithLabelValues("nearbysearch", "error").Inc()
		return nil, fmt.Errorf("nearby search returned status %s: %s", resp.Status, resp.ErrorMessage)
	}

	observability.ProviderRequests.WithLabelValues("nearbysearch", "ok").Inc()
	return &resp, nil
}

// PlaceDetails fetches the full record for one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*pulsetypes.PlaceDetails, error) {
	ctx, span := otel.Tracer("googleplaces").Start(ctx, "PlaceDetails")
	defer span.End()
	span.SetAttributes(attribute.String("place_id", placeID))

	params := url.Values{}
	params.Set("place_id", placeID)

	var resp pulsetypes.PlaceDetailsResponse
	if err := c.getJSON(ctx, "/details/json", params, &resp); err != nil {
		observability.ProviderRequests.WithLabelValues("details", "error").Inc()
		return nil, err
	}
	if resp.Status != "OK" || resp.Result == nil {
		observability.ProviderRequests.WithLabelValues("details", "error").Inc()
		if resp.Status == statusNotFound {
			return nil, fmt.Errorf("place %s: %w", placeID, pulsetypes.ErrNotFound)
		}
		return nil, fmt.Errorf("place details returned status %s: %s", resp.Status, resp.ErrorMessage)
	}

	observability.ProviderRequests.WithLabelValues("details", "ok").Inc()
	return resp.Result, nil
}

// Photo streams the image bytes for a photo reference. The provider key
// is attached here and never leaves the server; clients reach photos
// only through the proxy route. The caller owns the returned body.
func (c *Client) Photo(ctx context.Context, photoReference string, maxWidth int) (io.ReadCloser, string, error) {
	ctx, span := otel.Tracer("googleplaces").Start(ctx, "Photo")
	defer span.End()
	span.SetAttributes(attribute.Int("max_width", maxWidth))

	if c.apiKey == "" {
		return nil, "", fmt.Errorf("places API key not configured: %w", pulsetypes.ErrProviderUnavailable)
	}

	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("photo_reference", photoReference)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/photo?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ProviderRequests.WithLabelValues("photo", "error").Inc()
		return nil, "", fmt.Errorf("provider request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		observability.ProviderRequests.WithLabelValues("photo", "error").Inc()
		return nil, "", fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}

	observability.ProviderRequests.WithLabelValues("photo", "ok").Inc()
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("places API key not configured: %w", pulsetypes.ErrProviderUnavailable)
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	// An HTML body here usually means a key or billing misconfiguration
	// upstream, so refuse to parse anything that is not JSON.
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		c.logger.ErrorContext(ctx, "provider returned non-JSON payload",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
			slog.String("content_type", mediaType),
			slog.String("body_snippet", string(snippet)),
		)
		return fmt.Errorf("provider returned %s instead of JSON (HTTP %d)", mediaType, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
