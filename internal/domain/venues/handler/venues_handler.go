package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nightpulse/nightpulse-api/internal/domain/venues"
	pulsetypes "github.com/nightpulse/nightpulse-api/internal/types"
)

// Default search radius when the caller omits radius_km.
const defaultRadiusKm = 15

const (
	defaultPhotoWidth = 600
	maxPhotoWidth     = 1600
)

// PhotoFetcher streams provider photo bytes for the proxy route.
type PhotoFetcher interface {
	Photo(ctx context.Context, photoReference string, maxWidth int) (io.ReadCloser, string, error)
}

// VenuesHandler exposes the venue aggregation service over JSON HTTP.
type VenuesHandler struct {
	svc    venues.Service
	photos PhotoFetcher
	logger *slog.Logger
}

func NewVenuesHandler(svc venues.Service, photos PhotoFetcher, logger *slog.Logger) *VenuesHandler {
	return &VenuesHandler{svc: svc, photos: photos, logger: logger}
}

// GetNightlifeVenues handles GET /v1/venues/nightlife.
// Query params: lat, lng (required), radius_km (default 15), city.
func (h *VenuesHandler) GetNightlifeVenues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}

	radiusKm := float64(defaultRadiusKm)
	if raw := q.Get("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "radius_km must be a number")
			return
		}
		radiusKm = parsed
	}

	center := pulsetypes.Coordinates{Latitude: lat, Longitude: lng}
	result, err := h.svc.GetNightlifeVenues(r.Context(), center, radiusKm, q.Get("city"))
	if err != nil {
		if errors.Is(err, pulsetypes.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "venue search failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "venue search failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type busynessRequest struct {
	VenueIDs []string `json:"venue_ids"`
}

// GetBusynessData handles POST /v1/venues/busyness.
func (h *VenuesHandler) GetBusynessData(w http.ResponseWriter, r *http.Request) {
	var req busynessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.VenueIDs) == 0 {
		writeError(w, http.StatusBadRequest, "venue_ids is required")
		return
	}

	data := h.svc.GetBusynessData(r.Context(), req.VenueIDs)
	writeJSON(w, http.StatusOK, map[string]any{"busyness_data": data})
}

// GetVenuePhoto handles GET /v1/venues/photo. It proxies the provider
// photo endpoint so the API key stays server-side; venue image URLs
// point here instead of at the provider.
func (h *VenuesHandler) GetVenuePhoto(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("photo_reference")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "photo_reference query parameter is required")
		return
	}

	width := defaultPhotoWidth
	if raw := r.URL.Query().Get("max_width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "max_width must be a positive integer")
			return
		}
		width = min(parsed, maxPhotoWidth)
	}

	body, contentType, err := h.photos.Photo(r.Context(), ref, width)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "photo proxy failed", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, "photo unavailable")
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = io.Copy(w, body)
}

// GetUsageStats handles GET /v1/venues/usage.
func (h *VenuesHandler) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.UsageStats())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
