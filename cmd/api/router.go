package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/nightpulse/nightpulse-api/pkg/middleware"
)

// SetupRouter configures all routes and returns the HTTP handler.
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerVenueRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	chain := middleware.Recovery(deps.Logger)(
		middleware.Logging(deps.Logger)(
			middleware.RequestID(mux),
		),
	)

	// Enable CORS for the mobile and web clients.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept-Encoding", "Content-Type", "X-Request-ID"},
	})

	return corsHandler.Handler(chain)
}

func registerVenueRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /v1/venues/nightlife", deps.VenuesHandler.GetNightlifeVenues)
	mux.HandleFunc("POST /v1/venues/busyness", deps.VenuesHandler.GetBusynessData)
	mux.HandleFunc("GET /v1/venues/photo", deps.VenuesHandler.GetVenuePhoto)
	mux.HandleFunc("GET /v1/venues/usage", deps.VenuesHandler.GetUsageStats)
	deps.Logger.Info("registered venue routes")
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	// Metrics endpoint (Prometheus)
	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
