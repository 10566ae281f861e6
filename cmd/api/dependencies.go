package main

import (
	"log/slog"

	"github.com/nightpulse/nightpulse-api/internal/domain/venues"
	"github.com/nightpulse/nightpulse-api/internal/domain/venues/handler"
	"github.com/nightpulse/nightpulse-api/internal/provider/googleplaces"
	"github.com/nightpulse/nightpulse-api/pkg/apiusage"
	"github.com/nightpulse/nightpulse-api/pkg/config"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Shared provider-budget primitives
	RateLimiter *apiusage.RateLimiter
	Cache       *apiusage.TTLCache

	// Clients
	Places *googleplaces.Client

	// Services
	VenueService venues.Service

	// Handlers
	VenuesHandler *handler.VenuesHandler
}

// InitDependencies initializes all application dependencies.
func InitDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initClients()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps
}

func (d *Dependencies) initClients() {
	d.RateLimiter = apiusage.NewRateLimiter(d.Config.Provider.RequestSpacing)
	d.Cache = apiusage.NewTTLCache(d.Config.Provider.CacheTTL)
	d.Places = googleplaces.New(
		d.Config.Provider.APIKey,
		d.Config.Provider.BaseURL,
		d.Config.Provider.Timeout,
		d.Logger,
	)
	d.Logger.Info("provider clients initialized")
}

func (d *Dependencies) initServices() {
	d.VenueService = venues.NewServiceImpl(d.Places, d.RateLimiter, d.Cache, d.Logger)
	d.Logger.Info("services initialized")
}

func (d *Dependencies) initHandlers() {
	d.VenuesHandler = handler.NewVenuesHandler(d.VenueService, d.Places, d.Logger)
	d.Logger.Info("handlers initialized")
}
