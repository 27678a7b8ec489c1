// Package main is the entry point for the hotel search service.
//
//	@title						Travelink Hotel Search API
//	@version					1.0.0
//	@description				Backend of the Travelink hotel search page: live Booking.com search with a fallback catalog, client-side style filtering and sorting, favorites and theme preferences.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travelink/hotel-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travelink/hotel-search/docs"

	hotelhttp "github.com/travelink/hotel-search/internal/adapter/http"
	"github.com/travelink/hotel-search/internal/adapter/http/middleware"
	"github.com/travelink/hotel-search/internal/adapter/provider/booking"
	"github.com/travelink/hotel-search/internal/adapter/storage/prefstore"
	"github.com/travelink/hotel-search/internal/config"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
	"github.com/travelink/hotel-search/internal/infrastructure/randutil"
	"github.com/travelink/hotel-search/internal/infrastructure/timeutil"
	"github.com/travelink/hotel-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("prefs_backend", cfg.Preferences.Backend).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	if !cfg.HasAPIKey() {
		log.Warn().Msg("BOOKING_API_KEY is not set, searches will use the fallback catalog")
	}

	store, err := prefstore.New(cfg.Preferences.Backend, cfg.Preferences.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open preference store")
	}

	var cache *usecase.ResultCache
	if cfg.Cache.Enabled {
		cache = usecase.NewResultCache(cfg.Cache.TTL, cfg.Cache.Capacity)
		go cache.Start()
		defer cache.Stop()
	}

	provider := setupProvider(cfg, log)
	searcher := usecase.NewHotelSearchUseCase(provider, cache, timeutil.NewRealClock(), log, &usecase.SearchConfig{
		Timeout: cfg.Timeouts.Search,
	})

	prefs := usecase.NewPreferenceService(context.Background(), store, log)
	favorites := usecase.NewFavoritesService(prefs, log)
	session := usecase.NewSession(searcher, favorites, cfg.Search.DefaultDestination, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	mwConfig := middleware.DefaultConfig()
	mwConfig.AllowedOrigins = cfg.CORS.AllowedOrigins
	if err := middleware.SetupWithConfig(e, log, mwConfig); err != nil {
		log.Fatal().Err(err).Msg("Invalid CORS configuration")
	}

	setupRoutes(e, hotelhttp.NewHotelHandler(session, favorites, prefs, log))

	if cfg.Search.LoadOnStart {
		go loadDefault(session, cfg.Timeouts.Search, log)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupProvider builds the Booking.com adapter from config.
func setupProvider(cfg *config.Config, log *logger.Logger) *booking.Adapter {
	bookingCfg := booking.DefaultConfig()
	bookingCfg.BaseURL = cfg.Booking.BaseURL
	bookingCfg.APIKey = cfg.Booking.APIKey
	bookingCfg.APIHost = cfg.Booking.APIHost
	bookingCfg.Timeout = cfg.Timeouts.Upstream
	bookingCfg.Retry = bookingCfg.Retry.WithMaxAttempts(cfg.Booking.RetryAttempts)

	return booking.NewAdapter(bookingCfg, &http.Client{}, randutil.NewSource(), log)
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, h *hotelhttp.HotelHandler) {
	hotelhttp.RegisterRoutes(e, h)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// loadDefault runs the startup search so the first page view has results.
func loadDefault(session *usecase.Session, timeout time.Duration, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := session.LoadDefault(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Startup search failed")
		return
	}
	log.Info().
		Str("destination", result.Query.Destination).
		Str("source", string(result.Source)).
		Int("listings", len(result.Listings)).
		Msg("Startup search done")
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
