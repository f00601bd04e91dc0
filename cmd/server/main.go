// Package main is the entry point for the flight data service.
//
//	@title						Flight Data API
//	@version					1.0.0
//	@description				A flight data service that normalizes airline offers from upstream providers and aggregates live tracking data across multiple position sources.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyfare/flight-data-service/issues
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
	_ "github.com/skyfare/flight-data-service/docs"

	"github.com/skyfare/flight-data-service/internal/adapter/adsbx"
	"github.com/skyfare/flight-data-service/internal/adapter/amadeus"
	flighthttp "github.com/skyfare/flight-data-service/internal/adapter/http"
	"github.com/skyfare/flight-data-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-data-service/internal/adapter/proxy"
	"github.com/skyfare/flight-data-service/internal/config"
	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-data-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the adapters, use cases and HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	amadeusClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
	}, log, nil)

	adsbClient := adsbx.NewClient(adsbx.Config{
		AreaBaseURL:   cfg.ADSB.AreaBaseURL,
		DirectBaseURL: cfg.ADSB.DirectBaseURL,
		APIKey:        cfg.ADSB.APIKey,
	}, log)

	// The external tracker proxy is opt-in.
	var external domain.TrackerProxy
	if cfg.Tracker.BaseURL != "" {
		external = proxy.NewTracker(cfg.Tracker.BaseURL, log)
	}

	searchUC := usecase.NewFlightSearchUseCase(amadeusClient, log,
		usecase.WithSearchTimeout(cfg.Timeouts.Search))

	trackingUC := usecase.NewTrackingUseCase(usecase.TrackingConfig{
		Status:   amadeusClient,
		Position: adsbClient,
		External: external,
		Radius:   cfg.ADSB.AreaRadius,
		Timeout:  cfg.Timeouts.Tracking,
	}, log)

	loyaltyUC := usecase.NewLoyaltyUseCase(proxy.NewLoyalty(cfg.Loyalty.BaseURL, log), log)

	handler := flighthttp.NewFlightHandler(searchUC, trackingUC, loyaltyUC)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
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
