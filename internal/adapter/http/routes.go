// Package http provides the HTTP handler layer for the flight data API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight data API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	// Health check endpoint (no version prefix, for load balancers)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.GET("/search", h.SearchFlights)
	flights.GET("/trending", h.TrendingFlights)
	flights.POST("/track", h.TrackFlight)
	flights.GET("/:id", h.GetFlight)

	loyalty := api.Group("/loyalty")
	loyalty.POST("/verify", h.VerifyLoyalty)
}
