package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-data-service/internal/adapter/http/response"
	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	search   usecase.FlightSearchUseCase
	tracking usecase.TrackingUseCase
	loyalty  usecase.LoyaltyUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use cases.
func NewFlightHandler(search usecase.FlightSearchUseCase, tracking usecase.TrackingUseCase, loyalty usecase.LoyaltyUseCase) *FlightHandler {
	return &FlightHandler{
		search:   search,
		tracking: tracking,
		loyalty:  loyalty,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for flights on a route. Upstream failures degrade to an empty list with an error message rather than a failure status.
// @Tags flights
// @Produce json
// @Param origin query string false "Origin IATA code"
// @Param destination query string false "Destination IATA code"
// @Param date query string false "Departure date (YYYY-MM-DD)"
// @Param passengers query int false "Passenger count (1-9)"
// @Param class query string false "Travel class (economy, business, first)"
// @Param maxPrice query int false "Maximum price in INR"
// @Param maxStops query int false "Maximum stop count"
// @Param airlines query string false "Comma-separated carrier codes"
// @Param sortBy query string false "Sort order (price, duration, departure)"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.search.Search(c.Request().Context(), ToDomainCriteria(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// TrendingFlights handles GET /api/v1/flights/trending
//
// @Summary Trending flights
// @Description Returns the cheapest flights across popular routes.
// @Tags flights
// @Produce json
// @Success 200 {object} domain.SearchResponse
// @Router /api/v1/flights/trending [get]
func (h *FlightHandler) TrendingFlights(c echo.Context) error {
	result, err := h.search.Search(c.Request().Context(), domain.SearchCriteria{}, usecase.DefaultSearchOptions())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Get a single flight offer
// @Description Re-prices a flight offer by its upstream id.
// @Tags flights
// @Produce json
// @Param id path string true "Offer id"
// @Success 200 {object} domain.NormalizedFlight
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	flight, err := h.search.GetFlight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, flight)
}

// TrackFlight handles POST /api/v1/flights/track
//
// @Summary Track a flight
// @Description Aggregates live tracking data across the configured sources, falling back to a simulated position.
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body TrackFlightRequest true "Flight to track"
// @Success 200 {object} domain.TrackingResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/track [post]
func (h *FlightHandler) TrackFlight(c echo.Context) error {
	var req TrackFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.tracking.Track(c.Request().Context(), ToTrackRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// VerifyLoyalty handles POST /api/v1/loyalty/verify
//
// @Summary Verify a flight for loyalty points
// @Description Verifies a flown flight by PNR and returns the points earned.
// @Tags loyalty
// @Accept json
// @Produce json
// @Param request body VerifyLoyaltyRequest true "Flight to verify"
// @Success 200 {object} usecase.LoyaltyResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/loyalty/verify [post]
func (h *FlightHandler) VerifyLoyalty(c echo.Context) error {
	var req VerifyLoyaltyRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	details := map[string]string{}
	if strings.TrimSpace(req.PNR) == "" {
		details["pnr"] = "is required"
	}
	if strings.TrimSpace(req.FlightNumber) == "" {
		details["flightNumber"] = "is required"
	}
	if len(details) > 0 {
		return response.ValidationError(c, details)
	}

	result, err := h.loyalty.VerifyFlight(c.Request().Context(), req.PNR, req.FlightNumber, req.Date)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if domain.IsNotFound(err) {
		return response.NotFound(c)
	}
	if domain.IsMissingCredentials(err) {
		return response.ServiceUnavailable(c)
	}
	if errors.Is(err, context.DeadlineExceeded) || domain.IsSourceTimeout(err) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	if errors.Is(err, domain.ErrSourceUnavailable) {
		return response.ServiceUnavailable(c)
	}
	return response.InternalServerError(c)
}
