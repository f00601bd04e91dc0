package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-data-service/internal/domain"
)

func TestSearchFlights_EndToEnd(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/flights/search?origin=DEL&destination=BOM&date=2025-12-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// The unknown-carrier offer is dropped; the rest come back cheapest
	// first.
	require.Len(t, resp.Flights, 2)
	assert.Equal(t, "IndiGo", resp.Flights[0].Airline)
	assert.Equal(t, 4450, resp.Flights[0].Price)
	assert.Equal(t, "Air India", resp.Flights[1].Airline)
	assert.Equal(t, 5000, resp.Flights[1].Price)

	first := resp.Flights[1]
	assert.Equal(t, "DEL", first.From)
	assert.Equal(t, "BOM", first.To)
	assert.Equal(t, "101", first.Number)
	assert.Equal(t, 130, first.DurationMins)
	assert.Equal(t, 0, first.Stops)
	assert.Equal(t, "3", first.Terminal)
	assert.Equal(t, "INR", first.Currency)
	assert.InDelta(t, 1000.0, first.Fees, 0.001)

	// One real quote plus three synthetic competitors, each marked up
	// within the demo band.
	require.Len(t, first.Comparisons, 4)
	assert.Equal(t, "Air India", first.Comparisons[0].Provider)
	assert.Equal(t, 5000, first.Comparisons[0].Price)
	for _, comp := range first.Comparisons[1:] {
		assert.GreaterOrEqual(t, comp.Price, 5700)
		assert.Less(t, comp.Price, 6500)
	}

	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, 2, resp.Metadata.OffersReceived)
	assert.Equal(t, 0, resp.Metadata.OffersDropped)
	assert.Empty(t, resp.ErrorMessage)
}

func TestSearchFlights_FiltersApplied(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/flights/search?origin=DEL&destination=BOM&date=2025-12-15&maxPrice=4500", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "IndiGo", resp.Flights[0].Airline)
	assert.Equal(t, 2, resp.Metadata.OffersReceived)
	assert.Equal(t, 1, resp.Metadata.OffersDropped)
}

func TestSearchFlights_DegradesWithoutCredentials(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL, noCredentials: true})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/flights/search?origin=DEL&destination=BOM&date=2025-12-15", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Upstream failures degrade to an empty result, not an error status.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Flights)
	assert.Empty(t, resp.Flights)
	assert.NotEmpty(t, resp.ErrorMessage)
}

func TestSearchFlights_InvalidCriteria(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/flights/search?origin=DEL&destination=BOM&passengers=12", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFlight_EndToEnd(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var flight domain.NormalizedFlight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flight))
	assert.Equal(t, "1", flight.ID)
	assert.Equal(t, "Air India", flight.Airline)
	assert.Equal(t, 5000, flight.Price)
}

func TestHealth(t *testing.T) {
	upstream := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: upstream.URL})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
