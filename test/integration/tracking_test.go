package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/test/mock"
	"github.com/skyfare/flight-data-service/test/testutil"
)

// newADSBServer serves the area fixture for area queries and an empty list
// for direct callsign queries.
func newADSBServer(t *testing.T) *httptest.Server {
	t.Helper()

	area := testutil.LoadTestJSON(t, "adsb_area_aircraft.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "/v2/lat/") {
			w.Write(area)
			return
		}
		w.Write([]byte(`{"ac":[]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTrackFlight_LivePositionWithStatusOverlay(t *testing.T) {
	amadeusSrv := newAmadeusServer(t)
	adsbSrv := newADSBServer(t)
	e := newServer(t, serverConfig{amadeusURL: amadeusSrv.URL, adsbURL: adsbSrv.URL})

	body := `{"carrier":"AI","flightNumber":"101","date":"2025-12-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/track", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result domain.TrackingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	// Position fields come from the live match, status and schedule from
	// the authoritative record.
	assert.Equal(t, "AI101", result.Flight)
	assert.Equal(t, domain.SourceADSB, result.Source)
	assert.Equal(t, "AI101", result.Callsign)
	assert.Equal(t, "800abc", result.ICAO)
	assert.Equal(t, "VT-EXU", result.Registration)
	assert.InDelta(t, 26.4512, result.Lat, 0.0001)
	assert.InDelta(t, 76.8821, result.Lon, 0.0001)
	assert.InDelta(t, 34000, result.Alt, 0.1)

	assert.Equal(t, "scheduled", result.Status)
	require.NotNil(t, result.Departure)
	assert.Equal(t, "DEL", result.Departure.IATACode)
	assert.Equal(t, "3", result.Departure.Terminal)
	require.NotNil(t, result.Arrival)
	assert.Equal(t, "BOM", result.Arrival.IATACode)

	assert.True(t, result.Attempted.Amadeus)
	assert.True(t, result.Attempted.ADSBArea)
	assert.False(t, result.Attempted.ADSBDirect, "area hit should skip the direct lookup")
	assert.False(t, result.Attempted.External)
}

func TestTrackFlight_SimulatedFallback(t *testing.T) {
	failing := newFailingServer(t)
	e := newServer(t, serverConfig{amadeusURL: failing.URL, adsbURL: failing.URL})

	body := `{"flight":"6E 204"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/track", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result domain.TrackingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "6E204", result.Flight)
	assert.Equal(t, domain.SourceSimulated, result.Source)
	assert.Equal(t, "on-time", result.Status)
	assert.GreaterOrEqual(t, result.Lat, 20.0)
	assert.Less(t, result.Lat, 30.0)
	assert.GreaterOrEqual(t, result.Lon, 75.0)
	assert.Less(t, result.Lon, 85.0)

	assert.True(t, result.Attempted.Amadeus)
	assert.True(t, result.Attempted.ADSBArea)
	assert.True(t, result.Attempted.ADSBDirect)
}

func TestTrackFlight_ExternalProxyBypass(t *testing.T) {
	amadeusSrv := newAmadeusServer(t)
	adsbSrv := newADSBServer(t)

	external := &mock.TrackerProxy{
		TrackFunc: func(_ context.Context, query string) (*domain.TrackingResult, error) {
			return &domain.TrackingResult{
				Flight: query,
				Lat:    22.5,
				Lon:    79.1,
				Status: "en-route",
				Source: domain.SourceExternal,
			}, nil
		},
	}
	e := newServer(t, serverConfig{
		amadeusURL: amadeusSrv.URL,
		adsbURL:    adsbSrv.URL,
		external:   external,
	})

	body := `{"carrier":"AI","flightNumber":"101","sources":{"external":true}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/track", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result domain.TrackingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	// The external proxy bypasses the whole pipeline.
	assert.Equal(t, domain.SourceExternal, result.Source)
	assert.InDelta(t, 22.5, result.Lat, 0.0001)
	assert.True(t, result.Attempted.External)
	assert.False(t, result.Attempted.Amadeus)
	assert.False(t, result.Attempted.ADSBArea)
}

func TestTrackFlight_MissingIdentifier(t *testing.T) {
	amadeusSrv := newAmadeusServer(t)
	e := newServer(t, serverConfig{amadeusURL: amadeusSrv.URL})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/track", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyLoyalty_EndToEnd(t *testing.T) {
	amadeusSrv := newAmadeusServer(t)
	verifier := &mock.LoyaltyVerifier{
		VerifyFunc: func(_ context.Context, pnr, flightNumber, _ string) (*domain.LoyaltyVerification, error) {
			return &domain.LoyaltyVerification{
				Amount:   10000,
				Status:   "delayed",
				Provider: "mock",
			}, nil
		},
	}
	e := newServer(t, serverConfig{amadeusURL: amadeusSrv.URL, verifier: verifier})

	body := `{"pnr":"ABC123","flightNumber":"AI101","date":"2025-12-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loyalty/verify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Verification domain.LoyaltyVerification `json:"verification"`
		Points       int                        `json:"points"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 10000, result.Verification.Amount)
	assert.Equal(t, "delayed", result.Verification.Status)
	assert.Equal(t, 550, result.Points)
}
