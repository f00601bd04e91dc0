// Package integration contains end-to-end tests that wire the HTTP layer,
// use cases and adapters together against fake upstream servers.
package integration

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyfare/flight-data-service/internal/adapter/adsbx"
	"github.com/skyfare/flight-data-service/internal/adapter/amadeus"
	flighthttp "github.com/skyfare/flight-data-service/internal/adapter/http"
	"github.com/skyfare/flight-data-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-data-service/internal/usecase"
	"github.com/skyfare/flight-data-service/test/mock"
	"github.com/skyfare/flight-data-service/test/testutil"
)

const tokenJSON = `{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`

// testLogger returns a logger that discards all output.
func testLogger() *logger.Logger {
	return logger.NewWithOutput(logger.DefaultConfig(), io.Discard)
}

// newAmadeusServer serves the token endpoint plus offer, pricing and status
// fixtures the way the upstream provider would.
func newAmadeusServer(t *testing.T) *httptest.Server {
	t.Helper()

	offers := testutil.LoadTestJSON(t, "amadeus_flight_offers.json")
	status := testutil.LoadTestJSON(t, "amadeus_flight_status.json")

	// The pricing endpoint returns the first fixture offer wrapped in the
	// pricing envelope.
	var batch struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(offers, &batch); err != nil {
		t.Fatalf("Failed to decode offers fixture: %v", err)
	}
	pricing := []byte(`{"data":{"flightOffers":[` + string(batch.Data[0]) + `]}}`)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tokenJSON))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(offers)
	})
	mux.HandleFunc("/v1/shopping/flight-offers/pricing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(pricing)
	})
	mux.HandleFunc("/v2/schedule/flights", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(status)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newFailingServer answers every request with 500.
func newFailingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// serverConfig collects the pieces newServer wires together. Zero values
// fall back to working fakes.
type serverConfig struct {
	amadeusURL    string
	noCredentials bool
	adsbURL       string
	external      domain.TrackerProxy
	verifier      domain.LoyaltyVerifier
}

// newServer builds a fully wired echo server the way main does, with fake
// upstream URLs in place of the real ones.
func newServer(t *testing.T, cfg serverConfig) *echo.Echo {
	t.Helper()

	log := testLogger()
	rnd := rand.New(rand.NewSource(7))

	var clientID, clientSecret string
	if !cfg.noCredentials {
		clientID = "integration-client"
		clientSecret = "integration-secret"
	}

	amadeusClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.amadeusURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}, log, rnd)

	adsbClient := adsbx.NewClient(adsbx.Config{
		AreaBaseURL:   cfg.adsbURL,
		DirectBaseURL: cfg.adsbURL,
	}, log)

	searchUC := usecase.NewFlightSearchUseCase(amadeusClient, log)
	trackingUC := usecase.NewTrackingUseCase(usecase.TrackingConfig{
		Status:   amadeusClient,
		Position: adsbClient,
		External: cfg.external,
		Rand:     rnd,
	}, log)

	verifier := cfg.verifier
	if verifier == nil {
		verifier = &mock.LoyaltyVerifier{
			VerifyFunc: func(_ context.Context, pnr, flightNumber, _ string) (*domain.LoyaltyVerification, error) {
				return domain.MockVerification(pnr, flightNumber), nil
			},
		}
	}
	loyaltyUC := usecase.NewLoyaltyUseCase(verifier, log)

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, zerolog.Nop())
	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(searchUC, trackingUC, loyaltyUC))
	return e
}
