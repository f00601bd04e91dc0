package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
)

// LoyaltySourceName identifies the loyalty verifier in wrapped errors.
const LoyaltySourceName = "loyalty"

const loyaltyTimeout = 10 * time.Second

// externalProvider marks verifications that came back from the configured
// verifier endpoint, as opposed to the mock fallback.
const externalProvider = "external"

// Loyalty verifies past flights against an external verification service,
// falling back to a deterministic mock when no endpoint is configured.
// It implements domain.LoyaltyVerifier.
type Loyalty struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

var _ domain.LoyaltyVerifier = (*Loyalty)(nil)

// NewLoyalty creates a loyalty verifier client. An empty baseURL enables
// the mock fallback.
func NewLoyalty(baseURL string, log *logger.Logger) *Loyalty {
	return &Loyalty{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log.WithSource(LoyaltySourceName),
	}
}

// Verify returns the fare amount and final status for a PNR. When no
// external verifier is configured, or the external call fails, a
// deterministic mock verification is returned so the loyalty flow stays
// usable in demo environments.
func (l *Loyalty) Verify(ctx context.Context, pnr, flightNumber, date string) (*domain.LoyaltyVerification, error) {
	if l.baseURL == "" {
		return domain.MockVerification(pnr, flightNumber), nil
	}

	result, err := l.verifyExternal(ctx, pnr, flightNumber, date)
	if err != nil {
		l.log.Warn().Err(err).Str("pnr", pnr).Msg("External loyalty verification failed, using mock")
		return domain.MockVerification(pnr, flightNumber), nil
	}
	return result, nil
}

func (l *Loyalty) verifyExternal(ctx context.Context, pnr, flightNumber, date string) (*domain.LoyaltyVerification, error) {
	ctx, cancel := context.WithTimeout(ctx, loyaltyTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"pnr":          pnr,
		"flightNumber": flightNumber,
		"date":         date,
	})
	if err != nil {
		return nil, domain.NewSourceError(LoyaltySourceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/verify", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewSourceError(LoyaltySourceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewSourceTimeoutError(LoyaltySourceName)
		}
		return nil, domain.NewSourceError(LoyaltySourceName, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewSourceError(LoyaltySourceName,
			fmt.Errorf("%w: verifier returned %d", domain.ErrSourceUnavailable, resp.StatusCode))
	}

	var result domain.LoyaltyVerification
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, domain.NewSourceError(LoyaltySourceName, fmt.Errorf("decode verification: %w", err))
	}
	result.Provider = externalProvider
	return &result, nil
}
