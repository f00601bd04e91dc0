package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-data-service/internal/infrastructure/retry"
	"github.com/skyfare/flight-data-service/internal/infrastructure/timeutil"
)

// Per-endpoint call timeouts. Offer search and pricing are the critical
// user-facing calls and get a longer budget than status lookups, which have
// a simulation fallback behind them.
const (
	searchTimeout  = 20 * time.Second
	pricingTimeout = 20 * time.Second
	statusTimeout  = 15 * time.Second
)

// tokenExpiryMargin is subtracted from the token TTL so a token is never
// used within seconds of its server-side expiry.
const tokenExpiryMargin = 30 * time.Second

// maxOffers caps the number of offers requested per search.
const maxOffers = 20

// Config holds the provider connection settings.
type Config struct {
	// BaseURL is the API root (e.g., "https://test.api.amadeus.com")
	BaseURL string

	// ClientID and ClientSecret are the OAuth2 client credentials
	ClientID     string
	ClientSecret string
}

// Client talks to the primary flight-data provider. It implements
// domain.OfferSource and domain.StatusSource.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	rnd        domain.Rand
	clock      timeutil.Clock

	// token cache; concurrent refreshes after expiry are harmless because
	// the token endpoint is idempotent
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// compile-time interface checks
var (
	_ domain.OfferSource  = (*Client)(nil)
	_ domain.StatusSource = (*Client)(nil)
)

// NewClient creates a provider client. A nil rnd falls back to a
// time-seeded source; tests inject a seeded one.
func NewClient(cfg Config, log *logger.Logger, rnd domain.Rand) *Client {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.WithSource(SourceName),
		rnd:        rnd,
		clock:      timeutil.SystemClock{},
	}
}

// SearchOffers queries the flight-offers search endpoint and normalizes the
// result. Offers without an identifiable airline are dropped.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedFlight, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	query := url.Values{}
	query.Set("originLocationCode", criteria.Origin)
	query.Set("destinationLocationCode", criteria.Destination)
	query.Set("departureDate", criteria.DepartureDate)
	query.Set("adults", fmt.Sprintf("%d", criteria.Passengers))
	query.Set("currencyCode", "INR")
	query.Set("max", fmt.Sprintf("%d", maxOffers))
	if criteria.Class != "" {
		query.Set("travelClass", strings.ToUpper(criteria.Class))
	}

	body, err := c.get(ctx, "/v2/shopping/flight-offers", query)
	if err != nil {
		return nil, err
	}

	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decode offers: %w", err))
	}

	flights := normalizeOffers(resp.Data, criteria, c.rnd)
	if dropped := len(resp.Data) - len(flights); dropped > 0 {
		c.log.Debug().
			Int("received", len(resp.Data)).
			Int("dropped", dropped).
			Msg("Dropped offers without identifiable airline")
	}
	return flights, nil
}

// PriceOffer re-prices a single offer through the pricing endpoint.
func (c *Client) PriceOffer(ctx context.Context, offerID string) (*domain.NormalizedFlight, error) {
	ctx, cancel := context.WithTimeout(ctx, pricingTimeout)
	defer cancel()

	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "flight-offers-pricing",
			"flightOffers": []map[string]string{
				{"type": "flight-offer", "id": offerID},
			},
		},
	}
	body, err := c.post(ctx, "/v1/shopping/flight-offers/pricing", payload)
	if err != nil {
		return nil, err
	}

	var resp pricingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decode pricing: %w", err))
	}
	if len(resp.Data.FlightOffers) == 0 {
		return nil, fmt.Errorf("%w: offer %s", domain.ErrNotFound, offerID)
	}

	flight := normalizeOffer(resp.Data.FlightOffers[0], domain.SearchCriteria{Class: "economy"}, 0, c.rnd)
	if flight == nil {
		return nil, fmt.Errorf("%w: offer %s has no identifiable airline", domain.ErrNotFound, offerID)
	}
	return flight, nil
}

// FlightStatus looks up the schedule/status record for a flight. The v2
// on-demand endpoint is tried first, the legacy schedule endpoint as
// fallback; a v2 error degrades to the fallback rather than failing the
// lookup. A (nil, nil) return means neither had a record.
func (c *Client) FlightStatus(ctx context.Context, carrier, flightNumber, date string) (*domain.StatusRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	query := url.Values{}
	query.Set("carrierCode", carrier)
	query.Set("flightNumber", flightNumber)
	query.Set("scheduledDepartureDate", date)

	record, err := c.fetchStatus(ctx, "/v2/schedule/flights", query)
	if err == nil && record != nil {
		return record, nil
	}
	// A v2 failure counts as a miss: the legacy endpoint may still have
	// the record.
	if err != nil {
		c.log.Warn().Err(err).
			Str("carrier", carrier).
			Str("flight_number", flightNumber).
			Msg("On-demand status lookup failed, trying legacy schedule endpoint")
	} else {
		c.log.Debug().
			Str("carrier", carrier).
			Str("flight_number", flightNumber).
			Msg("No on-demand status record, trying legacy schedule endpoint")
	}
	return c.fetchStatus(ctx, "/v1/schedules/flights", query)
}

func (c *Client) fetchStatus(ctx context.Context, path string, query url.Values) (*domain.StatusRecord, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decode status: %w", err))
	}
	return parseStatus(&resp), nil
}

// get performs an authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	return c.do(req)
}

// post performs an authenticated JSON POST and returns the response body.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// do attaches the bearer token, executes the request, and maps transport
// and HTTP-level failures to domain errors.
func (c *Client) do(req *http.Request) ([]byte, error) {
	token, err := c.getToken(req.Context())
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewSourceTimeoutError(SourceName)
		}
		return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
		return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("%w: token rejected", domain.ErrSourceUnavailable))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewSourceError(SourceName,
			fmt.Errorf("%w: %s returned %d", domain.ErrSourceUnavailable, req.URL.Path, resp.StatusCode))
	}
	return body, nil
}

// getToken returns a cached access token, fetching a fresh one when the
// cache is empty or within the expiry margin.
func (c *Client) getToken(ctx context.Context) (string, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return "", domain.ErrMissingCredentials
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.clock.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	// The token endpoint is the one upstream call worth retrying inline:
	// without a token every downstream call fails anyway.
	token, err := retry.DoWithResult(ctx, retry.Upstream.WithRetryIf(retry.SkipPermanent), func() (tokenResponse, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}

	c.token = token.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.token, nil
}

func (c *Client) fetchToken(ctx context.Context) (tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("%w: token fetch: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		// Bad credentials will not improve on retry
		return tokenResponse{}, retry.Permanent(
			fmt.Errorf("%w: token endpoint returned %d", domain.ErrMissingCredentials, resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return tokenResponse{}, fmt.Errorf("%w: token endpoint returned %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return tokenResponse{}, fmt.Errorf("decode token: %w", err)
	}
	if token.AccessToken == "" {
		return tokenResponse{}, retry.Permanent(fmt.Errorf("%w: empty access token", domain.ErrSourceUnavailable))
	}
	return token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
