// Package adsbx implements the live aircraft-position source adapter. It
// queries an ADS-B exchange style API by area or by callsign and tolerates
// the non-JSON bodies these community endpoints are known to return.
package adsbx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/jsonx"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
)

// SourceName identifies this adapter in wrapped errors and logs.
const SourceName = "adsb"

const (
	areaTimeout   = 15 * time.Second
	directTimeout = 10 * time.Second
)

// Config holds the position-source connection settings. Area and direct
// lookups may live on different hosts.
type Config struct {
	// AreaBaseURL serves /v2/lat/{lat}/lon/{lon}/dist/{radius}/
	AreaBaseURL string

	// DirectBaseURL serves /api/aircraft/call/{callsign}/
	DirectBaseURL string

	// APIKey is sent as the api-auth header when set
	APIKey string
}

// Client implements domain.PositionSource.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
}

var _ domain.PositionSource = (*Client)(nil)

// NewClient creates a position-source client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.WithSource(SourceName),
	}
}

// AircraftInArea returns aircraft within radius units of the center.
// A body that yields no parsable JSON is a miss (empty list), not an error.
func (c *Client) AircraftInArea(ctx context.Context, center domain.Coordinates, radius int) ([]domain.Aircraft, error) {
	ctx, cancel := context.WithTimeout(ctx, areaTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v2/lat/%f/lon/%f/dist/%d/", c.cfg.AreaBaseURL, center.Lat, center.Lon, radius)
	resp, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return []domain.Aircraft{}, nil
	}

	aircraft := make([]domain.Aircraft, 0, len(resp.AC))
	for _, raw := range resp.AC {
		aircraft = append(aircraft, raw.toDomain())
	}
	return aircraft, nil
}

// AircraftByCallsign returns the aircraft currently broadcasting the given
// callsign, or (nil, nil) when none is.
func (c *Client) AircraftByCallsign(ctx context.Context, callsign string) (*domain.Aircraft, error) {
	ctx, cancel := context.WithTimeout(ctx, directTimeout)
	defer cancel()

	cs := strings.ToUpper(strings.TrimSpace(callsign))
	if cs == "" {
		return nil, nil
	}

	resp, err := c.fetch(ctx, fmt.Sprintf("%s/api/aircraft/call/%s/", c.cfg.DirectBaseURL, cs))
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.AC) == 0 {
		return nil, nil
	}
	ac := resp.AC[0].toDomain()
	return &ac, nil
}

// fetch executes a GET and decodes the body. A nil response with nil error
// means the body carried no parsable JSON; callers treat it as a miss.
func (c *Client) fetch(ctx context.Context, url string) (*acResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("api-auth", c.cfg.APIKey)
	}
	req.Header.Set("Accept", "application/json")

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
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewSourceError(SourceName,
			fmt.Errorf("%w: position source returned %d", domain.ErrSourceUnavailable, resp.StatusCode))
	}

	var decoded acResponse
	if err := jsonx.Decode(body, &decoded); err != nil {
		// HTML error pages and rate-limit notices land here
		c.log.Warn().Str("url", url).Msg("Position source returned no parsable JSON, treating as miss")
		return nil, nil
	}
	return &decoded, nil
}
