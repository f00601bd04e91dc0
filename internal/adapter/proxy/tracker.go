// Package proxy implements clients for externally hosted helper services:
// a full flight tracker that bypasses the normal aggregation pipeline and a
// loyalty verification service.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
)

// TrackerSourceName identifies the external tracker in wrapped errors.
const TrackerSourceName = "external"

const trackerTimeout = 15 * time.Second

// Tracker forwards tracking queries to an external tracker service.
// It implements domain.TrackerProxy.
type Tracker struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

var _ domain.TrackerProxy = (*Tracker)(nil)

// NewTracker creates an external tracker client.
func NewTracker(baseURL string, log *logger.Logger) *Tracker {
	return &Tracker{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log.WithSource(TrackerSourceName),
	}
}

// Configured reports whether a tracker endpoint is set.
func (t *Tracker) Configured() bool {
	return t.baseURL != ""
}

// Track returns the external tracker's result for the query. The proxy is a
// complete bypass: on success the result is returned as-is, tagged with the
// external source; on failure the caller falls back to the normal pipeline.
func (t *Tracker) Track(ctx context.Context, query string) (*domain.TrackingResult, error) {
	if !t.Configured() {
		return nil, domain.NewSourceError(TrackerSourceName, domain.ErrSourceUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, trackerTimeout)
	defer cancel()

	endpoint := t.baseURL + "/track?flight=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewSourceError(TrackerSourceName, err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewSourceTimeoutError(TrackerSourceName)
		}
		return nil, domain.NewSourceError(TrackerSourceName, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewSourceError(TrackerSourceName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewSourceError(TrackerSourceName,
			fmt.Errorf("%w: tracker returned %d", domain.ErrSourceUnavailable, resp.StatusCode))
	}

	var result domain.TrackingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.NewSourceError(TrackerSourceName, fmt.Errorf("decode tracker response: %w", err))
	}

	if result.Flight == "" {
		result.Flight = query
	}
	result.Source = domain.SourceExternal
	return &result, nil
}
