package usecase

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
)

// DefaultAreaRadius is the area-query radius around the derived center, in
// the position source's distance units.
const DefaultAreaRadius = 100

// defaultTrackingTimeout bounds one whole tracking request across all
// attempted sources.
const defaultTrackingTimeout = 45 * time.Second

// TrackRequest describes one tracking request.
type TrackRequest struct {
	// Carrier is the IATA carrier code (e.g., "AI")
	Carrier string

	// FlightNumber is the numeric flight number (e.g., "101")
	FlightNumber string

	// Date is the scheduled departure date (YYYY-MM-DD); defaults to today
	Date string

	// Toggles enables or disables individual sources; nil means defaults
	Toggles *domain.SourceToggles
}

// FlightID returns the combined flight identifier used for position lookups
// and simulation keying.
func (r *TrackRequest) FlightID() string {
	return strings.ToUpper(strings.TrimSpace(r.Carrier) + strings.TrimSpace(r.FlightNumber))
}

// TrackingUseCase aggregates live tracking data for a flight.
type TrackingUseCase interface {
	// Track always returns a result when the request is valid: the
	// simulation is the guaranteed fallback when every source misses.
	Track(ctx context.Context, req TrackRequest) (*domain.TrackingResult, error)
}

type trackingUseCase struct {
	status   domain.StatusSource
	position domain.PositionSource
	external domain.TrackerProxy
	sims     *SimulationStore
	rnd      domain.Rand
	radius   int
	timeout  time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// TrackingConfig wires the tracking use case. External and Rand are
// optional; Radius defaults to DefaultAreaRadius and Timeout to
// defaultTrackingTimeout.
type TrackingConfig struct {
	Status   domain.StatusSource
	Position domain.PositionSource
	External domain.TrackerProxy
	Sims     *SimulationStore
	Rand     domain.Rand
	Radius   int
	Timeout  time.Duration
}

// NewTrackingUseCase creates a TrackingUseCase.
func NewTrackingUseCase(cfg TrackingConfig, log *logger.Logger) TrackingUseCase {
	if cfg.Sims == nil {
		cfg.Sims = NewSimulationStore()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Radius <= 0 {
		cfg.Radius = DefaultAreaRadius
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTrackingTimeout
	}
	return &trackingUseCase{
		status:   cfg.Status,
		position: cfg.Position,
		external: cfg.External,
		sims:     cfg.Sims,
		rnd:      cfg.Rand,
		radius:   cfg.Radius,
		timeout:  cfg.Timeout,
		now:      time.Now,
		log:      log,
	}
}

// Track implements TrackingUseCase.Track. The attempt sequence is strictly
// sequential: external bypass, then authoritative status, then area lookup,
// then direct lookup, then simulation. Live position data wins for position
// fields; the status source wins for status and schedule fields. The two
// families are merged, not chosen exclusively.
func (uc *trackingUseCase) Track(ctx context.Context, req TrackRequest) (*domain.TrackingResult, error) {
	flightID := req.FlightID()
	if flightID == "" {
		return nil, domain.WrapInvalidRequest("flight identifier is required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	toggles := domain.DefaultSourceToggles()
	if req.Toggles != nil {
		toggles = *req.Toggles
	}

	attempted := domain.Attempted{}

	if toggles.UseExternal && uc.external != nil {
		attempted.External = true
		if result, err := uc.external.Track(ctx, flightID); err == nil {
			result.Attempted = attempted
			return result, nil
		} else {
			uc.log.Warn().Err(err).Str("flight", flightID).
				Msg("External tracker failed, falling back to normal pipeline")
		}
	}

	status := uc.lookupStatus(ctx, req, toggles, &attempted)
	match := uc.lookupPosition(ctx, flightID, status, toggles, &attempted)

	var result *domain.TrackingResult
	if match != nil {
		result = &domain.TrackingResult{
			Flight:       flightID,
			Lat:          match.Lat,
			Lon:          match.Lon,
			Alt:          match.Alt,
			Speed:        match.Speed,
			Callsign:     match.Callsign,
			ICAO:         match.Hex,
			Operator:     match.Operator,
			Registration: match.Registration,
			Source:       domain.SourceADSB,
		}
	} else {
		pos := uc.sims.Next(flightID, uc.rnd)
		source := domain.SourceSimulated
		if status != nil {
			source = domain.SourceAmadeus
		}
		result = &domain.TrackingResult{
			Flight: flightID,
			Lat:    pos.Lat,
			Lon:    pos.Lon,
			Alt:    pos.Alt,
			Speed:  pos.Speed,
			Source: source,
		}
	}

	// Without a schedule record the flight has no reported status, so
	// live and simulated results fall back to on-time alike.
	result.Status = "on-time"
	if status != nil {
		if status.Status != "" {
			result.Status = status.Status
		}
		result.Departure = status.Departure
		result.Arrival = status.Arrival
	}

	result.Attempted = attempted
	return result, nil
}

// lookupStatus queries the authoritative status source. A failure is a miss
// for the source, never a request failure.
func (uc *trackingUseCase) lookupStatus(ctx context.Context, req TrackRequest, toggles domain.SourceToggles, attempted *domain.Attempted) *domain.StatusRecord {
	if !toggles.UseAmadeus || uc.status == nil {
		return nil
	}
	attempted.Amadeus = true

	date := req.Date
	if date == "" {
		date = uc.now().Format("2006-01-02")
	}

	record, err := uc.status.FlightStatus(ctx, req.Carrier, req.FlightNumber, date)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("carrier", req.Carrier).
			Str("flight_number", req.FlightNumber).
			Msg("Status lookup failed, treating as miss")
		return nil
	}
	return record
}

// lookupPosition runs the area and direct lookups in order, returning the
// first live match.
func (uc *trackingUseCase) lookupPosition(ctx context.Context, flightID string, status *domain.StatusRecord, toggles domain.SourceToggles, attempted *domain.Attempted) *domain.Aircraft {
	if uc.position == nil {
		return nil
	}

	if toggles.UseADSBArea {
		attempted.ADSBArea = true
		list, err := uc.position.AircraftInArea(ctx, areaCenter(status), uc.radius)
		if err != nil {
			uc.log.Warn().Err(err).Str("flight", flightID).Msg("Area lookup failed, treating as miss")
		} else if match := domain.FindAircraft(list, flightID); match != nil {
			return match
		}
	}

	if toggles.UseADSBDirect {
		attempted.ADSBDirect = true
		match, err := uc.position.AircraftByCallsign(ctx, flightID)
		if err != nil {
			uc.log.Warn().Err(err).Str("flight", flightID).Msg("Direct lookup failed, treating as miss")
			return nil
		}
		return match
	}
	return nil
}

// areaCenter derives the center for the area query: the departure airport's
// coordinates, else the arrival airport's, else a fixed default. The center
// only scopes the query; it never feeds the reported position.
func areaCenter(status *domain.StatusRecord) domain.Coordinates {
	if status != nil {
		if status.Departure != nil {
			if c, ok := domain.AirportCoordinates(status.Departure.IATACode); ok {
				return c
			}
		}
		if status.Arrival != nil {
			if c, ok := domain.AirportCoordinates(status.Arrival.IATACode); ok {
				return c
			}
		}
	}
	return domain.DefaultAreaCenter
}
