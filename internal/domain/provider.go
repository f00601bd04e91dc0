package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OfferSource searches and prices flight offers from the primary provider.
// Implementations return normalized flights; offers that cannot be normalized
// (unknown airline, unusable shape) are dropped, never returned as errors.
type OfferSource interface {
	// SearchOffers returns normalized flights for the given criteria.
	// An error means the batch-level call itself failed (auth, transport);
	// a successful call with zero matches returns an empty slice.
	SearchOffers(ctx context.Context, criteria SearchCriteria) ([]NormalizedFlight, error)

	// PriceOffer re-prices a single offer by its upstream id.
	// Returns ErrNotFound (wrapped) when the offer id matches nothing.
	PriceOffer(ctx context.Context, offerID string) (*NormalizedFlight, error)
}

// StatusSource looks up authoritative flight schedule/status records.
type StatusSource interface {
	// FlightStatus returns the status record for carrier+flightNumber+date,
	// or (nil, nil) when the source has no record for that flight. Errors
	// are reserved for transport-level failures; callers treat both a nil
	// record and an error as a miss.
	FlightStatus(ctx context.Context, carrier, flightNumber, date string) (*StatusRecord, error)
}

// PositionSource looks up live aircraft positions.
type PositionSource interface {
	// AircraftInArea returns aircraft within radius units of the center.
	AircraftInArea(ctx context.Context, center Coordinates, radius int) ([]Aircraft, error)

	// AircraftByCallsign returns the aircraft currently broadcasting the
	// given callsign, or (nil, nil) when none is.
	AircraftByCallsign(ctx context.Context, callsign string) (*Aircraft, error)
}

// TrackerProxy forwards a tracking query to an external tracker service.
// It is a complete bypass of the normal pipeline, not a merged source.
type TrackerProxy interface {
	// Track returns the external tracker's result for the query.
	Track(ctx context.Context, query string) (*TrackingResult, error)
}

// LoyaltyVerifier verifies a past flight for loyalty point crediting.
type LoyaltyVerifier interface {
	// Verify returns the fare amount and flight status for a PNR.
	Verify(ctx context.Context, pnr, flightNumber, date string) (*LoyaltyVerification, error)
}

// Rand is the source of randomness for demo pricing and position simulation.
// It matches the methods of math/rand.Rand so tests can inject a seeded
// source and assert output shape.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// CompetitorMarkup draws a synthetic competitor price markup in [700, 1500)
// INR. The figure is intentionally demo economics, not a business rule.
func CompetitorMarkup(r Rand) int {
	return 700 + r.Intn(800)
}
