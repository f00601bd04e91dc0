// Package mock provides function-backed fakes for the domain ports.
// Unlike the generated mocks in the domain package, these need no
// controller and suit integration tests that wire a whole server.
package mock

import (
	"context"

	"github.com/skyfare/flight-data-service/internal/domain"
)

// OfferSource is a function-backed domain.OfferSource.
type OfferSource struct {
	SearchOffersFunc func(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedFlight, error)
	PriceOfferFunc   func(ctx context.Context, offerID string) (*domain.NormalizedFlight, error)
}

var _ domain.OfferSource = (*OfferSource)(nil)

func (m *OfferSource) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedFlight, error) {
	if m.SearchOffersFunc == nil {
		return nil, nil
	}
	return m.SearchOffersFunc(ctx, criteria)
}

func (m *OfferSource) PriceOffer(ctx context.Context, offerID string) (*domain.NormalizedFlight, error) {
	if m.PriceOfferFunc == nil {
		return nil, nil
	}
	return m.PriceOfferFunc(ctx, offerID)
}

// StatusSource is a function-backed domain.StatusSource.
type StatusSource struct {
	FlightStatusFunc func(ctx context.Context, carrier, flightNumber, date string) (*domain.StatusRecord, error)
}

var _ domain.StatusSource = (*StatusSource)(nil)

func (m *StatusSource) FlightStatus(ctx context.Context, carrier, flightNumber, date string) (*domain.StatusRecord, error) {
	if m.FlightStatusFunc == nil {
		return nil, nil
	}
	return m.FlightStatusFunc(ctx, carrier, flightNumber, date)
}

// PositionSource is a function-backed domain.PositionSource.
type PositionSource struct {
	AircraftInAreaFunc     func(ctx context.Context, center domain.Coordinates, radius int) ([]domain.Aircraft, error)
	AircraftByCallsignFunc func(ctx context.Context, callsign string) (*domain.Aircraft, error)
}

var _ domain.PositionSource = (*PositionSource)(nil)

func (m *PositionSource) AircraftInArea(ctx context.Context, center domain.Coordinates, radius int) ([]domain.Aircraft, error) {
	if m.AircraftInAreaFunc == nil {
		return nil, nil
	}
	return m.AircraftInAreaFunc(ctx, center, radius)
}

func (m *PositionSource) AircraftByCallsign(ctx context.Context, callsign string) (*domain.Aircraft, error) {
	if m.AircraftByCallsignFunc == nil {
		return nil, nil
	}
	return m.AircraftByCallsignFunc(ctx, callsign)
}

// TrackerProxy is a function-backed domain.TrackerProxy.
type TrackerProxy struct {
	TrackFunc func(ctx context.Context, query string) (*domain.TrackingResult, error)
}

var _ domain.TrackerProxy = (*TrackerProxy)(nil)

func (m *TrackerProxy) Track(ctx context.Context, query string) (*domain.TrackingResult, error) {
	if m.TrackFunc == nil {
		return nil, nil
	}
	return m.TrackFunc(ctx, query)
}

// LoyaltyVerifier is a function-backed domain.LoyaltyVerifier.
type LoyaltyVerifier struct {
	VerifyFunc func(ctx context.Context, pnr, flightNumber, date string) (*domain.LoyaltyVerification, error)
}

var _ domain.LoyaltyVerifier = (*LoyaltyVerifier)(nil)

func (m *LoyaltyVerifier) Verify(ctx context.Context, pnr, flightNumber, date string) (*domain.LoyaltyVerification, error) {
	if m.VerifyFunc == nil {
		return nil, nil
	}
	return m.VerifyFunc(ctx, pnr, flightNumber, date)
}
