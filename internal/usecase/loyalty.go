package usecase

import (
	"context"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
)

// LoyaltyResult pairs a verification with the points it earns.
type LoyaltyResult struct {
	Verification domain.LoyaltyVerification `json:"verification"`
	Points       int                        `json:"points"`
}

// LoyaltyUseCase verifies past flights and computes the points earned.
type LoyaltyUseCase interface {
	VerifyFlight(ctx context.Context, pnr, flightNumber, date string) (*LoyaltyResult, error)
}

type loyaltyUseCase struct {
	verifier domain.LoyaltyVerifier
	log      *logger.Logger
}

// NewLoyaltyUseCase creates a LoyaltyUseCase backed by the given verifier.
func NewLoyaltyUseCase(verifier domain.LoyaltyVerifier, log *logger.Logger) LoyaltyUseCase {
	return &loyaltyUseCase{verifier: verifier, log: log}
}

// VerifyFlight implements LoyaltyUseCase.VerifyFlight.
func (uc *loyaltyUseCase) VerifyFlight(ctx context.Context, pnr, flightNumber, date string) (*LoyaltyResult, error) {
	if pnr == "" {
		return nil, domain.WrapInvalidRequest("pnr is required")
	}
	if flightNumber == "" {
		return nil, domain.WrapInvalidRequest("flight number is required")
	}

	verification, err := uc.verifier.Verify(ctx, pnr, flightNumber, date)
	if err != nil {
		return nil, err
	}

	points := domain.LoyaltyPoints(verification.Amount, verification.Status)
	uc.log.Info().
		Str("pnr", pnr).
		Str("provider", verification.Provider).
		Int("points", points).
		Msg("Loyalty verification completed")

	return &LoyaltyResult{Verification: *verification, Points: points}, nil
}
