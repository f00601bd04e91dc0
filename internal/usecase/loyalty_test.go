package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyfare/flight-data-service/internal/domain"
)

func TestVerifyFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := domain.NewMockLoyaltyVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "ABC123", "AI101", "2025-01-01").
		Return(&domain.LoyaltyVerification{Amount: 10000, Status: "delayed", Provider: "external"}, nil)

	uc := NewLoyaltyUseCase(verifier, testLogger())
	result, err := uc.VerifyFlight(context.Background(), "ABC123", "AI101", "2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, 10000, result.Verification.Amount)
	assert.Equal(t, 550, result.Points, "5% base with 10% delayed bonus")
}

func TestVerifyFlight_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewLoyaltyUseCase(domain.NewMockLoyaltyVerifier(ctrl), testLogger())

	_, err := uc.VerifyFlight(context.Background(), "", "AI101", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = uc.VerifyFlight(context.Background(), "ABC123", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestVerifyFlight_VerifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := domain.NewMockLoyaltyVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewSourceError("loyalty", domain.ErrSourceUnavailable))

	uc := NewLoyaltyUseCase(verifier, testLogger())
	_, err := uc.VerifyFlight(context.Background(), "ABC123", "AI101", "")
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
