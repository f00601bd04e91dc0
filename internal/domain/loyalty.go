package domain

// LoyaltyVerification is the result of verifying a past flight for loyalty
// point crediting.
type LoyaltyVerification struct {
	// Amount is the verified fare amount in INR
	Amount int `json:"amount"`

	// Status is the flight's final status (on-time, delayed, cancelled)
	Status string `json:"status"`

	// Provider records where the verification came from ("external", "mock")
	Provider string `json:"provider"`
}

// Loyalty status multipliers. Disrupted flights earn bonus points as a
// goodwill gesture. These figures are demo economics; the tiering mechanism
// is the part that matters.
const (
	delayedMultiplier   = 1.1
	cancelledMultiplier = 1.5
)

// basePointsRate is the fraction of the fare credited as points.
const basePointsRate = 0.05

// LoyaltyPoints computes the points earned for a verified fare amount,
// applying the status-tier multiplier.
func LoyaltyPoints(amount int, status string) int {
	if amount <= 0 {
		return 0
	}
	base := float64(amount) * basePointsRate
	switch status {
	case "delayed":
		base *= delayedMultiplier
	case "cancelled":
		base *= cancelledMultiplier
	}
	return int(base)
}

// MockVerification produces a deterministic pseudo-random verification from
// the PNR and flight number, for use when no external verifier is configured.
// The same inputs always yield the same amount and status.
func MockVerification(pnr, flightNumber string) *LoyaltyVerification {
	seed := pnr + "|" + flightNumber
	var hash int32
	for _, ch := range seed {
		hash = (hash<<5 - hash) + int32(ch)
	}
	abs := int(hash)
	if abs < 0 {
		abs = -abs
	}
	amount := abs % 15000
	if amount < 500 {
		amount = 500
	}
	amount += 500 // between 1000 and ~15500

	statuses := []string{"on-time", "delayed", "cancelled"}
	return &LoyaltyVerification{
		Amount:   amount,
		Status:   statuses[abs%len(statuses)],
		Provider: "mock",
	}
}
