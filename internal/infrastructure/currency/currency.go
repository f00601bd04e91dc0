// Package currency converts upstream offer prices to INR using fixed
// reference rates. The rates are intentionally static; live FX is out of
// scope for this service.
package currency

import (
	"math"
	"strings"
)

// INR is the display currency for all normalized prices.
const INR = "INR"

// Fixed reference rates to INR.
const (
	usdRate = 83
	eurRate = 90
)

// ToINR converts an amount in the given currency to whole INR.
// INR amounts pass through; unknown currency codes are returned unconverted
// (the caller tracks the original currency separately for display).
func ToINR(amount float64, code string) int {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "USD":
		return int(math.Round(amount * usdRate))
	case "EUR":
		return int(math.Round(amount * eurRate))
	default:
		return int(math.Round(amount))
	}
}
