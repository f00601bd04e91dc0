// Package domain contains the core business entities and rules for the flight
// data service. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

import "strings"

// NormalizedFlight is the canonical flight record produced from a raw upstream
// flight offer. All prices are in INR; the source currency is preserved in
// OriginalCurrency for display.
type NormalizedFlight struct {
	// ID is the upstream offer id, or a synthesized identifier when absent
	ID string `json:"id"`

	// AmadeusOfferID is the upstream offer id used for pricing lookups
	AmadeusOfferID string `json:"amadeusOfferId,omitempty"`

	// Airline is the resolved airline display name (e.g., "Air India")
	Airline string `json:"airline"`

	// AirlineCode is the IATA carrier code (e.g., "AI")
	AirlineCode string `json:"airlineCode"`

	// Number is the flight number without the carrier prefix
	Number string `json:"number"`

	// From and To are the route IATA codes
	From string `json:"from"`
	To   string `json:"to"`

	// DepartureTime and ArrivalTime are HH:MM display strings derived from
	// the full timestamps
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`

	// DepartureAtFull and ArrivalAtFull are the raw ISO timestamps; empty
	// when the upstream payload carried none
	DepartureAtFull string `json:"departureAtFull,omitempty"`
	ArrivalAtFull   string `json:"arrivalAtFull,omitempty"`

	// Terminal is the departure terminal when known
	Terminal string `json:"terminal,omitempty"`

	// DurationMins is the total journey duration in minutes (never negative)
	DurationMins int `json:"durationMins"`

	// Stops is the number of intermediate landings (segment count - 1)
	Stops int `json:"stops"`

	// Stopovers holds one entry per intermediate landing, in journey order
	Stopovers []Stopover `json:"stopovers,omitempty"`

	// Class is the cabin class (economy, business, first)
	Class string `json:"class"`

	// Price is the total price converted to INR
	Price int `json:"price"`

	// BasePrice and Fees are in the source currency; Fees = total - base
	BasePrice float64 `json:"basePrice"`
	Fees      float64 `json:"fees"`

	// Currency is always "INR"; OriginalCurrency is the source currency
	Currency         string `json:"currency"`
	OriginalCurrency string `json:"originalCurrency"`

	// Comparisons lists provider price comparisons. The first entry is the
	// operating airline at the true price; the rest are synthetic.
	Comparisons []PriceComparison `json:"comparisons"`

	// AircraftCode is the upstream equipment code (e.g., "320")
	AircraftCode string `json:"aircraftCode"`

	// AircraftType is the human-readable equipment name (e.g., "Airbus A320")
	AircraftType string `json:"aircraftType"`
}

// Stopover describes a single layover between two segments.
type Stopover struct {
	// Airport is the IATA code of the intermediate airport
	Airport string `json:"airport"`

	// DurationMins is the ground time in minutes (0 when unknown)
	DurationMins int `json:"duration"`
}

// PriceComparison is a single provider/price pair in a comparison list.
type PriceComparison struct {
	Provider string `json:"provider"`
	Price    int    `json:"price"`
}

// UnknownAirline is the sentinel name for carrier codes with no known airline.
// Offers resolving to it are dropped from search results.
const UnknownAirline = "Unknown Airline"

// DefaultAircraftCode is assumed when an offer carries no equipment code.
const DefaultAircraftCode = "B737"

// airlineNames maps IATA carrier codes to display names.
var airlineNames = map[string]string{
	// Indian carriers
	"6E": "IndiGo",
	"AI": "Air India",
	"SG": "SpiceJet",
	"G8": "GoAir",
	"I5": "AirAsia India",
	"UK": "Vistara",
	"IX": "Air India Express",

	// International carriers
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"TK": "Turkish Airlines",
	"EY": "Etihad Airways",
}

// AirlineName resolves a carrier code to a display name.
// Unknown codes resolve to the UnknownAirline sentinel; empty codes too.
func AirlineName(carrierCode string) string {
	code := strings.ToUpper(strings.TrimSpace(carrierCode))
	if code == "" {
		return UnknownAirline
	}
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return UnknownAirline
}

// aircraftNames maps upstream equipment codes to readable aircraft names.
var aircraftNames = map[string]string{
	"77W":  "Boeing 777-300ER",
	"772":  "Boeing 777-200",
	"788":  "Boeing 787-8",
	"789":  "Boeing 787-9",
	"738":  "Boeing 737-800",
	"73H":  "Boeing 737-8",
	"320":  "Airbus A320",
	"321":  "Airbus A321",
	"32N":  "Airbus A320neo",
	"321N": "Airbus A321neo",
	"330":  "Airbus A330",
	"350":  "Airbus A350",
	"A388": "Airbus A380",
	"B737": "Boeing 737",
}

// AircraftName resolves an equipment code to a readable name.
// Unmapped codes pass through unchanged.
func AircraftName(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return ""
	}
	if name, ok := aircraftNames[c]; ok {
		return name
	}
	return code
}
