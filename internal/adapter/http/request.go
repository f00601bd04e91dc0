// Package http provides the HTTP handler layer for the flight data API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strings"
)

// SearchFlightsRequest represents the query parameters for flight search.
// Origin and destination may both be omitted for a trending search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "DEL")
	Origin string `query:"origin" json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "BOM")
	Destination string `query:"destination" json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"date" json:"date"`

	// Passengers is the number of passengers (1-9, default 1)
	Passengers int `query:"passengers" json:"passengers"`

	// Class is the travel class: economy, business, or first (optional)
	Class string `query:"class" json:"class,omitempty"`

	// MaxPrice filters out flights priced above this amount in INR
	MaxPrice *int `query:"maxPrice" json:"maxPrice,omitempty"`

	// MaxStops filters out flights with more stops (0 = direct only)
	MaxStops *int `query:"maxStops" json:"maxStops,omitempty"`

	// Airlines is a comma-separated list of carrier codes to keep
	Airlines string `query:"airlines" json:"airlines,omitempty"`

	// SortBy specifies how to sort results: price, duration, departure
	SortBy string `query:"sortBy" json:"sortBy,omitempty"`
}

// TrackFlightRequest represents the request body for flight tracking.
// Callers supply either carrier+flightNumber or the combined flight field.
type TrackFlightRequest struct {
	// Carrier is the IATA carrier code (e.g., "AI")
	Carrier string `json:"carrier"`

	// FlightNumber is the numeric flight number (e.g., "101")
	FlightNumber string `json:"flightNumber"`

	// Flight is the combined identifier (e.g., "AI101"), an alternative to
	// carrier+flightNumber
	Flight string `json:"flight,omitempty"`

	// Date is the scheduled departure date in YYYY-MM-DD (default: today)
	Date string `json:"date,omitempty"`

	// Sources toggles individual tracking sources; omitted fields keep
	// their defaults
	Sources *SourceTogglesDTO `json:"sources,omitempty"`
}

// SourceTogglesDTO enables or disables tracking sources per request.
// Nil fields keep the server default for that source.
type SourceTogglesDTO struct {
	Amadeus    *bool `json:"amadeus,omitempty"`
	ADSBArea   *bool `json:"adsbArea,omitempty"`
	ADSBDirect *bool `json:"adsbDirect,omitempty"`
	External   *bool `json:"external,omitempty"`
}

// VerifyLoyaltyRequest represents the request body for loyalty verification.
type VerifyLoyaltyRequest struct {
	// PNR is the booking reference of the flown flight
	PNR string `json:"pnr"`

	// FlightNumber is the combined flight identifier (e.g., "AI101")
	FlightNumber string `json:"flightNumber"`

	// Date is the flight date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`
}

// combinedFlightRegex splits "AI101" into carrier and number.
var combinedFlightRegex = regexp.MustCompile(`^([A-Z0-9]{2})\s*(\d{1,4}[A-Z]?)$`)

// splitFlight splits a combined flight identifier into carrier code and
// flight number. Returns empty strings when the input does not look like a
// flight identifier.
func splitFlight(flight string) (carrier, number string) {
	m := combinedFlightRegex.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(flight)))
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
