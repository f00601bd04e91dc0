package domain

// StatusRecord is the canonical flight schedule/status record produced from
// an upstream schedule or flight-status payload.
type StatusRecord struct {
	// Carrier is the IATA carrier code (empty when unknown)
	Carrier string `json:"carrier,omitempty"`

	// FlightNumber is the numeric flight number as a string
	FlightNumber string `json:"flightNumber,omitempty"`

	// Departure and Arrival points; nil when the payload carried neither
	Departure *StatusPoint `json:"departure"`
	Arrival   *StatusPoint `json:"arrival"`

	// Duration is the opaque upstream duration token (e.g., "PT2H10M")
	Duration string `json:"duration,omitempty"`

	// Status is a free-text status string ("scheduled", "delayed", ...)
	Status string `json:"status,omitempty"`
}

// StatusPoint is a departure or arrival point in a status record.
// Fields are independently optional.
type StatusPoint struct {
	IATACode string `json:"iataCode,omitempty"`
	At       string `json:"at,omitempty"`
	Terminal string `json:"terminal,omitempty"`
}

// IsZero reports whether the point carries no information at all.
func (p *StatusPoint) IsZero() bool {
	return p == nil || (p.IATACode == "" && p.At == "" && p.Terminal == "")
}
