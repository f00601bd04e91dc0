package domain

import "strings"

// Tracking source provenance values.
const (
	// SourceADSB means position fields came from a live ADS-B match.
	SourceADSB = "adsb"

	// SourceAmadeus means no live position was found but schedule/status
	// data came from the authoritative source.
	SourceAmadeus = "amadeus"

	// SourceSimulated means every field came from the local simulation.
	SourceSimulated = "simulated"

	// SourceExternal means the result was proxied from an external tracker.
	SourceExternal = "external"
)

// TrackingResult is the merged record returned for a tracking request.
// Position fields come from a live source or the simulation; status and
// schedule fields come from the authoritative status source when available.
type TrackingResult struct {
	// Flight is the requested flight identifier (e.g., "AI101")
	Flight string `json:"flight"`

	// Position fields
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Alt   float64 `json:"alt"`
	Speed float64 `json:"speed"`

	// Live-source identity fields, empty for simulated results
	Callsign     string `json:"callsign,omitempty"`
	ICAO         string `json:"icao,omitempty"`
	Operator     string `json:"operator,omitempty"`
	Registration string `json:"reg,omitempty"`

	// Status and schedule overlays
	Status    string       `json:"status"`
	Departure *StatusPoint `json:"departure"`
	Arrival   *StatusPoint `json:"arrival"`

	// Source records where the position fields came from
	Source string `json:"source"`

	// Attempted records which upstream sources were tried
	Attempted Attempted `json:"attempted"`
}

// Attempted records which upstream sources a tracking request queried.
type Attempted struct {
	Amadeus    bool `json:"amadeus"`
	ADSBArea   bool `json:"adsb_area"`
	ADSBDirect bool `json:"adsb_direct"`
	External   bool `json:"external"`
}

// Aircraft is a live aircraft position as reported by a position source.
type Aircraft struct {
	// Callsign and Flight are the identifiers providers report; either may
	// be empty depending on the response variant
	Callsign string `json:"callsign,omitempty"`
	Flight   string `json:"flight,omitempty"`

	// Hex is the ICAO 24-bit address
	Hex string `json:"hex,omitempty"`

	Registration string `json:"reg,omitempty"`
	Operator     string `json:"operator,omitempty"`

	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Alt   float64 `json:"alt"`
	Speed float64 `json:"speed"`
}

// FindAircraft scans a position-source result list for the first aircraft
// whose callsign, flight, or hex field contains the requested flight
// identifier as a case-insensitive substring. Returns nil when nothing
// matches.
func FindAircraft(list []Aircraft, flight string) *Aircraft {
	needle := strings.ToUpper(strings.ReplaceAll(flight, " ", ""))
	if needle == "" {
		return nil
	}
	for i := range list {
		ac := &list[i]
		if strings.Contains(strings.ToUpper(ac.Callsign), needle) {
			return ac
		}
		if strings.Contains(strings.ToUpper(ac.Flight), needle) {
			return ac
		}
		if ac.Hex != "" && strings.Contains(strings.ToUpper(ac.Hex), needle) {
			return ac
		}
	}
	return nil
}

// SourceToggles enables or disables individual tracking sources per request.
// The zero value disables everything; use DefaultSourceToggles for the
// standard pipeline.
type SourceToggles struct {
	UseAmadeus    bool `json:"useAmadeus"`
	UseADSBArea   bool `json:"useADSBArea"`
	UseADSBDirect bool `json:"useADSBDirect"`
	UseExternal   bool `json:"useExternal"`
}

// DefaultSourceToggles enables the standard pipeline: Amadeus and both ADS-B
// lookups on, the external proxy off (it must be requested explicitly).
func DefaultSourceToggles() SourceToggles {
	return SourceToggles{
		UseAmadeus:    true,
		UseADSBArea:   true,
		UseADSBDirect: true,
		UseExternal:   false,
	}
}
