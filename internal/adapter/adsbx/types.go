package adsbx

import (
	"encoding/json"
	"strings"

	"github.com/skyfare/flight-data-service/internal/domain"
)

// acResponse is the common envelope both endpoints use.
type acResponse struct {
	AC []rawAircraft `json:"ac"`
}

// rawAircraft is one aircraft entry. Altitude and speed appear under
// different names across response variants, and altitude may be the literal
// string "ground" for taxiing aircraft.
type rawAircraft struct {
	Hex          string `json:"hex"`
	Flight       string `json:"flight"`
	Registration string `json:"r"`
	Operator     string `json:"ownOp"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	AltBaro altitude `json:"alt_baro"`
	AltGeom altitude `json:"alt_geom"`
	Alt     altitude `json:"alt"`

	GroundSpeed float64 `json:"gs"`
	Speed       float64 `json:"spd"`
}

// altitude decodes a JSON number or the string "ground" (as 0).
type altitude float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *altitude) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		// "ground" and any other non-numeric marker mean on the ground
		*a = 0
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = altitude(v)
	return nil
}

// toDomain maps a raw entry to the domain aircraft, resolving the altitude
// and speed field variants in ranked order.
func (r rawAircraft) toDomain() domain.Aircraft {
	alt := float64(r.AltBaro)
	if alt == 0 {
		alt = float64(r.Alt)
	}
	if alt == 0 {
		alt = float64(r.AltGeom)
	}

	speed := r.GroundSpeed
	if speed == 0 {
		speed = r.Speed
	}

	callsign := strings.TrimSpace(r.Flight)
	return domain.Aircraft{
		Callsign:     callsign,
		Flight:       callsign,
		Hex:          r.Hex,
		Registration: r.Registration,
		Operator:     r.Operator,
		Lat:          r.Lat,
		Lon:          r.Lon,
		Alt:          alt,
		Speed:        speed,
	}
}
