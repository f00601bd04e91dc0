package domain

// Coordinates is a geographic point used to scope area queries.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DefaultAreaCenter is used when neither endpoint of a tracked flight maps to
// a known airport. It is only used to scope the live-position area query.
var DefaultAreaCenter = Coordinates{Lat: 28.6, Lon: 77.2}

// airportCoords maps common IATA codes to coordinates for area queries.
var airportCoords = map[string]Coordinates{
	"DEL": {Lat: 28.5562, Lon: 77.0996},  // Indira Gandhi Intl
	"BOM": {Lat: 19.0896, Lon: 72.8656},  // Mumbai
	"BLR": {Lat: 13.1986, Lon: 77.7063},  // Bengaluru
	"MAA": {Lat: 12.9941, Lon: 80.1709},  // Chennai
	"HYD": {Lat: 17.2313, Lon: 78.4296},  // Hyderabad
	"CCU": {Lat: 22.654, Lon: 88.446},    // Kolkata
	"COK": {Lat: 10.152, Lon: 76.401},    // Kochi
	"LHR": {Lat: 51.47, Lon: -0.4543},    // London Heathrow
	"JFK": {Lat: 40.6413, Lon: -73.7781}, // New York JFK
}

// AirportCoordinates returns the known coordinates for an IATA code.
func AirportCoordinates(iata string) (Coordinates, bool) {
	c, ok := airportCoords[iata]
	return c, ok
}
