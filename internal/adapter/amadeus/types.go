// Package amadeus implements the primary flight-data provider adapter.
// It searches and prices flight offers, looks up schedule/status records,
// and normalizes the provider's inconsistently-shaped payloads into domain
// entities.
package amadeus

import "encoding/json"

// SourceName identifies this adapter in wrapped errors and logs.
const SourceName = "amadeus"

// flexString decodes a JSON string or number into a string. Flight numbers
// arrive as strings in offer payloads and as numbers in status payloads.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// String returns the decoded value.
func (s flexString) String() string { return string(s) }

// tokenResponse is the OAuth2 client-credentials token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// offersResponse wraps a flight-offers search result.
type offersResponse struct {
	Data []rawOffer `json:"data"`
}

// pricingResponse wraps a flight-offers pricing result.
type pricingResponse struct {
	Data struct {
		FlightOffers []rawOffer `json:"flightOffers"`
	} `json:"data"`
}

// rawOffer is an upstream flight-offer record. Only the fields the
// normalizer reads are declared; everything else is ignored.
type rawOffer struct {
	ID          string         `json:"id"`
	Itineraries []rawItinerary `json:"itineraries"`
	Price       rawPrice       `json:"price"`
}

type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	CarrierCode string      `json:"carrierCode"`
	Number      flexString  `json:"number"`
	Departure   rawEndpoint `json:"departure"`
	Arrival     rawEndpoint `json:"arrival"`
	Duration    string      `json:"duration"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
}

// rawPrice carries amounts as strings, the way the provider emits them.
type rawPrice struct {
	Total    string `json:"total"`
	Base     string `json:"base"`
	Currency string `json:"currency"`
}

// rawEndpoint is a departure or arrival point. Different provider response
// versions put the same datum under different names; the extractor resolves
// them in ranked order.
type rawEndpoint struct {
	IATACode           string `json:"iataCode"`
	AirportCode        string `json:"airportCode"`
	IATA               string `json:"iata"`
	BoardPointIATACode string `json:"boardPointIataCode"`

	At                 string `json:"at"`
	ScheduledTime      string `json:"scheduledTime"`
	Time               string `json:"time"`
	ScheduledTimeLocal string `json:"scheduledTimeLocal"`
	ScheduledLocal     string `json:"scheduledLocal"`
	Scheduled          string `json:"scheduled"`

	Terminal     string `json:"terminal"`
	TerminalCode string `json:"terminalCode"`

	Timings []rawTiming `json:"timings"`
}

// rawTiming is a qualified timing entry ("STD", "ETD", "STA", ...).
type rawTiming struct {
	Qualifier string `json:"qualifier"`
	Value     string `json:"value"`
}

// statusResponse wraps a schedule or flight-status lookup. The same decode
// target covers both the v2 "flightPoints" shape and the legacy
// itineraries/segments shape; the parser branches on which is populated.
// Some legacy responses skip the data wrapper and put the record fields at
// the top level, so those are embedded here as well.
type statusResponse struct {
	Data   []statusRecord `json:"data"`
	Status string         `json:"status"`

	statusRecord
}

type statusRecord struct {
	FlightDesignator struct {
		CarrierCode  string      `json:"carrierCode"`
		FlightNumber flexString  `json:"flightNumber"`
	} `json:"flightDesignator"`

	// v2 on-demand flight-status shape
	FlightPoints []flightPoint `json:"flightPoints"`
	Segments     []struct {
		ScheduledSegmentDuration string `json:"scheduledSegmentDuration"`
	} `json:"segments"`
	Legs []struct {
		ScheduledLegDuration string `json:"scheduledLegDuration"`
	} `json:"legs"`

	// legacy shape
	CarrierCode string         `json:"carrierCode"`
	Number      flexString     `json:"number"`
	Itineraries []rawItinerary `json:"itineraries"`
	Departure   *rawEndpoint   `json:"departure"`
	Arrival     *rawEndpoint   `json:"arrival"`
	Duration    string         `json:"duration"`

	Status string `json:"status"`
}

// flightPoint is one airport touchpoint in the v2 flight-status shape.
// Departure is set on the origin point, Arrival on the destination point.
type flightPoint struct {
	IATACode  string         `json:"iataCode"`
	Departure *pointSchedule `json:"departure"`
	Arrival   *pointSchedule `json:"arrival"`
}

type pointSchedule struct {
	Timings  []rawTiming `json:"timings"`
	Terminal *struct {
		Code string `json:"code"`
	} `json:"terminal"`
}
