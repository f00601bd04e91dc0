package domain

// SearchResponse is the aggregated response from a flight search.
// Upstream failures never surface as errors; they degrade to an empty flight
// list with a user-facing message in ErrorMessage.
type SearchResponse struct {
	// SearchCriteria echoes the (normalized) search parameters
	SearchCriteria SearchCriteria `json:"searchCriteria"`

	// Flights is the normalized result list, never nil
	Flights []NormalizedFlight `json:"flights"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// ErrorMessage is set when the search degraded due to an upstream
	// failure; the flight list is empty in that case
	ErrorMessage string `json:"error,omitempty"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of flights returned
	TotalResults int `json:"totalResults"`

	// OffersReceived is the raw offer count before normalization filtering
	OffersReceived int `json:"offersReceived"`

	// OffersDropped counts offers rejected during normalization
	OffersDropped int `json:"offersDropped"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponse builds a SearchResponse, guaranteeing a non-nil flight
// slice and a consistent result count.
func NewSearchResponse(criteria SearchCriteria, flights []NormalizedFlight, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []NormalizedFlight{}
	}
	metadata.TotalResults = len(flights)
	return &SearchResponse{
		SearchCriteria: criteria,
		Flights:        flights,
		Metadata:       metadata,
	}
}

// NewDegradedSearchResponse builds an empty SearchResponse carrying a
// user-facing error message.
func NewDegradedSearchResponse(criteria SearchCriteria, message string) *SearchResponse {
	resp := NewSearchResponse(criteria, nil, SearchMetadata{})
	resp.ErrorMessage = message
	return resp
}
