package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SearchCriteria defines the parameters for a flight search request.
// Origin and Destination may both be empty, in which case the search is
// treated as a trending request over the popular route list.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "DEL")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "BOM")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of passengers (default: 1)
	Passengers int `json:"passengers"`

	// Class is the travel class: economy, business, or first (default: economy)
	Class string `json:"class,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// slashDateRegex matches dd/mm/yyyy dates as some clients submit them.
var slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// validClasses defines the allowed travel classes.
var validClasses = map[string]bool{
	"economy":  true,
	"business": true,
	"first":    true,
}

// IsTrending reports whether this search should return trending routes
// instead of a single origin-destination pair.
func (s *SearchCriteria) IsTrending() bool {
	return s.Origin == "" || s.Destination == ""
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	// Trending searches skip route validation entirely
	if !s.IsTrending() {
		if !airportCodeRegex.MatchString(s.Origin) {
			return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
		}
		if !airportCodeRegex.MatchString(s.Destination) {
			return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
		}
		if s.Origin == s.Destination {
			return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
		}
	}

	if s.DepartureDate != "" {
		if !dateRegex.MatchString(s.DepartureDate) {
			return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
		}
		if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
			return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
		}
	}

	if s.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if s.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}

	if s.Class != "" && !validClasses[s.Class] {
		return fmt.Errorf("%w: class must be one of: economy, business, first; got %q", ErrInvalidRequest, s.Class)
	}

	return nil
}

// SetDefaults applies default values and normalizes sloppy input.
// Codes are uppercased, dd/mm/yyyy dates are rewritten to YYYY-MM-DD, and a
// missing date defaults to tomorrow.
func (s *SearchCriteria) SetDefaults(now time.Time) {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.Class = strings.ToLower(strings.TrimSpace(s.Class))

	if m := slashDateRegex.FindStringSubmatch(s.DepartureDate); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		s.DepartureDate = fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
	}
	if s.DepartureDate == "" {
		s.DepartureDate = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.Class == "" {
		s.Class = "economy"
	}
}
