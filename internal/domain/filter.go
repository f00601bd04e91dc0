package domain

import "strings"

// SortOption defines the available sorting options for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by price ascending (cheapest first, default)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by flight duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure timestamp ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// FilterOptions defines optional filters to apply to flight results.
type FilterOptions struct {
	// MaxPrice filters out flights priced above this amount in INR
	MaxPrice *int `json:"maxPrice,omitempty"`

	// MaxStops filters out flights with more stops than this value
	// (0 = direct flights only)
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines filters to only include flights from these carrier codes
	Airlines []string `json:"airlines,omitempty"`
}

// MatchesFlight checks if a flight matches all the filter criteria.
func (f *FilterOptions) MatchesFlight(flight NormalizedFlight) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && flight.Price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		code := strings.ToUpper(flight.AirlineCode)
		for _, want := range f.Airlines {
			if strings.ToUpper(want) == code {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
