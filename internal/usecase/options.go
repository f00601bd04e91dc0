// Package usecase contains the business logic for flight search and
// tracking. It orchestrates the upstream sources and degrades gracefully
// when they fail.
package usecase

import "github.com/skyfare/flight-data-service/internal/domain"

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: price)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByPrice,
	}
}
