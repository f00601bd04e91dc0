package http

import (
	"strings"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/usecase"
)

// ToDomainCriteria converts a search request to domain search criteria.
// Normalization (uppercasing, date rewriting, defaults) happens in the use
// case, not here.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
		Class:         req.Class,
	}
}

// ToSearchOptions converts a search request's filter and sort parameters.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	opts.SortBy = domain.ParseSortOption(req.SortBy)

	if req.MaxPrice != nil || req.MaxStops != nil || req.Airlines != "" {
		filters := &domain.FilterOptions{
			MaxPrice: req.MaxPrice,
			MaxStops: req.MaxStops,
		}
		for _, airline := range strings.Split(req.Airlines, ",") {
			if airline = strings.TrimSpace(airline); airline != "" {
				filters.Airlines = append(filters.Airlines, airline)
			}
		}
		opts.Filters = filters
	}
	return opts
}

// ToTrackRequest converts a tracking request to the use case's form,
// resolving the combined flight field and merging source toggles onto the
// defaults.
func ToTrackRequest(req *TrackFlightRequest) usecase.TrackRequest {
	carrier, number := req.Carrier, req.FlightNumber
	if carrier == "" && number == "" && req.Flight != "" {
		carrier, number = splitFlight(req.Flight)
	}

	out := usecase.TrackRequest{
		Carrier:      strings.ToUpper(strings.TrimSpace(carrier)),
		FlightNumber: strings.TrimSpace(number),
		Date:         req.Date,
	}

	if req.Sources != nil {
		toggles := domain.DefaultSourceToggles()
		if req.Sources.Amadeus != nil {
			toggles.UseAmadeus = *req.Sources.Amadeus
		}
		if req.Sources.ADSBArea != nil {
			toggles.UseADSBArea = *req.Sources.ADSBArea
		}
		if req.Sources.ADSBDirect != nil {
			toggles.UseADSBDirect = *req.Sources.ADSBDirect
		}
		if req.Sources.External != nil {
			toggles.UseExternal = *req.Sources.External
		}
		out.Toggles = &toggles
	}
	return out
}
