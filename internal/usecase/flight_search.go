package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-data-service/internal/infrastructure/timeutil"
)

// Trending search tuning.
const (
	// trendingPerRoute caps how many flights each popular route contributes
	trendingPerRoute = 3

	// trendingMaxResults caps the combined trending result list
	trendingMaxResults = 20
)

// popularRoutes are the routes queried for a trending search (one with no
// origin/destination).
var popularRoutes = [][2]string{
	{"DEL", "BOM"},
	{"BOM", "BLR"},
	{"DEL", "BLR"},
	{"BLR", "MAA"},
	{"BOM", "DEL"},
	{"HYD", "BLR"},
	{"DEL", "HYD"},
}

// Degraded-search messages shown to the end user in place of an error.
const (
	msgSearchUnavailable = "Flight search is temporarily unavailable. Please try again later."
	msgSearchFailed      = "We could not fetch flights for this route right now. Please try again."
)

// FlightSearchUseCase defines the flight search operations.
type FlightSearchUseCase interface {
	// Search returns normalized flights for the criteria. Upstream failures
	// degrade to an empty result with an error message; the returned error
	// is reserved for invalid criteria.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)

	// GetFlight re-prices a single offer by its upstream id.
	GetFlight(ctx context.Context, offerID string) (*domain.NormalizedFlight, error)
}

// defaultSearchTimeout bounds a whole search, including the trending fan-out.
const defaultSearchTimeout = 30 * time.Second

type flightSearchUseCase struct {
	offers  domain.OfferSource
	log     *logger.Logger
	now     func() time.Time
	timeout time.Duration
}

// Option configures a FlightSearchUseCase.
type Option func(*flightSearchUseCase)

// WithSearchTimeout overrides the overall search budget.
func WithSearchTimeout(d time.Duration) Option {
	return func(uc *flightSearchUseCase) {
		if d > 0 {
			uc.timeout = d
		}
	}
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by the given
// offer source.
func NewFlightSearchUseCase(offers domain.OfferSource, log *logger.Logger, opts ...Option) FlightSearchUseCase {
	uc := &flightSearchUseCase{
		offers:  offers,
		log:     log,
		now:     timeutil.NowInDelhi,
		timeout: defaultSearchTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	startTime := uc.now()

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	criteria.SetDefaults(uc.now())
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var flights []domain.NormalizedFlight
	var err error
	if criteria.IsTrending() {
		flights = uc.searchTrending(ctx, criteria)
	} else {
		flights, err = uc.offers.SearchOffers(ctx, criteria)
	}
	if err != nil {
		uc.log.Error().Err(err).
			Str("origin", criteria.Origin).
			Str("destination", criteria.Destination).
			Msg("Flight search degraded")
		return domain.NewDegradedSearchResponse(criteria, degradedMessage(err)), nil
	}

	received := len(flights)
	flights = applyFilters(flights, opts.Filters)
	sortFlights(flights, opts.SortBy)

	return domain.NewSearchResponse(criteria, flights, domain.SearchMetadata{
		OffersReceived: received,
		OffersDropped:  received - len(flights),
		SearchTimeMs:   uc.now().Sub(startTime).Milliseconds(),
	}), nil
}

// GetFlight implements FlightSearchUseCase.GetFlight.
func (uc *flightSearchUseCase) GetFlight(ctx context.Context, offerID string) (*domain.NormalizedFlight, error) {
	if offerID == "" {
		return nil, domain.WrapInvalidRequest("offer id is required")
	}
	return uc.offers.PriceOffer(ctx, offerID)
}

// routeResult holds the result from one popular-route query.
type routeResult struct {
	route   [2]string
	flights []domain.NormalizedFlight
	err     error
}

// searchTrending fans a search out over the popular routes and combines the
// cheapest flights of each. Routes that fail are skipped; trending is a
// best-effort surface.
func (uc *flightSearchUseCase) searchTrending(ctx context.Context, criteria domain.SearchCriteria) []domain.NormalizedFlight {
	resultsChan := make(chan routeResult, len(popularRoutes))
	var wg sync.WaitGroup

	for _, route := range popularRoutes {
		wg.Add(1)
		go func(route [2]string) {
			defer wg.Done()
			routeCriteria := criteria
			routeCriteria.Origin = route[0]
			routeCriteria.Destination = route[1]

			flights, err := uc.offers.SearchOffers(ctx, routeCriteria)
			resultsChan <- routeResult{route: route, flights: flights, err: err}
		}(route)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	combined := make([]domain.NormalizedFlight, 0, len(popularRoutes)*trendingPerRoute)
	for result := range resultsChan {
		if result.err != nil {
			uc.log.Warn().Err(result.err).
				Str("origin", result.route[0]).
				Str("destination", result.route[1]).
				Msg("Trending route query failed, skipping")
			continue
		}
		sortFlights(result.flights, domain.SortByPrice)
		if len(result.flights) > trendingPerRoute {
			result.flights = result.flights[:trendingPerRoute]
		}
		combined = append(combined, result.flights...)
	}

	sortFlights(combined, domain.SortByPrice)
	if len(combined) > trendingMaxResults {
		combined = combined[:trendingMaxResults]
	}
	return combined
}

// degradedMessage maps an upstream failure to the user-facing message shown
// in place of results.
func degradedMessage(err error) string {
	if domain.IsMissingCredentials(err) {
		return msgSearchUnavailable
	}
	return msgSearchFailed
}

// applyFilters returns the flights matching all filter criteria.
func applyFilters(flights []domain.NormalizedFlight, filters *domain.FilterOptions) []domain.NormalizedFlight {
	if filters == nil {
		return flights
	}
	filtered := make([]domain.NormalizedFlight, 0, len(flights))
	for _, flight := range flights {
		if filters.MatchesFlight(flight) {
			filtered = append(filtered, flight)
		}
	}
	return filtered
}

// sortFlights sorts in place by the given option. Sorting is stable so
// equal flights keep their upstream order.
func sortFlights(flights []domain.NormalizedFlight, sortBy domain.SortOption) {
	switch sortBy {
	case domain.SortByDuration:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DurationMins < flights[j].DurationMins
		})
	case domain.SortByDeparture:
		// ISO-8601 timestamps compare correctly as strings
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureAtFull < flights[j].DepartureAtFull
		})
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}
}
