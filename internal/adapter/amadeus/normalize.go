package amadeus

import (
	"fmt"
	"strconv"

	"github.com/skyfare/flight-data-service/internal/domain"
	"github.com/skyfare/flight-data-service/internal/infrastructure/currency"
	"github.com/skyfare/flight-data-service/internal/infrastructure/timeutil"
)

// syntheticProviders are the competitor names shown in price comparisons.
// Their prices are randomized demo figures, not real quotes.
var syntheticProviders = []string{"MakeMyTrip", "Cleartrip", "Goibibo"}

// normalizeOffer converts a raw upstream offer into the canonical flight
// record. It returns nil when the offer carries no identifiable airline;
// a flight card without an airline is filtered, not shown as a placeholder.
//
// Only the first itinerary is considered. Round-trip offers would need the
// return itinerary surfaced as a second record; the search path does not
// request them.
func normalizeOffer(offer rawOffer, criteria domain.SearchCriteria, index int, rnd domain.Rand) *domain.NormalizedFlight {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return nil
	}
	itinerary := offer.Itineraries[0]
	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	airline := domain.AirlineName(first.CarrierCode)
	if first.CarrierCode == "" || airline == domain.UnknownAirline {
		return nil
	}

	from := extractIATA(&first.Departure, criteria.Origin)
	to := extractIATA(&last.Arrival, criteria.Destination)
	departureAt := extractTime(&first.Departure)
	arrivalAt := extractTime(&last.Arrival)

	durationMins := timeutil.ParseISODuration(itinerary.Duration)
	if durationMins == 0 {
		durationMins = timeutil.MinutesBetween(departureAt, arrivalAt)
	}

	stops := len(itinerary.Segments) - 1
	var stopovers []domain.Stopover
	for i := 0; i < stops; i++ {
		leg := itinerary.Segments[i]
		next := itinerary.Segments[i+1]
		stopovers = append(stopovers, domain.Stopover{
			Airport:      extractIATA(&leg.Arrival, ""),
			DurationMins: timeutil.MinutesBetween(extractTime(&leg.Arrival), extractTime(&next.Departure)),
		})
	}

	total, _ := strconv.ParseFloat(offer.Price.Total, 64)
	base, _ := strconv.ParseFloat(offer.Price.Base, 64)
	priceINR := currency.ToINR(total, offer.Price.Currency)

	comparisons := make([]domain.PriceComparison, 0, len(syntheticProviders)+1)
	comparisons = append(comparisons, domain.PriceComparison{Provider: airline, Price: priceINR})
	for _, provider := range syntheticProviders {
		comparisons = append(comparisons, domain.PriceComparison{
			Provider: provider,
			Price:    priceINR + domain.CompetitorMarkup(rnd),
		})
	}

	aircraftCode := first.Aircraft.Code
	if aircraftCode == "" {
		aircraftCode = domain.DefaultAircraftCode
	}

	id := offer.ID
	if id == "" {
		id = fmt.Sprintf("offer-%d", index+1)
	}

	return &domain.NormalizedFlight{
		ID:               id,
		AmadeusOfferID:   offer.ID,
		Airline:          airline,
		AirlineCode:      first.CarrierCode,
		Number:           first.Number.String(),
		From:             from,
		To:               to,
		DepartureTime:    timeutil.FormatClock(departureAt),
		ArrivalTime:      timeutil.FormatClock(arrivalAt),
		DepartureAtFull:  departureAt,
		ArrivalAtFull:    arrivalAt,
		Terminal:         extractTerminal(&first.Departure),
		DurationMins:     durationMins,
		Stops:            stops,
		Stopovers:        stopovers,
		Class:            criteria.Class,
		Price:            priceINR,
		BasePrice:        base,
		Fees:             total - base,
		Currency:         currency.INR,
		OriginalCurrency: offer.Price.Currency,
		Comparisons:      comparisons,
		AircraftCode:     aircraftCode,
		AircraftType:     domain.AircraftName(aircraftCode),
	}
}

// normalizeOffers runs normalizeOffer over a batch, dropping offers that
// reject. One malformed offer never aborts its siblings.
func normalizeOffers(offers []rawOffer, criteria domain.SearchCriteria, rnd domain.Rand) []domain.NormalizedFlight {
	flights := make([]domain.NormalizedFlight, 0, len(offers))
	for i, offer := range offers {
		if flight := normalizeOffer(offer, criteria, i, rnd); flight != nil {
			flights = append(flights, *flight)
		}
	}
	return flights
}
