package amadeus

import (
	"github.com/skyfare/flight-data-service/internal/domain"
)

// parseStatus converts a schedule/status lookup response into the canonical
// status record. The v2 flightPoints shape is preferred whenever its
// indicator array is present and non-empty; the legacy itineraries shape is
// a fallback only. Returns nil when the payload carries no usable record of
// either shape, which callers treat as a source miss, not an error.
func parseStatus(resp *statusResponse) *domain.StatusRecord {
	if resp == nil {
		return nil
	}

	// Legacy responses may skip the data wrapper entirely, carrying the
	// record fields at the top level.
	record := &resp.statusRecord
	if len(resp.Data) > 0 {
		record = &resp.Data[0]
	}

	if len(record.FlightPoints) > 0 {
		return parseFlightPoints(record, resp.Status)
	}
	return parseLegacy(record, resp.Status)
}

// parseFlightPoints handles the v2 on-demand flight-status shape: an array
// of airport touchpoints, first is the origin, last the destination, each
// holding qualified timing entries.
func parseFlightPoints(record *statusRecord, fallbackStatus string) *domain.StatusRecord {
	origin := record.FlightPoints[0]
	dest := record.FlightPoints[len(record.FlightPoints)-1]

	out := &domain.StatusRecord{
		Carrier:      record.FlightDesignator.CarrierCode,
		FlightNumber: record.FlightDesignator.FlightNumber.String(),
		Departure:    pointFromSchedule(origin.IATACode, origin.Departure, "STD", "ETD"),
		Arrival:      pointFromSchedule(dest.IATACode, dest.Arrival, "STA", "ETA"),
		Duration:     flightPointsDuration(record),
		Status:       firstNonEmpty(record.Status, fallbackStatus, "scheduled"),
	}
	return out
}

// pointFromSchedule builds a status point from a touchpoint's schedule block,
// preferring the given timing qualifiers over the first entry.
func pointFromSchedule(iata string, sched *pointSchedule, preferred ...string) *domain.StatusPoint {
	point := &domain.StatusPoint{IATACode: iata}
	if sched != nil {
		point.At = timingValue(sched.Timings, preferred...)
		if sched.Terminal != nil {
			point.Terminal = sched.Terminal.Code
		}
	}
	return point
}

// flightPointsDuration returns the first non-empty duration among the
// candidate nested paths the v2 shape may carry it under.
func flightPointsDuration(record *statusRecord) string {
	if len(record.Segments) > 0 && record.Segments[0].ScheduledSegmentDuration != "" {
		return record.Segments[0].ScheduledSegmentDuration
	}
	if len(record.Legs) > 0 && record.Legs[0].ScheduledLegDuration != "" {
		return record.Legs[0].ScheduledLegDuration
	}
	return ""
}

// parseLegacy handles the older schedule shape: either nested
// itineraries[0].segments or direct departure/arrival fields on the record.
func parseLegacy(record *statusRecord, fallbackStatus string) *domain.StatusRecord {
	if record == nil {
		return nil
	}

	var dep, arr *rawEndpoint
	duration := record.Duration
	if len(record.Itineraries) > 0 && len(record.Itineraries[0].Segments) > 0 {
		segments := record.Itineraries[0].Segments
		dep = &segments[0].Departure
		arr = &segments[len(segments)-1].Arrival
		if duration == "" {
			duration = record.Itineraries[0].Duration
		}
	} else {
		dep = record.Departure
		arr = record.Arrival
	}
	if dep == nil && arr == nil {
		return nil
	}

	carrier := firstNonEmpty(record.FlightDesignator.CarrierCode, record.CarrierCode)
	number := record.FlightDesignator.FlightNumber.String()
	if number == "" {
		number = record.Number.String()
	}

	return &domain.StatusRecord{
		Carrier:      carrier,
		FlightNumber: number,
		Departure:    legacyPoint(dep),
		Arrival:      legacyPoint(arr),
		Duration:     duration,
		Status:       firstNonEmpty(record.Status, fallbackStatus, "unknown"),
	}
}

func legacyPoint(e *rawEndpoint) *domain.StatusPoint {
	if e == nil {
		return nil
	}
	return &domain.StatusPoint{
		IATACode: extractIATA(e, ""),
		At:       extractTime(e),
		Terminal: extractTerminal(e),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
