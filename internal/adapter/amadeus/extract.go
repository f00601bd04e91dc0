package amadeus

// Ordered fallback extraction. Upstream response versions rename the same
// datum, so each accessor chain is an explicit ranked list evaluated in
// order; the first non-empty value wins. Absence is an empty string, never
// an error, because shape variance is the normal case.

// iataAccessors resolve the airport code of an endpoint.
var iataAccessors = []func(*rawEndpoint) string{
	func(e *rawEndpoint) string { return e.IATACode },
	func(e *rawEndpoint) string { return e.AirportCode },
	func(e *rawEndpoint) string { return e.IATA },
	func(e *rawEndpoint) string { return e.BoardPointIATACode },
}

// timeAccessors resolve the scheduled timestamp of an endpoint. The timings
// list is tried last, preferring a scheduled-qualified entry.
var timeAccessors = []func(*rawEndpoint) string{
	func(e *rawEndpoint) string { return e.At },
	func(e *rawEndpoint) string { return e.ScheduledTime },
	func(e *rawEndpoint) string { return e.Time },
	func(e *rawEndpoint) string { return e.ScheduledTimeLocal },
	func(e *rawEndpoint) string { return e.ScheduledLocal },
	func(e *rawEndpoint) string { return e.Scheduled },
	func(e *rawEndpoint) string {
		return timingValue(e.Timings, "STD", "ETD", "STA", "ETA")
	},
}

var terminalAccessors = []func(*rawEndpoint) string{
	func(e *rawEndpoint) string { return e.Terminal },
	func(e *rawEndpoint) string { return e.TerminalCode },
}

// extractIATA returns the endpoint's airport code, the caller-supplied
// fallback when no candidate field is set, or "" when there is no fallback.
func extractIATA(e *rawEndpoint, fallback string) string {
	if e != nil {
		for _, get := range iataAccessors {
			if v := get(e); v != "" {
				return v
			}
		}
	}
	return fallback
}

// extractTime returns the endpoint's raw timestamp string, unparsed.
func extractTime(e *rawEndpoint) string {
	if e == nil {
		return ""
	}
	for _, get := range timeAccessors {
		if v := get(e); v != "" {
			return v
		}
	}
	return ""
}

// extractTerminal returns the endpoint's terminal designator, if any.
func extractTerminal(e *rawEndpoint) string {
	if e == nil {
		return ""
	}
	for _, get := range terminalAccessors {
		if v := get(e); v != "" {
			return v
		}
	}
	return ""
}

// timingValue picks from a qualified timings list, preferring qualifiers in
// the given order and falling back to the first entry.
func timingValue(timings []rawTiming, preferred ...string) string {
	if len(timings) == 0 {
		return ""
	}
	for _, q := range preferred {
		for _, t := range timings {
			if t.Qualifier == q && t.Value != "" {
				return t.Value
			}
		}
	}
	return timings[0].Value
}
