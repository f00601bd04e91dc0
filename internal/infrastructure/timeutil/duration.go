package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoDurationRegex matches the hour/minute components of an ISO-8601
// duration token as upstream providers emit them (e.g., "PT2H15M", "PT45M").
var isoDurationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// clockRegex matches an HH:MM display string.
var clockRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// timestampLayouts are the layouts upstream timestamps arrive in.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseISODuration extracts the total minutes from a PT#H#M duration token.
// Missing components count as zero; an empty or unmatched string yields 0.
func ParseISODuration(s string) int {
	if s == "" {
		return 0
	}
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins
}

// parseTimestamp parses an upstream timestamp, trying RFC3339 first and then
// the timezone-less variant some endpoints emit.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MinutesBetween returns the whole minutes from one timestamp to another.
// If either input fails to parse, or the second precedes the first, the
// result is 0. Negative durations cannot be displayed meaningfully.
func MinutesBetween(from, to string) int {
	a, okA := parseTimestamp(from)
	b, okB := parseTimestamp(to)
	if !okA || !okB {
		return 0
	}
	mins := int(b.Sub(a).Round(time.Minute).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatClock derives an HH:MM display string from an ISO timestamp.
// Inputs that already look like HH:MM pass through; anything else yields
// the "--:--" placeholder.
func FormatClock(iso string) string {
	if strings.Contains(iso, "T") && len(iso) >= 16 {
		return iso[11:16]
	}
	if clockRegex.MatchString(iso) {
		return iso
	}
	return "--:--"
}

// Format12Hour maps a 24-hour "HH:MM" string to a 12-hour display with an
// AM/PM suffix. Hour 0 becomes 12 AM and hour 12 becomes 12 PM. Inputs that
// are not HH:MM pass through unchanged.
func Format12Hour(hhmm string) string {
	if !clockRegex.MatchString(hhmm) {
		return hhmm
	}
	hour, _ := strconv.Atoi(hhmm[:2])
	mins := hhmm[3:]

	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return strconv.Itoa(hour) + ":" + mins + " " + suffix
}
