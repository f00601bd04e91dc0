package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache avoids repeated zoneinfo lookups.
var locationCache sync.Map

// Timezone names for the markets the service operates in.
const (
	// UTC is Coordinated Universal Time.
	UTC = "UTC"

	// IST is Indian Standard Time (Delhi, Mumbai, Bengaluru).
	IST = "Asia/Kolkata"

	// GST is Gulf Standard Time (Dubai, Abu Dhabi).
	GST = "Asia/Dubai"
)

// GetLocation returns a timezone location, caching it for later calls.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation is GetLocation for known-good names; it panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// InTimezone converts a time to the named timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// NowInDelhi returns the current time in Indian Standard Time. Date defaults
// like "tomorrow" are computed against the home market's clock, not the
// server's.
func NowInDelhi() time.Time {
	return time.Now().In(MustGetLocation(IST))
}

// ClearLocationCache empties the cached locations, for tests.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
