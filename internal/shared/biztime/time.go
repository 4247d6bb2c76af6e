// Package biztime holds the business timezone. Times are stored in UTC; the
// business timezone only decides calendar boundaries such as the year a
// complaint code belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when Init is never called or called with "".
const DefaultTimezone = "Asia/Kolkata"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
	clock       = time.Now
)

// Init sets the business timezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, falling back to DefaultTimezone
// and then UTC when the zone database is unavailable.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return clock().UTC()
}

// YearOf returns the calendar year of t in the business timezone.
func YearOf(t time.Time) int {
	return t.In(Location()).Year()
}

// StartOfYearUTC returns Jan 1 00:00 of year in the business timezone, as UTC.
func StartOfYearUTC(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, Location()).UTC()
}

// SetClockForTest replaces the clock used by NowUTC and returns a restore func.
func SetClockForTest(now func() time.Time) (restore func()) {
	prev := clock
	clock = now
	return func() { clock = prev }
}
