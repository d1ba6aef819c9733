package progression

import (
	"fmt"
	"time"
)

// dateKeys are zero-padded YYYY-MM-DD local-calendar-day strings. The fixed
// width makes them sortable as strings, which the storage format relies on,
// but window membership is always decided with date arithmetic to keep
// midnight boundaries honest.
const dateKeyFormat = time.DateOnly

// FormatDateKey renders t as a calendar-day key in t's location.
func FormatDateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

// ParseDateKey parses a calendar-day key. A malformed key is a caller bug,
// not an expected condition.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(dateKeyFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}
