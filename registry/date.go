package registry

import (
	"errors"
	"time"
)

// DateLayout is the layout of all calendar dates in persisted documents (YYYY-MM-DD).
const DateLayout = time.DateOnly

// ErrInvalidDate is returned when a persisted or supplied date does not match DateLayout.
var ErrInvalidDate = Kind("date is not valid", ErrValidation)

// ToDate truncates t to its calendar date in t's location, normalized to UTC midnight.
func ToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}

	return t, nil
}

// Clock returns the current time, it is injected into registries to make default dates deterministic.
type Clock func() time.Time
