package domain

import (
	"fmt"
	"time"
)

// DateLayout is the dd/MM/yyyy layout used at every date boundary.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/MM/yyyy string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
	}
	return t, nil
}

// FormatDate formats t using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf strips the clock part of t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// YearsBetween returns the whole years elapsed from birth to today.
// A birthday not yet reached in today's year does not count.
func YearsBetween(birth, today time.Time) int {
	by, bm, bd := birth.Date()
	ty, tm, td := today.Date()
	years := ty - by
	if tm < bm || (tm == bm && td < bd) {
		years--
	}
	return years
}
