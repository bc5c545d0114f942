package common

import "time"

// DaysBetween returns the number of calendar days between a and b, both
// truncated to UTC midnight. The password-age policy counts day boundaries,
// not elapsed 24-hour windows: 23:59 to 00:01 the next day is one day.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(utcMidnight(b).Sub(utcMidnight(a)).Hours() / 24)
}

// SameDate reports whether a and b fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return utcMidnight(a).Equal(utcMidnight(b))
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
