package util

import "time"

// DayStart truncates t to midnight UTC. Streak arithmetic only ever
// compares calendar days, never times of day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// NextDay reports whether b falls on the calendar day immediately after a.
func NextDay(a, b time.Time) bool {
	return DayStart(a).AddDate(0, 0, 1).Equal(DayStart(b))
}

func Yesterday(today time.Time) time.Time {
	return DayStart(today).AddDate(0, 0, -1)
}
