package shared

import "time"

// DateOnly truncates a timestamp to midnight UTC. Settlement records are keyed
// by calendar date, so every date that enters the domain goes through here.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
