package core

import "time"

// StartOfWeek returns the most recent Monday at 00:00:00 relative to
// now. When now is itself a Monday the result is now's date at
// midnight.
func StartOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday -> 7
		weekday = 7
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -(weekday - 1))
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodayFilter matches records whose start time falls on now's date.
func TodayFilter(now time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return SameDay(t, now) }
}

// WeekFilter matches records from the current Monday-start week.
func WeekFilter(now time.Time) func(time.Time) bool {
	start := StartOfWeek(now)
	return func(t time.Time) bool { return !t.Before(start) }
}
