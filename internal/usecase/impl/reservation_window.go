package impl

import "time"

// startOfDay returns midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// endOfDay returns the last representable instant of t's calendar day in loc.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// addMonthsClamped adds months to a date, clamping the day to the target month's
// length (Jan 31 + 1 month = Feb 28/29) instead of overflowing like time.AddDate.
func addMonthsClamped(day time.Time, months int) time.Time {
	y, m, d := day.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, day.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, day.Location())
}

// withinBookingWindow reports whether the visit's calendar day is strictly before today + months.
func withinBookingWindow(visit, now time.Time, months int, loc *time.Location) bool {
	limit := addMonthsClamped(startOfDay(now, loc), months)

	return startOfDay(visit, loc).Before(limit)
}
