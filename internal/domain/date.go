package domain

import "time"

// DaysBetween returns the whole-day difference between the calendar dates of
// two instants, ignoring their time of day. The midnights are rebuilt in UTC
// so a zone offset change between the two dates cannot shorten a day.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}
