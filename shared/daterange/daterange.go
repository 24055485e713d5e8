// Package daterange holds the calendar-day primitives shared by the
// availability resolver, the reservation service and the blocked-date
// service. A reservation occupies every calendar day from check-in up to
// and including the check-out day, so containment is inclusive on both
// boundaries: the day after check-out is the first free day.
package daterange

import (
	"math"
	"time"
)

const hoursPerDay = 24

// Normalize maps a time to midnight UTC of its calendar day. Rebuilding
// from the date components in one fixed location keeps equality and
// ordering stable even when the inputs carry different locations, as
// happens when handler-parsed app-timezone midnights meet rows scanned in
// the database session location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WithinInclusive reports whether candidate falls inside [start, end],
// both boundaries included. Times of day are ignored.
func WithinInclusive(candidate, start, end time.Time) bool {
	day := Normalize(candidate)
	first := Normalize(start)
	last := Normalize(end)

	return !day.Before(first) && !day.After(last)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// Nights returns the number of nights between check-in and check-out,
// rounding partial days up. Comparing normalized midnights keeps the count
// whole when the two times carry different locations. Same-day or inverted
// ranges yield zero.
func Nights(checkIn, checkOut time.Time) int {
	diff := Normalize(checkOut).Sub(Normalize(checkIn)).Hours() / hoursPerDay
	if diff <= 0 {
		return 0
	}

	return int(math.Ceil(diff))
}

// Overlaps reports whether two inclusive day ranges share at least one
// calendar day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Normalize(aStart).After(Normalize(bEnd)) && !Normalize(bStart).After(Normalize(aEnd))
}

// Days lists every calendar day of the inclusive range in order. An
// inverted range yields nil.
func Days(start, end time.Time) []time.Time {
	first := Normalize(start)
	last := Normalize(end)

	if first.After(last) {
		return nil
	}

	var days []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}
