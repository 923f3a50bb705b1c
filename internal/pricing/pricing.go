// Package pricing computes booking totals. Totals are snapshots: the
// lifecycle service calls Total once at submission time and stores the
// result, so later rate changes never touch existing bookings.
package pricing

import "time"

// Nights returns the number of calendar nights between checkIn and
// checkOut. Both endpoints are normalized to their calendar date in UTC
// before subtracting, so time-of-day, zone offsets, and DST transitions
// never change the count: Jan 1 → Jan 2 is exactly 1 night, even when the
// local night in between is 23 or 25 hours long.
func Nights(checkIn, checkOut time.Time) int {
	return int(toDay(checkOut).Sub(toDay(checkIn)) / (24 * time.Hour))
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Total returns nights × nightlyRate × rooms. A zero checkIn or checkOut
// yields 0, meaning "not yet computable" — callers must not treat that as
// a valid zero-cost booking. Rejecting non-positive night counts is the
// caller's job; Total never errors.
func Total(checkIn, checkOut time.Time, nightlyRate float64, rooms int) float64 {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	return float64(Nights(checkIn, checkOut)) * nightlyRate * float64(rooms)
}
