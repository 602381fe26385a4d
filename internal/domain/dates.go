package domain

import "time"

// DateLayout is the canonical format for calendar dates throughout the
// application: map keys, URL path segments, and JSON date fields all use it.
const DateLayout = "2006-01-02"

// NormalizeDate truncates t to midnight UTC, discarding the clock, zone, and
// monotonic components. Every date stored on a Plan goes through this first
// so that two representations of the same calendar day always compare equal.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats t as the canonical map key for the Hotels and Activities
// maps. time.Time values make hazardous map keys (zone and monotonic-clock
// differences break equality), so the maps are keyed by this string instead.
func DateKey(t time.Time) string {
	return NormalizeDate(t).Format(DateLayout)
}

// ParseDateKey parses a canonical date key back into a normalized time.Time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}

// DateRange returns every calendar date from start through end inclusive,
// one day at a time. If start is after end the result is empty — an inverted
// range is not an error.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	last := NormalizeDate(end)
	for d := NormalizeDate(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// DaysBetween returns the inclusive day count from start through end.
// A one-day trip (start == end) counts as 1. Inverted ranges yield zero or
// negative values, mirroring the empty DateRange.
func DaysBetween(start, end time.Time) int {
	return int(NormalizeDate(end).Sub(NormalizeDate(start)).Hours()/24) + 1
}
