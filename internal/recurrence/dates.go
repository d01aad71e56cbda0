package recurrence

import (
	"time"

	"moneta/internal/models"
)

// All date arithmetic runs in UTC on calendar days. Stepping is anchored to
// the schedule's start date (occurrence n = start + n steps) rather than
// iterating from the previous occurrence, so monthly and yearly cadences
// cannot drift after hitting a short month.

// DayOf strips the time-of-day component, returning UTC midnight of the
// calendar day that t falls on when read as UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last nanosecond of t's UTC calendar day. Used for the
// inclusive end-date boundary: an occurrence due exactly on the end date
// still counts.
func EndOfDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// NthOccurrence returns the nth occurrence date (n starting at 0) for a
// schedule anchored at start with the given cadence.
func NthOccurrence(freq models.Frequency, start time.Time, n int) time.Time {
	start = DayOf(start)
	switch freq {
	case models.FrequencyDaily:
		return start.AddDate(0, 0, n)
	case models.FrequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case models.FrequencyMonthly:
		return addMonthsClamped(start, n)
	case models.FrequencyYearly:
		return addMonthsClamped(start, 12*n)
	default:
		return start.AddDate(0, 0, n)
	}
}

// addMonthsClamped adds n calendar months, clamping the day-of-month to the
// last day of the target month: Jan 31 + 1 month = Feb 29/28, and Feb 29 + 12
// months = Feb 28 on non-leap years. This is the billing-cycle convention;
// time.AddDate would overflow into the next month instead.
func addMonthsClamped(start time.Time, n int) time.Time {
	months := int(start.Month()) - 1 + n
	year := start.Year() + months/12
	month := time.Month(months%12 + 1)

	day := start.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
