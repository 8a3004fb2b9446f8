package services

import (
	"math"
	"time"
)

// Symbolic period tokens accepted by the grouping endpoints.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the most recent Sunday. Note this is a
// different week definition than periodStart's rolling 7-day window; both are
// in active use and must not be unified.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// startOfMonth returns midnight of the first day of t's calendar month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// periodStart resolves a symbolic period token to an inclusive lower bound.
// Unrecognized or absent tokens mean no filter; the second return is false.
func periodStart(now time.Time, period string) (time.Time, bool) {
	switch period {
	case PeriodToday:
		return startOfDay(now), true
	case PeriodWeek:
		// Rolling window, not calendar-aligned
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return startOfMonth(now), true
	default:
		return time.Time{}, false
	}
}

// trendBetween returns the percentage change from previous to current,
// saturating at ±100 when either side is zero. The zero-boundary policy is
// load-bearing for API compatibility; do not replace it with Inf/NaN handling.
func trendBetween(current, previous int64) int {
	if previous == 0 && current == 0 {
		return 0
	}
	if previous == 0 {
		return 100
	}
	if current == 0 {
		return -100
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}
