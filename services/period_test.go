package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 535, time.UTC)
	got := startOfDay(now)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfWeekAlignsToSunday(t *testing.T) {
	// 2025-03-14 is a Friday, the preceding Sunday is 2025-03-09
	friday := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)
	got := startOfWeek(friday)

	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.Sunday, got.Weekday())
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)
	got := startOfWeek(sunday)

	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)
	got := startOfMonth(now)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)

	today, ok := periodStart(now, PeriodToday)
	assert.True(t, ok)
	assert.Equal(t, startOfDay(now), today)

	week, ok := periodStart(now, PeriodWeek)
	assert.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), week)

	month, ok := periodStart(now, PeriodMonth)
	assert.True(t, ok)
	assert.Equal(t, startOfMonth(now), month)

	// Unknown or empty tokens apply no filter
	_, ok = periodStart(now, "")
	assert.False(t, ok)
	_, ok = periodStart(now, "quarter")
	assert.False(t, ok)
}

func TestPeriodStartOrdering(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

	today, _ := periodStart(now, PeriodToday)
	week, _ := periodStart(now, PeriodWeek)
	month, _ := periodStart(now, PeriodMonth)

	// A wider period never starts later than a narrower one
	assert.False(t, week.After(today))
	assert.False(t, month.After(week))
}

func TestTrendBetween(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     int
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 5, 0, 100},
		{"to zero", 0, 5, -100},
		{"fifty percent up", 150, 100, 50},
		{"fifty percent down", 50, 100, -50},
		{"doubled", 20, 10, 100},
		{"rounds half up", 1, 3, -67},
		{"rounds down", 101, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trendBetween(tt.current, tt.previous))
		})
	}
}
