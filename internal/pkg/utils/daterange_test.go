package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfCrossesTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	// 23:30 UTC on March 1st is already March 2nd in UTC+7.
	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	day := DateOf(ts, loc)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 2, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}

func TestWeekBoundsMondayToSunday(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	start, end := WeekBounds(wednesday)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 2, start.Day())
	assert.Equal(t, 8, end.Day())
}

func TestWeekBoundsSundayBelongsToPrecedingMonday(t *testing.T) {
	// 2026-03-08 is a Sunday; its week starts March 2nd.
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	start, end := WeekBounds(sunday)

	assert.Equal(t, 2, start.Day())
	assert.Equal(t, 8, end.Day())
}

func TestMonthBounds(t *testing.T) {
	date := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	start, end := MonthBounds(date)

	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 28, end.Day())
	assert.Equal(t, time.February, end.Month())
}

func TestDaysBetweenInclusive(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)

	require.Len(t, days, 5)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[4])
}

func TestDaysBetweenReversedIsEmpty(t *testing.T) {
	start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, DaysBetween(start, end))
}

func TestCombineDateAndTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	timeOfDay := time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)

	combined := CombineDateAndTime(day, timeOfDay)

	assert.Equal(t, 2026, combined.Year())
	assert.Equal(t, 2, combined.Day())
	assert.Equal(t, 9, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, loc, combined.Location())
}
