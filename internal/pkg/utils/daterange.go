package utils

import "time"

// DateOf truncates a timestamp to its calendar day in the given location.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WeekBounds maps a date to the Monday and Sunday of its ISO week.
func WeekBounds(date time.Time) (start, end time.Time) {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start = date.AddDate(0, 0, -(weekday - 1))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthBounds maps a date to the first and last calendar day of its month.
func MonthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}

// YearBounds maps a date to January 1st and December 31st of its year.
func YearBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	end = time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location())
	return start, end
}

// DaysBetween lists every calendar day from start to end inclusive.
// Start and end are expected to be midnight-truncated in the same location.
func DaysBetween(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// CombineDateAndTime anchors a time-of-day onto a calendar day in the day's
// location. Used to localize shift boundaries to a concrete date.
func CombineDateAndTime(day time.Time, timeOfDay time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0, day.Location())
}
