package shift

import "time"

// Shift is a daily work window with grace tolerances. Start and end are
// times-of-day; they are anchored onto a concrete date (in the organizational
// timezone) when compliance is evaluated.
type Shift struct {
	ID            string
	Name          string
	StartTime     time.Time
	EndTime       time.Time
	BreakMinutes  int
	LateGraceMin  int
	EarlyGraceMin int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
