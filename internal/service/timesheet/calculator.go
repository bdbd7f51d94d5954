package timesheet

import (
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
)

// Session is a derived (IN, OUT) pairing representing one continuous work
// period. Sessions are recomputed on demand from the ledger and never stored.
type Session struct {
	Start clockevent.ClockEvent
	End   clockevent.ClockEvent
	Hours float64
}

// PairResult is the outcome of pairing one employee-day of events. The
// unmatched/orphaned flags are data-quality signals, not errors: they never
// block aggregation.
type PairResult struct {
	Sessions    []Session
	TotalHours  float64
	UnmatchedIn bool // an IN with no later OUT ("still clocked in")
	OrphanedOut bool // an OUT that preceded any unmatched IN
}

// ComplianceResult holds the per-day shift compliance verdict. When the
// employee has no shift, both flags stay false and only hours are meaningful.
type ComplianceResult struct {
	Late        bool
	EarlyLeave  bool
	WorkedHours float64
}

// Calculator holds the pure attendance computations: event-type resolution,
// session pairing and compliance evaluation. It is stateless apart from the
// organizational timezone and safe for concurrent use.
type Calculator struct {
	loc *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// Location returns the organizational timezone the calculator anchors
// calendar days and shift boundaries in.
func (c *Calculator) Location() *time.Location {
	return c.loc
}
