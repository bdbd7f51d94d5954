package timesheet

import (
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/utils"
)

// EvaluateCompliance judges one employee-day against the assigned shift.
// day is the calendar day at midnight in the organizational timezone, events
// are that day's events sorted ascending, and pair is the pairing result for
// the same events.
//
// Lateness and early leave are read off the earliest IN and latest OUT of
// the day, not off session boundaries, so they reflect actual first arrival
// and last departure even when the pairing skipped an orphaned OUT. Each day
// is judged on its own; a verdict never carries over to the next day.
//
// Without a shift there is no baseline to judge against: both flags stay
// false and only the worked hours are reported.
func (c *Calculator) EvaluateCompliance(day time.Time, events []clockevent.ClockEvent, pair PairResult, sh *shift.Shift) ComplianceResult {
	result := ComplianceResult{
		WorkedHours: pair.TotalHours,
	}

	if sh == nil {
		return result
	}

	var firstIn, lastOut *time.Time
	for i := range events {
		ev := events[i]
		switch ev.Type {
		case clockevent.TypeIn:
			if firstIn == nil || ev.Timestamp.Before(*firstIn) {
				t := ev.Timestamp
				firstIn = &t
			}
		case clockevent.TypeOut:
			if lastOut == nil || ev.Timestamp.After(*lastOut) {
				t := ev.Timestamp
				lastOut = &t
			}
		}
	}

	shiftStart := utils.CombineDateAndTime(day.In(c.loc), sh.StartTime)
	shiftEnd := utils.CombineDateAndTime(day.In(c.loc), sh.EndTime)

	graceIn := time.Duration(sh.LateGraceMin) * time.Minute
	graceOut := time.Duration(sh.EarlyGraceMin) * time.Minute

	if firstIn != nil && firstIn.After(shiftStart.Add(graceIn)) {
		result.Late = true
	}
	if lastOut != nil && lastOut.Before(shiftEnd.Add(-graceOut)) {
		result.EarlyLeave = true
	}

	return result
}
