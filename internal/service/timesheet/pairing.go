package timesheet

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
)

// PairSessions reconstructs work sessions from one employee-day of events,
// which must be sorted ascending by timestamp.
//
// Greedy left-to-right matching: walk the IN and OUT events with two
// pointers; an IN pairs with the earliest OUT that is not earlier than it.
// An OUT that precedes every unmatched IN is skipped and reported as
// orphaned. INs left over once the OUTs are exhausted are unmatched and
// contribute zero duration. Sessions never overlap and a session's duration
// is clamped to >= 0.
//
// The result is deterministic: the same event list always yields the same
// sessions and the same anomaly flags.
func (c *Calculator) PairSessions(events []clockevent.ClockEvent) PairResult {
	var ins, outs []clockevent.ClockEvent
	for _, ev := range events {
		switch ev.Type {
		case clockevent.TypeIn:
			ins = append(ins, ev)
		case clockevent.TypeOut:
			outs = append(outs, ev)
		}
	}

	var result PairResult
	i, j := 0, 0
	for i < len(ins) && j < len(outs) {
		if !ins[i].Timestamp.After(outs[j].Timestamp) {
			hours := outs[j].Timestamp.Sub(ins[i].Timestamp).Hours()
			if hours < 0 {
				hours = 0
			}
			result.Sessions = append(result.Sessions, Session{
				Start: ins[i],
				End:   outs[j],
				Hours: hours,
			})
			result.TotalHours += hours
			i++
			j++
		} else {
			// OUT before any unmatched IN
			result.OrphanedOut = true
			j++
		}
	}

	if i < len(ins) {
		result.UnmatchedIn = true
	}

	return result
}
