package timesheet

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
)

// ResolveType decides whether a clock action is an IN or an OUT. An explicit
// proposed type always wins. Otherwise the decision is made from the
// employee's events for the current day: OUT when the latest IN is not
// earlier than the latest OUT (the employee is still clocked in), IN in every
// other case, including an empty day.
//
// Equal timestamps resolve to OUT: an IN stamped at the same instant as an
// OUT counts as still clocked in.
func (c *Calculator) ResolveType(proposed *clockevent.EventType, todaysEvents []clockevent.ClockEvent) clockevent.EventType {
	if proposed != nil && proposed.Valid() {
		return *proposed
	}

	var lastIn, lastOut *clockevent.ClockEvent
	for i := range todaysEvents {
		ev := &todaysEvents[i]
		switch ev.Type {
		case clockevent.TypeIn:
			if lastIn == nil || !ev.Timestamp.Before(lastIn.Timestamp) {
				lastIn = ev
			}
		case clockevent.TypeOut:
			if lastOut == nil || !ev.Timestamp.Before(lastOut.Timestamp) {
				lastOut = ev
			}
		}
	}

	if lastIn != nil && (lastOut == nil || !lastIn.Timestamp.Before(lastOut.Timestamp)) {
		return clockevent.TypeOut
	}
	return clockevent.TypeIn
}
