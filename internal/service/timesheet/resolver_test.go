package timesheet

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/stretchr/testify/assert"
)

func TestResolveTypeEmptyDayIsIn(t *testing.T) {
	calc := NewCalculator(time.UTC)

	assert.Equal(t, clockevent.TypeIn, calc.ResolveType(nil, nil))
}

func TestResolveTypeAfterInIsOut(t *testing.T) {
	calc := NewCalculator(time.UTC)

	events := []clockevent.ClockEvent{
		event(t, clockevent.TypeIn, "2026-03-02T09:00:00Z"),
	}

	assert.Equal(t, clockevent.TypeOut, calc.ResolveType(nil, events))
}

func TestResolveTypeAfterCompleteSessionIsIn(t *testing.T) {
	calc := NewCalculator(time.UTC)

	events := []clockevent.ClockEvent{
		event(t, clockevent.TypeIn, "2026-03-02T09:00:00Z"),
		event(t, clockevent.TypeOut, "2026-03-02T12:00:00Z"),
	}

	assert.Equal(t, clockevent.TypeIn, calc.ResolveType(nil, events))
}

func TestResolveTypeTieFavorsOut(t *testing.T) {
	calc := NewCalculator(time.UTC)

	// IN and OUT at the same instant: the employee counts as still
	// clocked in, so the next implicit action is an OUT.
	events := []clockevent.ClockEvent{
		event(t, clockevent.TypeIn, "2026-03-02T09:00:00Z"),
		event(t, clockevent.TypeOut, "2026-03-02T09:00:00Z"),
	}

	assert.Equal(t, clockevent.TypeOut, calc.ResolveType(nil, events))
}

func TestResolveTypeExplicitWins(t *testing.T) {
	calc := NewCalculator(time.UTC)

	events := []clockevent.ClockEvent{
		event(t, clockevent.TypeIn, "2026-03-02T09:00:00Z"),
	}

	in := clockevent.TypeIn
	assert.Equal(t, clockevent.TypeIn, calc.ResolveType(&in, events))

	out := clockevent.TypeOut
	assert.Equal(t, clockevent.TypeOut, calc.ResolveType(&out, nil))
}
