package clockevent

import (
	"context"
	"time"
)

// ClockEventRepository is the durable, timestamp-ordered ledger of clock
// events. Writes are append-only from the engine's point of view; Update
// exists solely for the audited manual-correction path.
type ClockEventRepository interface {
	// Create appends a new event to the ledger
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// GetByID retrieves a single event
	GetByID(ctx context.Context, id string) (ClockEvent, error)

	// CreateAudited appends an event and its "created" change log entry in
	// one transaction
	CreateAudited(ctx context.Context, event ClockEvent, log ChangeLog) (ClockEvent, error)

	// UpdateAudited rewrites an event and records its "edited" change log
	// entry in one transaction. Only the manual-correction path calls this.
	UpdateAudited(ctx context.Context, event ClockEvent, log ChangeLog) error

	// ListByEmployeeAndDay retrieves an employee's events for one calendar
	// day [dayStart, dayEnd), ordered by timestamp ascending
	ListByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]ClockEvent, error)

	// ListByEmployeeBetween retrieves an employee's events in
	// [rangeStart, rangeEnd), ordered by timestamp ascending
	ListByEmployeeBetween(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]ClockEvent, error)

	// ListBetween retrieves all events in [rangeStart, rangeEnd) across
	// employees, ordered by timestamp ascending, with names joined
	ListBetween(ctx context.Context, rangeStart, rangeEnd time.Time) ([]ClockEvent, error)

	// ListLatest retrieves the most recent events org-wide, newest first,
	// with names joined
	ListLatest(ctx context.Context, limit int) ([]ClockEvent, error)
}
