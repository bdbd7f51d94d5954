package clockevent

import "context"

// ClockEventService defines the clock action and the audited manual paths
// around the ledger.
type ClockEventService interface {
	// Clock validates site permission and geofence, resolves the event type
	// when the request leaves it out, and appends the event. The
	// read-resolve-append sequence is serialized per employee.
	Clock(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// ListLatest returns the most recent events org-wide for the monitor view
	ListLatest(ctx context.Context, limit int) ([]EventResponse, error)

	// CreateManual appends an event on behalf of an employee, writing a
	// "created" change log entry
	CreateManual(ctx context.Context, req ManualEventRequest) (EventResponse, error)

	// UpdateEvent edits an event, writing an "edited" change log entry with
	// before and after snapshots
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)
}
