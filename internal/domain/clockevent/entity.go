package clockevent

import "time"

// EventType is the direction of a clock event.
type EventType string

const (
	TypeIn  EventType = "IN"
	TypeOut EventType = "OUT"
)

func (t EventType) Valid() bool {
	return t == TypeIn || t == TypeOut
}

// ClockEvent is one row of the append-only attendance ledger. Events are
// never updated by the engine itself; corrections go through the audited
// manual-edit path, and every derived figure is recomputed from whatever
// events currently exist.
type ClockEvent struct {
	ID             string
	EmployeeID     string
	Type           EventType
	Timestamp      time.Time
	Latitude       float64
	Longitude      float64
	DistanceM      float64
	WithinGeofence bool
	WorkSiteID     string
	Note           string
	CreatedBy      *string
	CreatedAt      time.Time

	// Joined
	EmployeeName *string
	WorkSiteName *string
}

// ChangeLogAction labels an audited mutation of the ledger.
type ChangeLogAction string

const (
	ActionCreated ChangeLogAction = "created"
	ActionEdited  ChangeLogAction = "edited"
)

// ChangeLog records a before/after snapshot of a manually created or edited
// clock event, with the operator and their stated reason.
type ChangeLog struct {
	ID           string
	ClockEventID string
	Action       ChangeLogAction
	Reason       string
	BeforeData   []byte // JSON snapshot, nil for "created"
	AfterData    []byte // JSON snapshot
	ChangedBy    string
	ChangedAt    time.Time
}
