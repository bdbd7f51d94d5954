package clockevent

import (
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

// ClockRequest is a clock action from the mobile client. Type and WorkSiteID
// are optional: a missing type is resolved from today's history, a missing
// site falls back to the employee's default permitted site.
type ClockRequest struct {
	EmployeeID string  `json:"-"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Type       *string `json:"type,omitempty"`
	WorkSiteID *string `json:"work_site_id,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Type != nil && !EventType(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockResponse struct {
	Accepted       bool                      `json:"accepted"`
	WithinGeofence bool                      `json:"within_geofence"`
	DistanceM      float64                   `json:"distance_m"`
	Type           EventType                 `json:"type"`
	Timestamp      string                    `json:"timestamp"`
	WorkSite       worksite.WorkSiteResponse `json:"work_site"`
}

// ManualEventRequest creates a ledger entry on behalf of an employee, for
// example when they forgot to clock out. Always audited.
type ManualEventRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Timestamp  string  `json:"timestamp"` // RFC3339
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	WorkSiteID string  `json:"work_site_id"`
	Note       string  `json:"note"`
	Reason     string  `json:"reason"`
}

func (r *ManualEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !EventType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if validator.IsEmpty(r.WorkSiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_site_id",
			Message: "work_site_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "a correction reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEventRequest edits an existing ledger entry. Always audited with
// before/after snapshots.
type UpdateEventRequest struct {
	ID         string   `json:"-"`
	Type       *string  `json:"type,omitempty"`
	Timestamp  *string  `json:"timestamp,omitempty"` // RFC3339
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	WorkSiteID *string  `json:"work_site_id,omitempty"`
	Note       *string  `json:"note,omitempty"`
	Reason     string   `json:"reason"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !EventType(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "a correction reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   *string   `json:"employee_name,omitempty"`
	Type           EventType `json:"type"`
	Timestamp      string    `json:"timestamp"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceM      float64   `json:"distance_m"`
	WithinGeofence bool      `json:"within_geofence"`
	WorkSiteID     string    `json:"work_site_id"`
	WorkSiteName   *string   `json:"work_site_name,omitempty"`
	Note           string    `json:"note,omitempty"`
}

func ToEventResponse(e ClockEvent) EventResponse {
	return EventResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		Type:           e.Type,
		Timestamp:      e.Timestamp.Format(time.RFC3339),
		Latitude:       e.Latitude,
		Longitude:      e.Longitude,
		DistanceM:      e.DistanceM,
		WithinGeofence: e.WithinGeofence,
		WorkSiteID:     e.WorkSiteID,
		WorkSiteName:   e.WorkSiteName,
		Note:           e.Note,
	}
}
