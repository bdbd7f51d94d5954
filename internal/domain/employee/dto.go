package employee

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID             string    `json:"-"`
	FullName       *string   `json:"full_name,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	ShiftID        *string   `json:"shift_id,omitempty"`
	AllowedSiteIDs *[]string `json:"allowed_site_ids,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be blank",
		})
	}

	if r.ShiftID != nil && *r.ShiftID != "" && !validator.IsValidUUID(*r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	FullName       string   `json:"full_name"`
	PhoneNumber    string   `json:"phone_number"`
	IsActive       bool     `json:"is_active"`
	ShiftID        *string  `json:"shift_id,omitempty"`
	ShiftName      *string  `json:"shift_name,omitempty"`
	AllowedSiteIDs []string `json:"allowed_site_ids"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		PhoneNumber:    e.PhoneNumber,
		IsActive:       e.IsActive,
		ShiftID:        e.ShiftID,
		AllowedSiteIDs: e.AllowedSiteIDs,
	}
	if e.Shift != nil {
		resp.ShiftName = &e.Shift.Name
	}
	return resp
}
