package shift

import (
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

type UpsertShiftRequest struct {
	ID            string `json:"-"`
	Name          string `json:"name"`
	StartTime     string `json:"start_time"` // HH:MM or HH:MM:SS
	EndTime       string `json:"end_time"`
	BreakMinutes  int    `json:"break_minutes"`
	LateGraceMin  int    `json:"late_grace_min"`
	EarlyGraceMin int    `json:"early_grace_min"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.LateGraceMin < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_min",
			Message: "late_grace_min must not be negative",
		})
	}

	if r.EarlyGraceMin < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_grace_min",
			Message: "early_grace_min must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into a Shift entity.
func (r *UpsertShiftRequest) ToEntity() Shift {
	start, _ := validator.IsValidTimeOfDay(r.StartTime)
	end, _ := validator.IsValidTimeOfDay(r.EndTime)
	return Shift{
		ID:            r.ID,
		Name:          r.Name,
		StartTime:     start,
		EndTime:       end,
		BreakMinutes:  r.BreakMinutes,
		LateGraceMin:  r.LateGraceMin,
		EarlyGraceMin: r.EarlyGraceMin,
	}
}

type ShiftResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakMinutes  int    `json:"break_minutes"`
	LateGraceMin  int    `json:"late_grace_min"`
	EarlyGraceMin int    `json:"early_grace_min"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		Name:          s.Name,
		StartTime:     s.StartTime.Format(time.TimeOnly),
		EndTime:       s.EndTime.Format(time.TimeOnly),
		BreakMinutes:  s.BreakMinutes,
		LateGraceMin:  s.LateGraceMin,
		EarlyGraceMin: s.EarlyGraceMin,
	}
}
