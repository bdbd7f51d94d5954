package dashboard

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, default today
	View string `json:"view"` // day|month|year, default day
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.View == "" {
		r.View = "day"
	}
	if !validator.IsInSlice(r.View, []string{"day", "month", "year"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "view",
			Message: "view must be one of: day, month, year",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyHours is one bar of the dashboard chart: total worked hours across
// all employees for a calendar day.
type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type SummaryResponse struct {
	TotalEmployees int64        `json:"total_employees"`
	Present        int64        `json:"present"`
	Absent         int64        `json:"absent"`
	LateCount      int64        `json:"late_count"`
	Start          string       `json:"start"`
	End            string       `json:"end"`
	DailyHours     []DailyHours `json:"daily_hours"`
}
